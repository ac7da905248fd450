package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword hash mật khẩu bằng bcrypt (salt được nhúng trong digest)
func HashPassword(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CheckPassword so khớp mật khẩu plaintext với digest đã lưu.
// Digest hỏng hoặc không đúng định dạng chỉ trả về false, không bao giờ panic.
func CheckPassword(plain, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain)) == nil
}
