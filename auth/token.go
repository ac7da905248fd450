package auth

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// MinKeyBytes là độ dài tối thiểu của khóa ký HMAC-SHA256
const MinKeyBytes = 32

// TokenTTL là thời gian sống của token
const TokenTTL = 2 * time.Hour

var (
	// ErrWeakKey: khóa ký thiếu hoặc quá ngắn — lỗi cấu hình server,
	// không phải lỗi xác thực
	ErrWeakKey = errors.New("jwt signing key is missing or shorter than 32 bytes")

	// ErrInvalidToken: mọi lỗi token (chữ ký, hết hạn, issuer/audience sai)
	// đều gộp về một lỗi duy nhất
	ErrInvalidToken = errors.New("invalid or expired token")
)

// Claims là nội dung của token: ID và username của người dùng
type Claims struct {
	Username string `json:"name"`
	jwt.RegisteredClaims
}

// UserID trả về ID dạng số từ claim subject
func (c *Claims) UserID() (int64, error) {
	return strconv.ParseInt(c.Subject, 10, 64)
}

// TokenIssuer tạo token đã ký cho người dùng đã được xác thực.
// Issuer không kiểm tra credentials; việc đó là của caller.
type TokenIssuer struct {
	Secret   []byte
	Issuer   string
	Audience string
	TTL      time.Duration

	now func() time.Time
}

// NewTokenIssuer tạo TokenIssuer với TTL mặc định 2 giờ
func NewTokenIssuer(secret, issuer, audience string) *TokenIssuer {
	return &TokenIssuer{
		Secret:   []byte(secret),
		Issuer:   issuer,
		Audience: audience,
		TTL:      TokenTTL,
		now:      time.Now,
	}
}

// IssuerFromEnv đọc cấu hình JWT từ biến môi trường
func IssuerFromEnv() *TokenIssuer {
	return NewTokenIssuer(
		os.Getenv("JWT_SECRET"),
		os.Getenv("JWT_ISSUER"),
		os.Getenv("JWT_AUDIENCE"),
	)
}

// Issue tạo token HS256 cho người dùng, trả về token và thời điểm hết hạn.
// Nếu khóa ký yếu hơn 32 byte thì từ chối phát hành (fail closed).
func (ti *TokenIssuer) Issue(userID int64, username string) (string, time.Time, error) {
	if len(ti.Secret) < MinKeyBytes {
		return "", time.Time{}, ErrWeakKey
	}

	issuedAt := ti.now()
	expiresAt := issuedAt.Add(ti.TTL)

	claims := Claims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(userID, 10),
			Issuer:    ti.Issuer,
			Audience:  jwt.ClaimStrings{ti.Audience},
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(ti.Secret)
	if err != nil {
		return "", time.Time{}, err
	}

	return signed, expiresAt, nil
}

// Verifier kiểm tra token; stateless — mọi instance giữ cùng khóa
// đều xác thực được token của mọi issuer
type Verifier struct {
	Secret   []byte
	Issuer   string
	Audience string

	now func() time.Time
}

// NewVerifier tạo Verifier với cùng cấu hình khóa như issuer
func NewVerifier(secret, issuer, audience string) *Verifier {
	return &Verifier{
		Secret:   []byte(secret),
		Issuer:   issuer,
		Audience: audience,
	}
}

// VerifierFromEnv đọc cấu hình JWT từ biến môi trường
func VerifierFromEnv() *Verifier {
	return NewVerifier(
		os.Getenv("JWT_SECRET"),
		os.Getenv("JWT_ISSUER"),
		os.Getenv("JWT_AUDIENCE"),
	)
}

// Verify kiểm tra chữ ký, hạn, issuer và audience của token.
// Mọi trường hợp thất bại đều trả về ErrInvalidToken.
func (v *Verifier) Verify(tokenString string) (*Claims, error) {
	claims := new(Claims)

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if v.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.Issuer))
	}
	if v.Audience != "" {
		opts = append(opts, jwt.WithAudience(v.Audience))
	}
	if v.now != nil {
		opts = append(opts, jwt.WithTimeFunc(v.now))
	}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return v.Secret, nil
	}, opts...)
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
