package models

import "time"

// User là bản ghi người dùng trong database.
// Password chứa mật khẩu đã được hash (bcrypt), không bao giờ trả về cho client.
type User struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Password  string    `json:"-"`
	CreatedAt time.Time `json:"createdAt"`
}

// PublicUser là phiên bản của User an toàn để trả về cho client.
type PublicUser struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"createdAt"`
}

// Public trả về bản sao của User không chứa password hash.
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:        u.ID,
		Username:  u.Username,
		CreatedAt: u.CreatedAt,
	}
}

// Credentials là payload của register/login.
// Trường "passwordHash" thực chất chứa mật khẩu plaintext; tên trường
// được giữ nguyên để tương thích với client hiện có.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"passwordHash"`
}
