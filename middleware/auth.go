package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/taskforge/go-tasks/auth"
)

// các key lưu danh tính trong Locals của request
const (
	localUserID   = "user_id"
	localUsername = "username"
)

// Protected trả về middleware xác thực bearer token.
// Thiếu token, sai định dạng, chữ ký sai hay hết hạn đều bị từ chối 401
// giống hệt nhau; handler phía sau chỉ chạy khi token hợp lệ.
func Protected(verifier *auth.Verifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// Lấy token từ header Authorization
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return unauthorized(c, "missing token")
		}

		// Tách từ "Bearer <token>"
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return unauthorized(c, "invalid token format")
		}

		claims, err := verifier.Verify(tokenString)
		if err != nil {
			return unauthorized(c, "invalid or expired token")
		}

		userID, err := claims.UserID()
		if err != nil {
			return unauthorized(c, "invalid or expired token")
		}

		// Gắn danh tính caller vào request; tầng dưới chỉ đọc qua
		// CallerID/CallerUsername, không đụng tới token nữa
		c.Locals(localUserID, userID)
		c.Locals(localUsername, claims.Username)

		return c.Next()
	}
}

// CallerID trả về ID của người dùng đã xác thực trong request hiện tại
func CallerID(c *fiber.Ctx) int64 {
	id, _ := c.Locals(localUserID).(int64)
	return id
}

// CallerUsername trả về username của người dùng đã xác thực
func CallerUsername(c *fiber.Ctx) string {
	name, _ := c.Locals(localUsername).(string)
	return name
}

func unauthorized(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"status":  fiber.StatusUnauthorized,
		"message": message,
		"data":    nil,
	})
}
