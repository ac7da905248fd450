package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
)

// storageTimeout giới hạn thời gian mỗi lần gọi xuống tầng lưu trữ,
// để một truy vấn chậm không giữ tài nguyên vô thời hạn
const storageTimeout = 5 * time.Second

// respond trả về envelope {status, message, data} dùng chung cho mọi endpoint
func respond(c *fiber.Ctx, status int, message string, data interface{}) error {
	return c.Status(status).JSON(fiber.Map{
		"status":  status,
		"message": message,
		"data":    data,
	})
}

func requestContext(c *fiber.Ctx) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Context(), storageTimeout)
}
