package handlers

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"
)

// HealthHandler kiểm tra kết nối database
type HealthHandler struct {
	DB *sql.DB
}

// DBStatus ping database
//
//	@Summary	Check database connectivity
//	@Tags		health
//	@Produce	json
//	@Success	200
//	@Failure	500
//	@Router		/health/db-status [get]
func (h *HealthHandler) DBStatus(c *fiber.Ctx) error {
	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.DB.PingContext(ctx); err != nil {
		return respond(c, fiber.StatusInternalServerError, "could not connect to the database", nil)
	}
	return respond(c, fiber.StatusOK, "database connection is healthy", nil)
}
