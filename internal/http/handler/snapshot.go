package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"coffeeapi/internal/service"
)

// CreateSnapshot uploads the catalog to object storage.
//
// @Summary Export catalog snapshot
// @Tags snapshots
// @Produce json
// @Success 201 {object} service.SnapshotResult
// @Failure 503 {object} errorPayload
// @Router /snapshots [post]
func CreateSnapshot(svc service.SnapshotService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := svc.Create(c.UserContext())
		if err != nil {
			if errors.Is(err, service.ErrSnapshotsDisabled) {
				return writeError(c, fiber.StatusServiceUnavailable, "SNAPSHOTS_DISABLED", "snapshot storage is not configured")
			}
			return internalError(c)
		}
		return c.Status(fiber.StatusCreated).JSON(res)
	}
}
