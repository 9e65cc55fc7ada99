package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/abdul977/diamondbakes-sub000/internal/store"
)

// AdminHandler manages admin-only dashboard endpoints.
type AdminHandler struct {
	stats store.StatsStore
}

// NewAdminHandler constructs AdminHandler.
func NewAdminHandler(stats store.StatsStore) *AdminHandler {
	return &AdminHandler{stats: stats}
}

// DashboardStats returns per-collection document counts for the admin
// dashboard.
func (h *AdminHandler) DashboardStats(c *fiber.Ctx) error {
	counts, err := h.stats.Counts(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": counts})
}
