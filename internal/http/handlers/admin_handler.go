package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "foodwaste/internal/log"
	"foodwaste/internal/services"
)

type AdminHandler struct {
	Loader *services.LoadService
}

// POST /api/v1/reload
// Reruns the bulk load. A failed load keeps the current data.
func (h *AdminHandler) Reload(c *fiber.Ctx) error {
	rep, err := h.Loader.Load()
	if err != nil {
		return fail(c, "admin.reload.fail", err, map[string]any{"load_id": rep.LoadID})
	}
	applog.Audit(c, "admin.reload", map[string]any{"load_id": rep.LoadID, "rows": rep.Rows})
	return c.JSON(rep)
}
