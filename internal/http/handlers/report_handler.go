package handlers

import (
	"net/url"

	"github.com/gofiber/fiber/v2"

	"foodwaste/internal/services"
	"foodwaste/internal/validate"
)

type ReportHandler struct {
	Reports *services.ReportService
}

// GET /api/v1/queries
func (h *ReportHandler) List(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"queries": h.Reports.List()})
}

// GET /api/v1/queries/:id
// :id is the catalogue number or the exact (escaped) name; any query
// string values are the statement parameters.
func (h *ReportHandler) Run(c *fiber.Ctx) error {
	ref, err := url.PathUnescape(c.Params("id"))
	if err != nil {
		return badInput(c, "id", "invalid query reference")
	}
	params := map[string]string{}
	for k, v := range c.Queries() {
		clean, ok := validate.Text(v, 100)
		if !ok {
			return badInput(c, k, "invalid parameter value")
		}
		params[k] = clean
	}

	t, d, err := h.Reports.Run(ref, params)
	if err != nil {
		return fail(c, "queries.run.fail", err, map[string]any{"query": ref})
	}
	return c.JSON(fiber.Map{
		"query":     d,
		"columns":   t.Columns,
		"rows":      t.Rows,
		"count":     t.Len(),
		"chartable": t.Chartable(),
	})
}
