package handlers

import (
	"github.com/gofiber/fiber/v2"

	"foodwaste/internal/filter"
	applog "foodwaste/internal/log"
	"foodwaste/internal/services"
	"foodwaste/internal/validate"
)

type DashboardHandler struct {
	Dash    *services.DashboardService
	Reports *services.ReportService
}

// predicate reads city, food_type, meal_type and provider from the query
// string. Missing options mean "All".
func predicate(c *fiber.Ctx) (filter.Predicate, string, bool) {
	var p filter.Predicate
	if err := c.QueryParser(&p); err != nil {
		return p, "query", false
	}
	fields := []struct {
		name string
		v    *string
	}{
		{"city", &p.City}, {"food_type", &p.FoodType}, {"meal_type", &p.MealType}, {"provider", &p.ProviderName},
	}
	for _, f := range fields {
		v, ok := validate.Text(*f.v, 100)
		if !ok {
			return p, f.name, false
		}
		*f.v = v
	}
	return p, "", true
}

// GET /
func (h *DashboardHandler) Home(c *fiber.Ctx) error {
	p, field, ok := predicate(c)
	if !ok {
		applog.Warn(c, "validation.fail", map[string]any{"field": field})
		return notFound(c, fiber.StatusBadRequest, "Invalid filter")
	}
	ov, err := h.Dash.Overview()
	if err != nil {
		applog.Error(c, "dashboard.overview.fail", err, nil)
		return notFound(c, fiber.StatusInternalServerError, "Could not load the dashboard")
	}
	opts, err := h.Dash.Options()
	if err != nil {
		applog.Error(c, "dashboard.options.fail", err, nil)
		return notFound(c, fiber.StatusInternalServerError, "Could not load the dashboard")
	}
	rows, err := h.Dash.ListingContacts(p)
	if err != nil {
		applog.Error(c, "dashboard.listings.fail", err, nil)
		return notFound(c, fiber.StatusInternalServerError, "Could not load listings")
	}
	return render(c, "dashboard", fiber.Map{
		"Overview": ov,
		"Options":  opts,
		"Filter":   p,
		"Listings": rows,
		"Count":    len(rows),
		"Queries":  h.Reports.List(),
		"Cities":   opts.Cities[1:], // "All" dropped
	})
}

// GET /api/v1/overview
func (h *DashboardHandler) Overview(c *fiber.Ctx) error {
	ov, err := h.Dash.Overview()
	if err != nil {
		return fail(c, "dashboard.overview.fail", err, nil)
	}
	return c.JSON(ov)
}

// GET /api/v1/filters
func (h *DashboardHandler) Filters(c *fiber.Ctx) error {
	opts, err := h.Dash.Options()
	if err != nil {
		return fail(c, "dashboard.options.fail", err, nil)
	}
	choices, err := h.Dash.FormChoices()
	if err != nil {
		return fail(c, "dashboard.choices.fail", err, nil)
	}
	return c.JSON(fiber.Map{"filters": opts, "forms": choices})
}

// GET /api/v1/listings
func (h *DashboardHandler) Listings(c *fiber.Ctx) error {
	p, field, ok := predicate(c)
	if !ok {
		return badInput(c, field, "invalid filter value")
	}
	rows, err := h.Dash.FilterListings(p)
	if err != nil {
		return fail(c, "listings.filter.fail", err, nil)
	}
	return c.JSON(fiber.Map{"filter": p, "count": len(rows), "listings": rows})
}

// GET /api/v1/listings/contacts
func (h *DashboardHandler) Contacts(c *fiber.Ctx) error {
	p, field, ok := predicate(c)
	if !ok {
		return badInput(c, field, "invalid filter value")
	}
	rows, err := h.Dash.ListingContacts(p)
	if err != nil {
		return fail(c, "listings.contacts.fail", err, nil)
	}
	return c.JSON(fiber.Map{"filter": p, "count": len(rows), "listings": rows})
}

// GET /api/v1/tables/:name
func (h *DashboardHandler) Table(c *fiber.Ctx) error {
	name, ok := validate.Table(c.Params("name"))
	if !ok {
		return badInput(c, "name", "unknown table")
	}
	t, err := h.Dash.Table(name)
	if err != nil {
		return fail(c, "tables.dump.fail", err, map[string]any{"table": name})
	}
	return c.JSON(fiber.Map{"table": name, "count": t.Len(), "columns": t.Columns, "rows": t.Rows})
}
