package handlers

import (
	"github.com/gofiber/fiber/v2"

	"foodwaste/internal/domain"
	applog "foodwaste/internal/log"
	"foodwaste/internal/services"
	"foodwaste/internal/validate"
)

type ListingHandler struct {
	Gateway *services.GatewayService
	Dash    *services.DashboardService
}

// listingInput accepts JSON or form bodies with the table's column names.
type listingInput struct {
	FoodID       int64  `json:"Food_ID" form:"Food_ID"`
	FoodName     string `json:"Food_Name" form:"Food_Name"`
	Quantity     int    `json:"Quantity" form:"Quantity"`
	ExpiryDate   string `json:"Expiry_Date" form:"Expiry_Date"`
	ProviderID   *int64 `json:"Provider_ID" form:"Provider_ID"`
	ProviderType string `json:"Provider_Type" form:"Provider_Type"`
	Location     string `json:"Location" form:"Location"`
	FoodType     string `json:"Food_Type" form:"Food_Type"`
	MealType     string `json:"Meal_Type" form:"Meal_Type"`
}

func (h *ListingHandler) foodID(c *fiber.Ctx) (int64, bool) {
	return validate.ID(c.Params("id"))
}

// GET /api/v1/listings/:id
func (h *ListingHandler) Get(c *fiber.Ctx) error {
	id, ok := h.foodID(c)
	if !ok {
		return badInput(c, "id", "invalid Food_ID")
	}
	rows, err := h.Dash.Listing(id)
	if err != nil {
		return fail(c, "listing.get.fail", err, map[string]any{"food_id": id})
	}
	if len(rows) == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "no listing with that Food_ID"})
	}
	return c.JSON(rows[0])
}

// POST /api/v1/listings
func (h *ListingHandler) Create(c *fiber.Ctx) error {
	var in listingInput
	if err := c.BodyParser(&in); err != nil {
		return badInput(c, "body", "could not read listing")
	}
	texts := []struct {
		field string
		v     *string
	}{
		{"Provider_Type", &in.ProviderType}, {"Location", &in.Location},
		{"Food_Type", &in.FoodType}, {"Meal_Type", &in.MealType},
	}
	for _, t := range texts {
		v, ok := validate.Text(*t.v, 100)
		if !ok {
			return badInput(c, t.field, "invalid "+t.field)
		}
		*t.v = v
	}

	l := domain.FoodListing(in)
	if err := h.Gateway.CreateListing(l); err != nil {
		return fail(c, "listing.create.fail", err, map[string]any{"food_id": in.FoodID})
	}
	applog.Audit(c, "listing.create", map[string]any{"food_id": in.FoodID, "qty": in.Quantity})
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"ok": true, "food_id": in.FoodID})
}

// PATCH /api/v1/listings/:id/quantity
func (h *ListingHandler) UpdateQuantity(c *fiber.Ctx) error {
	id, ok := h.foodID(c)
	if !ok {
		return badInput(c, "id", "invalid Food_ID")
	}
	var in struct {
		Quantity *int `json:"Quantity" form:"Quantity"`
	}
	if err := c.BodyParser(&in); err != nil || in.Quantity == nil {
		return badInput(c, "Quantity", "Quantity is required")
	}
	n, err := h.Gateway.UpdateQuantity(id, *in.Quantity)
	if err != nil {
		return fail(c, "listing.quantity.update.fail", err, map[string]any{"food_id": id, "qty": *in.Quantity})
	}
	applog.Audit(c, "listing.quantity.update", map[string]any{"food_id": id, "qty": *in.Quantity, "rows": n})
	return c.JSON(fiber.Map{"ok": true, "rows": n})
}

// DELETE /api/v1/listings/:id
func (h *ListingHandler) Delete(c *fiber.Ctx) error {
	id, ok := h.foodID(c)
	if !ok {
		return badInput(c, "id", "invalid Food_ID")
	}
	n, err := h.Gateway.DeleteListing(id)
	if err != nil {
		return fail(c, "listing.delete.fail", err, map[string]any{"food_id": id})
	}
	applog.Audit(c, "listing.delete", map[string]any{"food_id": id, "rows": n})
	return c.JSON(fiber.Map{"ok": true, "rows": n})
}
