package handlers

import (
	"github.com/gofiber/fiber/v2"

	"foodwaste/internal/domain"
	applog "foodwaste/internal/log"
	"foodwaste/internal/services"
)

type ClaimHandler struct {
	Gateway *services.GatewayService
}

// POST /api/v1/claims
func (h *ClaimHandler) Create(c *fiber.Ctx) error {
	var in struct {
		FoodID     int64  `json:"Food_ID" form:"Food_ID"`
		ReceiverID int64  `json:"Receiver_ID" form:"Receiver_ID"`
		Status     string `json:"Status" form:"Status"`
		Timestamp  string `json:"Timestamp" form:"Timestamp"`
	}
	if err := c.BodyParser(&in); err != nil {
		return badInput(c, "body", "could not read claim")
	}
	claim, err := h.Gateway.CreateClaim(domain.NewClaim{
		FoodID:     in.FoodID,
		ReceiverID: in.ReceiverID,
		Status:     domain.ClaimStatus(in.Status),
		Timestamp:  in.Timestamp,
	})
	if err != nil {
		return fail(c, "claim.create.fail", err, map[string]any{"food_id": in.FoodID, "receiver_id": in.ReceiverID})
	}
	applog.Audit(c, "claim.create", map[string]any{
		"claim_id": claim.ClaimID, "food_id": claim.FoodID, "receiver_id": claim.ReceiverID, "status": claim.Status,
	})
	return c.Status(fiber.StatusCreated).JSON(claim)
}
