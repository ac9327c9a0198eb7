package handlers

import (
	"github.com/gofiber/fiber/v2"

	"gallery-service/internal/utils"
)

type placeBidBody struct {
	Email  string  `json:"email"`
	Amount float64 `json:"amount"`
}

// POST /api/bids/:id
func (h *Handler) PlaceBid(c *fiber.Ctx) error {
	var body placeBidBody
	if err := c.BodyParser(&body); err != nil {
		return utils.JSONError(c, fiber.StatusBadRequest, "invalid request body")
	}
	bid, err := h.bids.Place(c.Context(), c.Params("id"), body.Email, body.Amount)
	if err != nil {
		return respondErr(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(bid)
}

// GET /api/bids/:id — all bids for one artwork, highest first
func (h *Handler) BidsForArt(c *fiber.Ctx) error {
	bids, err := h.bids.ForArt(c.Context(), c.Params("id"))
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(bids)
}

// GET /api/bids (admin) — every bid joined with its artwork
func (h *Handler) AllBids(c *fiber.Ctx) error {
	bids, err := h.bids.All(c.Context())
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(bids)
}
