package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"gallery-service/internal/auth"
	"gallery-service/internal/models"
	"gallery-service/internal/services"
	"gallery-service/internal/utils"
)

type Handler struct {
	arts  *services.ArtService
	bids  *services.BidService
	pages *services.PageService
	gate  *auth.Gate
}

func NewHandler(arts *services.ArtService, bids *services.BidService, pages *services.PageService, gate *auth.Gate) *Handler {
	return &Handler{arts: arts, bids: bids, pages: pages, gate: gate}
}

// Register mounts the REST surface under /api.
func (h *Handler) Register(app *fiber.App) {
	admin := h.gate.RequireAdmin()
	api := app.Group("/api")

	api.Get("/art", h.ListArt)
	api.Get("/art/:id", h.GetArt)
	api.Post("/art", admin, h.CreateArt)
	api.Delete("/art/:id", admin, h.DeleteArt)

	api.Get("/bids", admin, h.AllBids)
	api.Get("/bids/:id", h.BidsForArt)
	api.Post("/bids/:id", h.PlaceBid)

	api.Get("/about", h.GetAbout)
	api.Put("/about", admin, h.UpdateAbout)
	api.Get("/about-media", h.GetAboutMedia)
	api.Post("/about-media", admin, h.AddAboutMedia)
	api.Get("/home", h.GetHomeMedia)
	api.Post("/home", admin, h.AddHomeMedia)

	api.Post("/contact", h.SendMessage)
	api.Get("/contact", admin, h.ListMessages)

	app.Get("/healthz", func(c *fiber.Ctx) error { return c.SendString("ok") })
}

// respondErr maps domain errors onto HTTP statuses with the common
// `{"message": ...}` body.
func respondErr(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, models.ErrNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, models.ErrMissingMedia),
		errors.Is(err, models.ErrInvalidSchedule),
		errors.Is(err, models.ErrInvalidAmount),
		errors.Is(err, models.ErrInvalidEmail),
		errors.Is(err, models.ErrValidation):
		status = fiber.StatusBadRequest
	case errors.Is(err, models.ErrAuctionClosed),
		errors.Is(err, models.ErrBidTooLow):
		status = fiber.StatusConflict
	case errors.Is(err, models.ErrMediaUpload):
		status = fiber.StatusBadGateway
	}
	return utils.JSONError(c, status, err.Error())
}
