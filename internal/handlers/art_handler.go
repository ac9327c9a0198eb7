package handlers

import (
	"io"
	"mime/multipart"

	"github.com/gofiber/fiber/v2"

	"gallery-service/internal/services"
	"gallery-service/internal/utils"
)

// readUpload buffers one multipart file into memory for the blob store.
func readUpload(fh *multipart.FileHeader) (*services.Upload, error) {
	if err := utils.ValidateFileHeader(fh); err != nil {
		return nil, err
	}
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}
	return &services.Upload{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}

// optionalUpload returns nil when the form field is absent.
func optionalUpload(c *fiber.Ctx, field string) (*services.Upload, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		return nil, nil
	}
	return readUpload(fh)
}

// GET /api/art
func (h *Handler) ListArt(c *fiber.Ctx) error {
	arts, err := h.arts.List(c.Context())
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(arts)
}

// GET /api/art/:id
func (h *Handler) GetArt(c *fiber.Ctx) error {
	art, err := h.arts.Get(c.Context(), c.Params("id"))
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(art)
}

// POST /api/art (admin, multipart: title, description, auctionEnd,
// image required, video/audio optional)
func (h *Handler) CreateArt(c *fiber.Ctx) error {
	in := services.CreateArtInput{
		Title:       c.FormValue("title"),
		Description: c.FormValue("description"),
		AuctionEnd:  c.FormValue("auctionEnd"),
	}

	var err error
	if in.Image, err = optionalUpload(c, "image"); err != nil {
		return utils.JSONError(c, fiber.StatusBadRequest, err.Error())
	}
	if in.Video, err = optionalUpload(c, "video"); err != nil {
		return utils.JSONError(c, fiber.StatusBadRequest, err.Error())
	}
	if in.Audio, err = optionalUpload(c, "audio"); err != nil {
		return utils.JSONError(c, fiber.StatusBadRequest, err.Error())
	}

	art, err := h.arts.Create(c.Context(), in)
	if err != nil {
		return respondErr(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(art)
}

// DELETE /api/art/:id (admin)
func (h *Handler) DeleteArt(c *fiber.Ctx) error {
	art, err := h.arts.Delete(c.Context(), c.Params("id"))
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(fiber.Map{"message": "Artwork deleted", "art": art})
}
