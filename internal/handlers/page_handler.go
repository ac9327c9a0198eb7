package handlers

import (
	"github.com/gofiber/fiber/v2"

	"gallery-service/internal/utils"
)

// GET /api/home — missing record degrades to an empty object
func (h *Handler) GetHomeMedia(c *fiber.Ctx) error {
	media, err := h.pages.HomeBackground(c.Context())
	if err != nil || media == nil {
		return c.JSON(fiber.Map{})
	}
	return c.JSON(media)
}

// POST /api/home (admin, multipart: image required)
func (h *Handler) AddHomeMedia(c *fiber.Ctx) error {
	image, err := optionalUpload(c, "image")
	if err != nil {
		return utils.JSONError(c, fiber.StatusBadRequest, err.Error())
	}
	if image == nil {
		return utils.JSONError(c, fiber.StatusBadRequest, "Image is required")
	}
	media, err := h.pages.SetHomeBackground(c.Context(), image)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(media)
}

// GET /api/about-media
func (h *Handler) GetAboutMedia(c *fiber.Ctx) error {
	media, err := h.pages.AboutIntro(c.Context())
	if err != nil || media == nil {
		return c.JSON(fiber.Map{})
	}
	return c.JSON(media)
}

// POST /api/about-media (admin, multipart: video required, introText optional)
func (h *Handler) AddAboutMedia(c *fiber.Ctx) error {
	video, err := optionalUpload(c, "video")
	if err != nil {
		return utils.JSONError(c, fiber.StatusBadRequest, err.Error())
	}
	if video == nil {
		return utils.JSONError(c, fiber.StatusBadRequest, "Video is required")
	}
	media, err := h.pages.SetAboutIntro(c.Context(), video, c.FormValue("introText"))
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(media)
}

// GET /api/about
func (h *Handler) GetAbout(c *fiber.Ctx) error {
	about, err := h.pages.About(c.Context())
	if err != nil || about == nil {
		return c.JSON(fiber.Map{})
	}
	return c.JSON(about)
}

type aboutBody struct {
	Content string `json:"content"`
}

// PUT /api/about (admin)
func (h *Handler) UpdateAbout(c *fiber.Ctx) error {
	var body aboutBody
	if err := c.BodyParser(&body); err != nil {
		return utils.JSONError(c, fiber.StatusBadRequest, "invalid request body")
	}
	about, err := h.pages.UpdateAbout(c.Context(), body.Content)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(about)
}

type contactBody struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// POST /api/contact
func (h *Handler) SendMessage(c *fiber.Ctx) error {
	var body contactBody
	if err := c.BodyParser(&body); err != nil {
		return utils.JSONError(c, fiber.StatusBadRequest, "invalid request body")
	}
	msg, err := h.pages.SendMessage(c.Context(), body.Name, body.Email, body.Message)
	if err != nil {
		return respondErr(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(msg)
}

// GET /api/contact (admin)
func (h *Handler) ListMessages(c *fiber.Ctx) error {
	msgs, err := h.pages.Messages(c.Context())
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(msgs)
}
