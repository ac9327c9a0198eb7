package utils

import "github.com/gofiber/fiber/v2"

// JSONError writes the `{"message": ...}` error body every endpoint uses.
func JSONError(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(fiber.Map{"message": msg})
}
