package middleware

import (
	"github.com/gofiber/fiber/v2"

	"Sistem-Utilitas-QR/models"
)

func AdminMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {

		claims, ok := c.Locals("user").(*models.Claims)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Tidak terautentikasi atau data sesi rusak"})
		}

		if claims.Role != "admin" {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Akses ditolak. Hak akses admin diperlukan"})
		}

		return c.Next()
	}
}
