package handlers

import (
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"Sistem-Utilitas-QR/config"
	"Sistem-Utilitas-QR/models"
	"Sistem-Utilitas-QR/pkg/paseto"
	util "Sistem-Utilitas-QR/pkg/utils"
	"Sistem-Utilitas-QR/services"
)

// AuthHandler memproses login admin. Kredensialnya pasangan tetap dari env,
// dicek di server; client tidak pernah memegang secret-nya.
type AuthHandler struct {
	cfg   *config.AppConfig
	maker *paseto.Maker
	state *services.PlatformState
}

func NewAuthHandler(cfg *config.AppConfig, maker *paseto.Maker, state *services.PlatformState) *AuthHandler {
	return &AuthHandler{cfg: cfg, maker: maker, state: state}
}

// Login godoc
// @Summary Login Admin
// @Description Memeriksa pasangan kredensial admin dan mengembalikan token PASETO bila cocok
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body models.AdminLoginPayload true "Kredensial admin"
// @Success 200 {object} models.LoginSuccessResponse "Login berhasil"
// @Failure 400 {object} models.ErrorResponse "Payload tidak valid"
// @Failure 401 {object} models.ErrorResponse "Kombinasi email dan password salah"
// @Failure 500 {object} models.ErrorResponse "Gagal membuat token"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var payload models.AdminLoginPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body", "details": err.Error()})
	}

	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errors})
	}

	if payload.Email != h.cfg.AdminEmail ||
		bcrypt.CompareHashAndPassword(h.cfg.AdminPasswordHash, []byte(payload.Password)) != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Kombinasi email dan password salah"})
	}

	user := models.User{
		Name:  "Platform Admin",
		Email: payload.Email,
		Role:  "admin",
	}

	token, err := h.maker.GenerateToken(&user)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal membuat token"})
	}

	if err := h.state.Login(user); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menyimpan sesi login", "details": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Login berhasil",
		"token":   token,
		"user":    user,
	})
}

// Logout godoc
// @Summary Logout Admin
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.LogoutSuccessResponse "Logout berhasil"
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.state.Logout(); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menghapus sesi login", "details": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Logout berhasil. Silakan hapus token dari sisi client.",
	})
}
