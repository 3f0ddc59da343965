package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"materialku_backend/internals/features/users/auth/dto"
	"materialku_backend/internals/features/users/auth/service"
	helper "materialku_backend/internals/helpers"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

func writeLoginError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrInvalidGoogleToken):
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	case errors.Is(err, service.ErrNotAdmin),
		errors.Is(err, service.ErrUserInactive):
		return helper.JsonError(c, fiber.StatusForbidden, err.Error())
	default:
		return helper.JsonError(c, fiber.StatusInternalServerError, "Login gagal")
	}
}

// 🟢 POST /api/auth/login
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body request tidak valid")
	}

	user, token, err := service.Login(ctrl.DB, req.Email, req.Password)
	if err != nil {
		return writeLoginError(c, err)
	}

	setAccessTokenCookie(c, token)
	return helper.JsonOK(c, "Login berhasil", dto.ToLoginResponse(token, user))
}

// 🟢 POST /api/auth/login-google
func (ctrl *AuthController) LoginGoogle(c *fiber.Ctx) error {
	var req dto.GoogleLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if strings.TrimSpace(req.IDToken) == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "id_token wajib diisi")
	}

	user, token, err := service.LoginWithGoogle(ctrl.DB, req.IDToken)
	if err != nil {
		return writeLoginError(c, err)
	}

	setAccessTokenCookie(c, token)
	return helper.JsonOK(c, "Login berhasil", dto.ToLoginResponse(token, user))
}

// 🟢 POST /api/auth/logout (butuh token valid)
func (ctrl *AuthController) Logout(c *fiber.Ctx) error {
	tokenString := bearerOrCookieToken(c)
	if err := service.Logout(ctrl.DB, tokenString); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Logout gagal")
	}

	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    "",
		MaxAge:   -1,
		HTTPOnly: true,
	})
	return helper.JsonOK(c, "Logout berhasil", nil)
}

// 🟢 GET /api/auth/me (butuh token valid)
// Identitas diambil dari locals yang diisi AuthMiddleware.
func (ctrl *AuthController) Me(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)
	role, _ := c.Locals("userRole").(string)
	name, _ := c.Locals("user_name").(string)

	return helper.JsonOK(c, "OK", fiber.Map{
		"id":        userID,
		"user_name": name,
		"role":      role,
	})
}

func setAccessTokenCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    token,
		MaxAge:   int((24 * 60 * 60)),
		HTTPOnly: true,
		SameSite: "Lax",
	})
}

func bearerOrCookieToken(c *fiber.Ctx) string {
	authHeader := strings.TrimSpace(c.Get("Authorization"))
	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return parts[1]
		}
	}
	return c.Cookies("access_token")
}
