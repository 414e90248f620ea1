package handler

import (
	"go-catalog-api/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type AuthHandler struct {
	authService service.AuthService
	log         *logrus.Logger
}

func NewAuthHandler(authService service.AuthService, log *logrus.Logger) *AuthHandler {
	return &AuthHandler{authService: authService, log: log}
}

// Signup registers a new account
// POST /signup
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var req service.SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "wrong inputs"})
	}

	user, err := h.authService.Signup(c.UserContext(), &req)
	if err != nil {
		return respondError(c, h.log, err, "something went wrong")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "user created",
		"user":    user,
	})
}

// Signin exchanges credentials for a token
// POST /signin
func (h *AuthHandler) Signin(c *fiber.Ctx) error {
	var req service.SigninRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "wrong inputs"})
	}

	res, err := h.authService.Signin(c.UserContext(), &req)
	if err != nil {
		return respondError(c, h.log, err, "something went wrong")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "signin successful",
		"token":   res.Token,
	})
}
