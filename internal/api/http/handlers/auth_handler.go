package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/censudex/gateway/internal/authservice"
	apperrors "github.com/censudex/gateway/pkg/util"
)

// AuthHandler proxies authentication endpoints to the auth service.
type AuthHandler struct {
	auth *authservice.Client
}

// NewAuthHandler constructs handler.
func NewAuthHandler(client *authservice.Client) *AuthHandler {
	return &AuthHandler{auth: client}
}

// Login handles POST /auth/login by forwarding the payload verbatim.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	status, body, err := h.auth.Login(c.UserContext(), c.Body())
	if err != nil {
		return apperrors.NewUnavailable("error communicating with the auth service", err.Error())
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Status(status).Send(body)
}

// Logout handles POST /auth/logout by forwarding the bearer header.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	status, body, err := h.auth.Logout(c.UserContext(), c.Get(fiber.HeaderAuthorization))
	if err != nil {
		return apperrors.NewUnavailable("error communicating with the auth service", err.Error())
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Status(status).Send(body)
}

// Validate handles GET /auth/validate, answering with the auth
// service's verdict on the presented token.
func (h *AuthHandler) Validate(c *fiber.Ctx) error {
	result, err := h.auth.Validate(c.UserContext(), c.Get(fiber.HeaderAuthorization))
	if err != nil {
		return apperrors.NewUnavailable("error communicating with the auth service", err.Error())
	}
	status := http.StatusOK
	if !result.IsValid {
		status = http.StatusUnauthorized
	}
	return c.Status(status).JSON(result)
}
