package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/censudex/gateway/internal/api/dto"
	"github.com/censudex/gateway/internal/rpc"
	apperrors "github.com/censudex/gateway/pkg/util"
)

// ClientsHandler exposes the clients service over HTTP.
type ClientsHandler struct {
	clients *rpc.ClientsAdapter
}

// NewClientsHandler constructs handler.
func NewClientsHandler(adapter *rpc.ClientsAdapter) *ClientsHandler {
	return &ClientsHandler{clients: adapter}
}

// List handles GET /clients. Without filters every client is returned;
// with filters the filtered lookup is used.
func (h *ClientsHandler) List(c *fiber.Ctx) error {
	name := c.Query("name")
	email := c.Query("email")
	username := c.Query("username")
	isActiveRaw := c.Query("isActive")

	meta := callMeta(c)

	if name == "" && email == "" && username == "" && isActiveRaw == "" {
		resp, err := h.clients.GetAll(c.UserContext(), meta)
		if err != nil {
			return err
		}
		return c.JSON(resp.Clients)
	}

	req := &rpc.GetClientsFilteredRequest{
		Name:     name,
		Email:    email,
		Username: username,
	}
	if isActiveRaw != "" {
		isActive := c.QueryBool("isActive")
		req.IsActive = &isActive
	}

	resp, err := h.clients.GetFiltered(c.UserContext(), req, meta)
	if err != nil {
		return err
	}
	return c.JSON(resp.Clients)
}

// GetByID handles GET /clients/:id. Anonymous lookup.
func (h *ClientsHandler) GetByID(c *fiber.Ctx) error {
	resp, err := h.clients.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	if !resp.Found {
		return apperrors.NewNotFound("client not found")
	}
	return c.JSON(resp.Client)
}

// Register handles POST /clients. Anonymous registration.
func (h *ClientsHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterClientRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload")
	}
	if req.Email == "" || req.Username == "" || req.Password == "" {
		return apperrors.NewValidationError("email, username, password required")
	}

	resp, err := h.clients.Register(c.UserContext(), &rpc.RegisterClientRequest{
		Name:            req.Name,
		Surename:        req.Surename,
		Email:           req.Email,
		Username:        req.Username,
		Birthdate:       req.Birthdate,
		Address:         req.Address,
		TelephoneNumber: req.TelephoneNumber,
		Password:        req.Password,
	})
	if err != nil {
		return err
	}
	if !resp.Success {
		return apperrors.NewValidationError(resp.Message)
	}
	return c.Status(http.StatusCreated).JSON(resp.Client)
}

// Update handles PATCH /clients/:id for the authenticated caller.
func (h *ClientsHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateClientRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload")
	}

	resp, err := h.clients.Update(c.UserContext(), &rpc.UpdateClientRequest{
		ID:              c.Params("id"),
		Name:            req.Name,
		Surename:        req.Surename,
		Email:           req.Email,
		Username:        req.Username,
		Birthdate:       req.Birthdate,
		Address:         req.Address,
		TelephoneNumber: req.TelephoneNumber,
		Password:        req.Password,
	}, callMeta(c))
	if err != nil {
		return err
	}
	if !resp.Success {
		return apperrors.NewValidationError(resp.Message)
	}
	return c.JSON(resp.Client)
}

// EnableDisable handles DELETE /clients/:id, toggling the account state.
func (h *ClientsHandler) EnableDisable(c *fiber.Ctx) error {
	resp, err := h.clients.EnableDisable(c.UserContext(), c.Params("id"), callMeta(c))
	if err != nil {
		return err
	}
	if !resp.Success {
		return apperrors.NewValidationError(resp.Message)
	}
	return c.JSON(fiber.Map{"message": resp.Message, "success": resp.Success})
}
