package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/censudex/gateway/internal/api/dto"
	"github.com/censudex/gateway/internal/rpc"
	apperrors "github.com/censudex/gateway/pkg/util"
)

// InventoryHandler exposes the inventory service over HTTP.
type InventoryHandler struct {
	inventory *rpc.InventoryAdapter
}

// NewInventoryHandler constructs handler.
func NewInventoryHandler(adapter *rpc.InventoryAdapter) *InventoryHandler {
	return &InventoryHandler{inventory: adapter}
}

// List handles GET /inventory.
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	resp, err := h.inventory.GetAll(c.UserContext(), callMeta(c))
	if err != nil {
		return err
	}
	return c.JSON(resp.Products)
}

// Add handles POST /inventory.
func (h *InventoryHandler) Add(c *fiber.Ctx) error {
	var req dto.AddInventoryProductRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload")
	}
	if req.Name == "" {
		return apperrors.NewValidationError("name required")
	}

	resp, err := h.inventory.AddProduct(c.UserContext(), &rpc.AddProductRequest{
		Product: rpc.Product{
			ID:           req.ID,
			Name:         req.Name,
			Description:  req.Description,
			Price:        req.Price,
			Stock:        req.Stock,
			MinimumStock: req.MinimumStock,
		},
	}, callMeta(c))
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(resp.Product)
}

// GetByID handles GET /inventory/:productId.
func (h *InventoryHandler) GetByID(c *fiber.Ctx) error {
	resp, err := h.inventory.GetByID(c.UserContext(), c.Params("productId"))
	if err != nil {
		return err
	}
	return c.JSON(resp.Product)
}

// UpdateStock handles PATCH /inventory/:productId/stock. The body is a
// bare JSON number, the amount to adjust by.
func (h *InventoryHandler) UpdateStock(c *fiber.Ctx) error {
	var amount int32
	if err := json.Unmarshal(c.Body(), &amount); err != nil {
		return apperrors.NewValidationError("amount must be an integer")
	}

	resp, err := h.inventory.UpdateStock(c.UserContext(), c.Params("productId"), amount)
	if err != nil {
		return err
	}
	return c.JSON(resp.Product)
}

// SetMinimumStock handles PATCH /inventory/:productId/minimum-stock.
// The body is a bare JSON number.
func (h *InventoryHandler) SetMinimumStock(c *fiber.Ctx) error {
	var minimum int32
	if err := json.Unmarshal(c.Body(), &minimum); err != nil {
		return apperrors.NewValidationError("minimum stock must be an integer")
	}

	resp, err := h.inventory.SetMinimumStock(c.UserContext(), c.Params("productId"), minimum)
	if err != nil {
		return err
	}
	return c.JSON(resp.Product)
}
