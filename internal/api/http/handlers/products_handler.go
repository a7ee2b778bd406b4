package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/censudex/gateway/internal/api/dto"
	"github.com/censudex/gateway/internal/rpc"
	apperrors "github.com/censudex/gateway/pkg/util"
)

// ProductsHandler exposes the products catalog service over HTTP.
type ProductsHandler struct {
	products *rpc.ProductsAdapter
}

// NewProductsHandler constructs handler.
func NewProductsHandler(adapter *rpc.ProductsAdapter) *ProductsHandler {
	return &ProductsHandler{products: adapter}
}

// List handles GET /products with an optional category filter.
func (h *ProductsHandler) List(c *fiber.Ctx) error {
	resp, err := h.products.List(c.UserContext(), &rpc.ListProductsRequest{
		Category: c.Query("category"),
	})
	if err != nil {
		return err
	}
	return c.JSON(resp.Products)
}

// GetByID handles GET /products/:id.
func (h *ProductsHandler) GetByID(c *fiber.Ctx) error {
	resp, err := h.products.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(resp.Product)
}

// Create handles POST /products.
func (h *ProductsHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateCatalogProductRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload")
	}
	if req.Name == "" {
		return apperrors.NewValidationError("name required")
	}

	resp, err := h.products.Create(c.UserContext(), &rpc.CreateProductRequest{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Price:       req.Price,
	}, callMeta(c))
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(resp.Product)
}
