package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/censudex/gateway/internal/api/dto"
	"github.com/censudex/gateway/internal/rpc"
	apperrors "github.com/censudex/gateway/pkg/util"
)

// OrdersHandler exposes the orders service over HTTP.
type OrdersHandler struct {
	orders *rpc.OrdersAdapter
}

// NewOrdersHandler constructs handler.
func NewOrdersHandler(adapter *rpc.OrdersAdapter) *OrdersHandler {
	return &OrdersHandler{orders: adapter}
}

// Create handles POST /orders.
func (h *OrdersHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload")
	}
	if req.ClientID == "" || len(req.Items) == 0 {
		return apperrors.NewValidationError("clientId and items required")
	}

	grpcReq := &rpc.CreateOrderRequest{
		ClientID:        req.ClientID,
		ClientEmail:     req.ClientEmail,
		ClientName:      req.ClientName,
		ShippingAddress: req.ShippingAddress,
	}
	for _, item := range req.Items {
		grpcReq.Items = append(grpcReq.Items, rpc.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	order, err := h.orders.Create(c.UserContext(), grpcReq, callMeta(c))
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(order)
}

// List handles GET /orders with optional filters and paging.
func (h *OrdersHandler) List(c *fiber.Ctx) error {
	req := &rpc.QueryOrdersRequest{
		ClientID: c.Query("clientId"),
		Status:   c.Query("status"),
		Page:     int32(c.QueryInt("page", 0)),
		PageSize: int32(c.QueryInt("pageSize", 0)),
	}

	resp, err := h.orders.Query(c.UserContext(), req, callMeta(c))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetByID handles GET /orders/:id.
func (h *OrdersHandler) GetByID(c *fiber.Ctx) error {
	order, err := h.orders.FindOne(c.UserContext(), c.Params("id"), callMeta(c))
	if err != nil {
		return err
	}
	return c.JSON(order)
}

// UpdateStatus handles PUT /orders/:id/status.
func (h *OrdersHandler) UpdateStatus(c *fiber.Ctx) error {
	var req dto.UpdateOrderStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload")
	}
	if req.Status == "" {
		return apperrors.NewValidationError("status required")
	}

	order, err := h.orders.UpdateStatus(c.UserContext(), &rpc.UpdateOrderStatusRequest{
		ID:     c.Params("id"),
		Status: req.Status,
	}, callMeta(c))
	if err != nil {
		return err
	}
	return c.JSON(order)
}

// Cancel handles DELETE /orders/:id.
func (h *OrdersHandler) Cancel(c *fiber.Ctx) error {
	var req dto.CancelOrderRequest
	// A body is optional on cancellation.
	_ = c.BodyParser(&req)

	order, err := h.orders.Cancel(c.UserContext(), &rpc.CancelOrderRequest{
		ID:     c.Params("id"),
		Reason: req.Reason,
	}, callMeta(c))
	if err != nil {
		return err
	}
	return c.JSON(order)
}

// History handles GET /orders/history/:clientId.
func (h *OrdersHandler) History(c *fiber.Ctx) error {
	resp, err := h.orders.ClientHistory(c.UserContext(), c.Params("clientId"), callMeta(c))
	if err != nil {
		return err
	}
	return c.JSON(resp.Orders)
}
