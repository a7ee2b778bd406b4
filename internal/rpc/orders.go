package rpc

import (
	"context"

	"connectrpc.com/connect"
	"go.uber.org/zap"
)

const ordersServiceName = "orders"

// Procedures exposed by the orders service.
const (
	ProcCreateOrder       = "/censudex.orders.v1.OrderService/CreateOrder"
	ProcQueryOrders       = "/censudex.orders.v1.OrderService/QueryOrders"
	ProcFindOneOrder      = "/censudex.orders.v1.OrderService/FindOneOrder"
	ProcUpdateOrderStatus = "/censudex.orders.v1.OrderService/UpdateOrderStatus"
	ProcCancelOrder       = "/censudex.orders.v1.OrderService/CancelOrder"
	ProcClientHistory     = "/censudex.orders.v1.OrderService/GetClientHistory"
)

// OrderItem is one line of an order.
type OrderItem struct {
	ProductID string  `json:"productId"`
	Quantity  int32   `json:"quantity"`
	UnitPrice float64 `json:"unitPrice,omitempty"`
}

// Order is the order record owned by the orders service.
type Order struct {
	ID              string      `json:"id"`
	ClientID        string      `json:"clientId"`
	ClientEmail     string      `json:"clientEmail,omitempty"`
	ClientName      string      `json:"clientName,omitempty"`
	ShippingAddress string      `json:"shippingAddress,omitempty"`
	Status          string      `json:"status"`
	Items           []OrderItem `json:"items,omitempty"`
	Total           float64     `json:"total,omitempty"`
	CreatedAt       string      `json:"createdAt,omitempty"`
}

type CreateOrderRequest struct {
	ClientID        string      `json:"clientId"`
	ClientEmail     string      `json:"clientEmail"`
	ClientName      string      `json:"clientName"`
	ShippingAddress string      `json:"shippingAddress"`
	Items           []OrderItem `json:"items"`
}

type QueryOrdersRequest struct {
	ClientID string `json:"clientId,omitempty"`
	Status   string `json:"status,omitempty"`
	Page     int32  `json:"page,omitempty"`
	PageSize int32  `json:"pageSize,omitempty"`
}

type QueryOrdersResponse struct {
	Orders []Order `json:"orders"`
	Total  int32   `json:"total"`
}

type FindOneOrderRequest struct {
	ID string `json:"id"`
}

type UpdateOrderStatusRequest struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type CancelOrderRequest struct {
	ID     string `json:"id"`
	Reason string `json:"reason,omitempty"`
}

type GetClientHistoryRequest struct {
	ClientID string `json:"clientId"`
}

type GetClientHistoryResponse struct {
	Orders []Order `json:"orders"`
}

// OrdersAdapter wraps the orders service RPC endpoint. Every operation
// forwards the caller identity; the orders service makes its own
// ownership decisions based on it.
type OrdersAdapter struct {
	create  *connect.Client[CreateOrderRequest, Order]
	query   *connect.Client[QueryOrdersRequest, QueryOrdersResponse]
	findOne *connect.Client[FindOneOrderRequest, Order]
	status  *connect.Client[UpdateOrderStatusRequest, Order]
	cancel  *connect.Client[CancelOrderRequest, Order]
	history *connect.Client[GetClientHistoryRequest, GetClientHistoryResponse]

	logger *zap.Logger
}

// NewOrdersAdapter builds the adapter against the configured endpoint.
func NewOrdersAdapter(baseURL string, httpClient connect.HTTPClient, logger *zap.Logger) *OrdersAdapter {
	return &OrdersAdapter{
		create:  newClient[CreateOrderRequest, Order](httpClient, baseURL, ProcCreateOrder),
		query:   newClient[QueryOrdersRequest, QueryOrdersResponse](httpClient, baseURL, ProcQueryOrders),
		findOne: newClient[FindOneOrderRequest, Order](httpClient, baseURL, ProcFindOneOrder),
		status:  newClient[UpdateOrderStatusRequest, Order](httpClient, baseURL, ProcUpdateOrderStatus),
		cancel:  newClient[CancelOrderRequest, Order](httpClient, baseURL, ProcCancelOrder),
		history: newClient[GetClientHistoryRequest, GetClientHistoryResponse](httpClient, baseURL, ProcClientHistory),
		logger:  logger,
	}
}

// Create places a new order.
func (a *OrdersAdapter) Create(ctx context.Context, req *CreateOrderRequest, meta *CallMeta) (*Order, error) {
	resp, err := call(ctx, a.create, req, meta)
	if err != nil {
		return nil, mapError(ordersServiceName, err)
	}
	return resp, nil
}

// Query lists orders matching the given filters.
func (a *OrdersAdapter) Query(ctx context.Context, req *QueryOrdersRequest, meta *CallMeta) (*QueryOrdersResponse, error) {
	resp, err := call(ctx, a.query, req, meta)
	if err != nil {
		return nil, mapError(ordersServiceName, err)
	}
	return resp, nil
}

// FindOne fetches a single order by id.
func (a *OrdersAdapter) FindOne(ctx context.Context, id string, meta *CallMeta) (*Order, error) {
	resp, err := call(ctx, a.findOne, &FindOneOrderRequest{ID: id}, meta)
	if err != nil {
		return nil, mapError(ordersServiceName, err)
	}
	return resp, nil
}

// UpdateStatus transitions an order to a new status.
func (a *OrdersAdapter) UpdateStatus(ctx context.Context, req *UpdateOrderStatusRequest, meta *CallMeta) (*Order, error) {
	resp, err := call(ctx, a.status, req, meta)
	if err != nil {
		return nil, mapError(ordersServiceName, err)
	}
	return resp, nil
}

// Cancel cancels an order.
func (a *OrdersAdapter) Cancel(ctx context.Context, req *CancelOrderRequest, meta *CallMeta) (*Order, error) {
	resp, err := call(ctx, a.cancel, req, meta)
	if err != nil {
		return nil, mapError(ordersServiceName, err)
	}
	return resp, nil
}

// ClientHistory lists a client's past orders.
func (a *OrdersAdapter) ClientHistory(ctx context.Context, clientID string, meta *CallMeta) (*GetClientHistoryResponse, error) {
	resp, err := call(ctx, a.history, &GetClientHistoryRequest{ClientID: clientID}, meta)
	if err != nil {
		return nil, mapError(ordersServiceName, err)
	}
	return resp, nil
}
