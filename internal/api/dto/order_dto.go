package dto

// CreateOrderItemRequest is one order line in the HTTP body.
type CreateOrderItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  int32  `json:"quantity"`
}

// CreateOrderRequest is the payload for placing an order.
type CreateOrderRequest struct {
	ClientID        string                   `json:"clientId"`
	ClientEmail     string                   `json:"clientEmail"`
	ClientName      string                   `json:"clientName"`
	ShippingAddress string                   `json:"shippingAddress"`
	Items           []CreateOrderItemRequest `json:"items"`
}

// UpdateOrderStatusRequest carries the target status for an order.
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// CancelOrderRequest optionally carries a cancellation reason.
type CancelOrderRequest struct {
	Reason string `json:"reason"`
}
