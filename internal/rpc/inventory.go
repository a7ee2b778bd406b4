package rpc

import (
	"context"

	"connectrpc.com/connect"
	"go.uber.org/zap"
)

const inventoryServiceName = "inventory"

// Procedures exposed by the inventory service.
const (
	ProcAddProduct      = "/censudex.inventory.v1.InventoryService/AddProduct"
	ProcGetAllProducts  = "/censudex.inventory.v1.InventoryService/GetAllProducts"
	ProcGetProductByID  = "/censudex.inventory.v1.InventoryService/GetProductById"
	ProcUpdateStock     = "/censudex.inventory.v1.InventoryService/UpdateStock"
	ProcSetMinimumStock = "/censudex.inventory.v1.InventoryService/SetMinimumStock"
)

// Product is the stock-bearing product record owned by the inventory
// service.
type Product struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Description  string  `json:"description,omitempty"`
	Price        float64 `json:"price"`
	Stock        int32   `json:"stock"`
	MinimumStock int32   `json:"minimumStock"`
}

type AddProductRequest struct {
	Product Product `json:"product"`
}

type AddProductResponse struct {
	Product Product `json:"product"`
}

type GetAllProductsRequest struct{}

type GetAllProductsResponse struct {
	Products []Product `json:"products"`
}

type GetProductByIDRequest struct {
	ProductID string `json:"productId"`
}

type GetProductByIDResponse struct {
	Product Product `json:"product"`
}

type UpdateStockRequest struct {
	ProductID string `json:"productId"`
	Amount    int32  `json:"amount"`
}

type UpdateStockResponse struct {
	Product Product `json:"product"`
}

type SetMinimumStockRequest struct {
	ProductID    string `json:"productId"`
	MinimumStock int32  `json:"minimumStock"`
}

type SetMinimumStockResponse struct {
	Product Product `json:"product"`
}

// InventoryAdapter wraps the inventory service RPC endpoint.
type InventoryAdapter struct {
	add     *connect.Client[AddProductRequest, AddProductResponse]
	getAll  *connect.Client[GetAllProductsRequest, GetAllProductsResponse]
	getByID *connect.Client[GetProductByIDRequest, GetProductByIDResponse]
	stock   *connect.Client[UpdateStockRequest, UpdateStockResponse]
	minimum *connect.Client[SetMinimumStockRequest, SetMinimumStockResponse]

	logger *zap.Logger
}

// NewInventoryAdapter builds the adapter against the configured endpoint.
func NewInventoryAdapter(baseURL string, httpClient connect.HTTPClient, logger *zap.Logger) *InventoryAdapter {
	return &InventoryAdapter{
		add:     newClient[AddProductRequest, AddProductResponse](httpClient, baseURL, ProcAddProduct),
		getAll:  newClient[GetAllProductsRequest, GetAllProductsResponse](httpClient, baseURL, ProcGetAllProducts),
		getByID: newClient[GetProductByIDRequest, GetProductByIDResponse](httpClient, baseURL, ProcGetProductByID),
		stock:   newClient[UpdateStockRequest, UpdateStockResponse](httpClient, baseURL, ProcUpdateStock),
		minimum: newClient[SetMinimumStockRequest, SetMinimumStockResponse](httpClient, baseURL, ProcSetMinimumStock),
		logger:  logger,
	}
}

// AddProduct registers a new product in the inventory.
func (a *InventoryAdapter) AddProduct(ctx context.Context, req *AddProductRequest, meta *CallMeta) (*AddProductResponse, error) {
	resp, err := call(ctx, a.add, req, meta)
	if err != nil {
		return nil, mapError(inventoryServiceName, err)
	}
	return resp, nil
}

// GetAll lists every product with its stock levels.
func (a *InventoryAdapter) GetAll(ctx context.Context, meta *CallMeta) (*GetAllProductsResponse, error) {
	resp, err := call(ctx, a.getAll, &GetAllProductsRequest{}, meta)
	if err != nil {
		return nil, mapError(inventoryServiceName, err)
	}
	return resp, nil
}

// GetByID fetches a single product.
func (a *InventoryAdapter) GetByID(ctx context.Context, productID string) (*GetProductByIDResponse, error) {
	resp, err := call(ctx, a.getByID, &GetProductByIDRequest{ProductID: productID}, nil)
	if err != nil {
		return nil, mapError(inventoryServiceName, err)
	}
	return resp, nil
}

// UpdateStock adjusts a product's stock by the given amount. The
// backend reports failed-precondition when the adjustment violates a
// business rule, which surfaces as a conflict.
func (a *InventoryAdapter) UpdateStock(ctx context.Context, productID string, amount int32) (*UpdateStockResponse, error) {
	resp, err := call(ctx, a.stock, &UpdateStockRequest{ProductID: productID, Amount: amount}, nil)
	if err != nil {
		return nil, mapError(inventoryServiceName, err)
	}
	return resp, nil
}

// SetMinimumStock sets a product's reorder threshold.
func (a *InventoryAdapter) SetMinimumStock(ctx context.Context, productID string, minimumStock int32) (*SetMinimumStockResponse, error) {
	resp, err := call(ctx, a.minimum, &SetMinimumStockRequest{ProductID: productID, MinimumStock: minimumStock}, nil)
	if err != nil {
		return nil, mapError(inventoryServiceName, err)
	}
	return resp, nil
}
