package rpc

import (
	"context"

	"connectrpc.com/connect"
	"go.uber.org/zap"
)

const productsServiceName = "products"

// Procedures exposed by the products catalog service.
const (
	ProcListCatalog   = "/censudex.products.v1.ProductService/ListProducts"
	ProcGetCatalog    = "/censudex.products.v1.ProductService/GetProduct"
	ProcCreateCatalog = "/censudex.products.v1.ProductService/CreateProduct"
)

// CatalogProduct is the descriptive product record owned by the
// products service; stock levels live in the inventory service.
type CatalogProduct struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Category    string  `json:"category,omitempty"`
	Price       float64 `json:"price"`
}

type ListProductsRequest struct {
	Category string `json:"category,omitempty"`
}

type ListProductsResponse struct {
	Products []CatalogProduct `json:"products"`
}

type GetProductRequest struct {
	ID string `json:"id"`
}

type GetProductResponse struct {
	Product CatalogProduct `json:"product"`
}

type CreateProductRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Category    string  `json:"category,omitempty"`
	Price       float64 `json:"price"`
}

type CreateProductResponse struct {
	Product CatalogProduct `json:"product"`
}

// ProductsAdapter wraps the products catalog RPC endpoint.
type ProductsAdapter struct {
	list   *connect.Client[ListProductsRequest, ListProductsResponse]
	get    *connect.Client[GetProductRequest, GetProductResponse]
	create *connect.Client[CreateProductRequest, CreateProductResponse]

	logger *zap.Logger
}

// NewProductsAdapter builds the adapter against the configured endpoint.
func NewProductsAdapter(baseURL string, httpClient connect.HTTPClient, logger *zap.Logger) *ProductsAdapter {
	return &ProductsAdapter{
		list:   newClient[ListProductsRequest, ListProductsResponse](httpClient, baseURL, ProcListCatalog),
		get:    newClient[GetProductRequest, GetProductResponse](httpClient, baseURL, ProcGetCatalog),
		create: newClient[CreateProductRequest, CreateProductResponse](httpClient, baseURL, ProcCreateCatalog),
		logger: logger,
	}
}

// List returns catalog entries, optionally filtered by category.
func (a *ProductsAdapter) List(ctx context.Context, req *ListProductsRequest) (*ListProductsResponse, error) {
	resp, err := call(ctx, a.list, req, nil)
	if err != nil {
		return nil, mapError(productsServiceName, err)
	}
	return resp, nil
}

// Get fetches one catalog entry.
func (a *ProductsAdapter) Get(ctx context.Context, id string) (*GetProductResponse, error) {
	resp, err := call(ctx, a.get, &GetProductRequest{ID: id}, nil)
	if err != nil {
		return nil, mapError(productsServiceName, err)
	}
	return resp, nil
}

// Create adds a catalog entry.
func (a *ProductsAdapter) Create(ctx context.Context, req *CreateProductRequest, meta *CallMeta) (*CreateProductResponse, error) {
	resp, err := call(ctx, a.create, req, meta)
	if err != nil {
		return nil, mapError(productsServiceName, err)
	}
	return resp, nil
}
