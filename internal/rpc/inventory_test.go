package rpc

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"connectrpc.com/connect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	apperrors "github.com/censudex/gateway/pkg/util"
)

func TestInventoryAdapterUpdateStock(t *testing.T) {
	mux := http.NewServeMux()
	serveProc(mux, ProcUpdateStock, func(_ context.Context, req *connect.Request[UpdateStockRequest]) (*connect.Response[UpdateStockResponse], error) {
		assert.Equal(t, "p1", req.Msg.ProductID)
		assert.Equal(t, int32(-3), req.Msg.Amount)
		return connect.NewResponse(&UpdateStockResponse{
			Product: Product{ID: "p1", Stock: 7},
		}), nil
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	adapter := NewInventoryAdapter(srv.URL, srv.Client(), zap.NewNop())
	resp, err := adapter.UpdateStock(context.Background(), "p1", -3)
	require.NoError(t, err)
	assert.Equal(t, int32(7), resp.Product.Stock)
}

func TestInventoryAdapterNotFoundMapsTo404(t *testing.T) {
	mux := http.NewServeMux()
	serveProc(mux, ProcUpdateStock, func(context.Context, *connect.Request[UpdateStockRequest]) (*connect.Response[UpdateStockResponse], error) {
		return nil, connect.NewError(connect.CodeNotFound, errors.New("product p1 not found"))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	adapter := NewInventoryAdapter(srv.URL, srv.Client(), zap.NewNop())
	_, err := adapter.UpdateStock(context.Background(), "p1", 1)
	require.Error(t, err)

	domainErr := apperrors.ToDomainError(err)
	assert.Equal(t, http.StatusNotFound, domainErr.HTTPStatus)
	assert.Equal(t, "product p1 not found", domainErr.Message)
}

func TestInventoryAdapterFailedPreconditionMapsTo409(t *testing.T) {
	mux := http.NewServeMux()
	serveProc(mux, ProcUpdateStock, func(context.Context, *connect.Request[UpdateStockRequest]) (*connect.Response[UpdateStockResponse], error) {
		return nil, connect.NewError(connect.CodeFailedPrecondition, errors.New("stock cannot drop below zero"))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	adapter := NewInventoryAdapter(srv.URL, srv.Client(), zap.NewNop())
	_, err := adapter.UpdateStock(context.Background(), "p1", -99)
	require.Error(t, err)

	domainErr := apperrors.ToDomainError(err)
	assert.Equal(t, http.StatusConflict, domainErr.HTTPStatus)
	assert.Equal(t, "stock cannot drop below zero", domainErr.Message)
}

func TestInventoryAdapterInvalidArgumentMapsTo400(t *testing.T) {
	mux := http.NewServeMux()
	serveProc(mux, ProcAddProduct, func(context.Context, *connect.Request[AddProductRequest]) (*connect.Response[AddProductResponse], error) {
		return nil, connect.NewError(connect.CodeInvalidArgument, errors.New("price must be positive"))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	adapter := NewInventoryAdapter(srv.URL, srv.Client(), zap.NewNop())
	_, err := adapter.AddProduct(context.Background(), &AddProductRequest{Product: Product{Name: "x", Price: -1}}, nil)
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apperrors.ToDomainError(err).HTTPStatus)
}

func TestInventoryAdapterUnreachableBackendMapsTo503(t *testing.T) {
	srv := httptest.NewServer(http.NewServeMux())
	srv.Close()

	adapter := NewInventoryAdapter(srv.URL, http.DefaultClient, zap.NewNop())
	_, err := adapter.GetAll(context.Background(), nil)
	require.Error(t, err)

	domainErr := apperrors.ToDomainError(err)
	assert.Equal(t, http.StatusServiceUnavailable, domainErr.HTTPStatus)
}

func TestInventoryAdapterDoesNotDegradeUnimplemented(t *testing.T) {
	mux := http.NewServeMux()
	unimplementedProc[GetAllProductsRequest, GetAllProductsResponse](mux, ProcGetAllProducts)
	srv := httptest.NewServer(mux)
	defer srv.Close()

	adapter := NewInventoryAdapter(srv.URL, srv.Client(), zap.NewNop())
	_, err := adapter.GetAll(context.Background(), nil)
	require.Error(t, err, "only adapters opted into degradation may swallow unimplemented")
	assert.Equal(t, http.StatusServiceUnavailable, apperrors.ToDomainError(err).HTTPStatus)
}
