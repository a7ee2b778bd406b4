package rpc

import (
	"errors"
	"net/http"
	"testing"

	"connectrpc.com/connect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/censudex/gateway/pkg/util"
)

func TestMapErrorStatusTable(t *testing.T) {
	tests := []struct {
		name       string
		code       connect.Code
		wantStatus int
	}{
		{name: "not found", code: connect.CodeNotFound, wantStatus: http.StatusNotFound},
		{name: "invalid argument", code: connect.CodeInvalidArgument, wantStatus: http.StatusBadRequest},
		{name: "failed precondition", code: connect.CodeFailedPrecondition, wantStatus: http.StatusConflict},
		{name: "unauthenticated", code: connect.CodeUnauthenticated, wantStatus: http.StatusUnauthorized},
		{name: "permission denied", code: connect.CodePermissionDenied, wantStatus: http.StatusForbidden},
		{name: "unimplemented", code: connect.CodeUnimplemented, wantStatus: http.StatusServiceUnavailable},
		{name: "unavailable", code: connect.CodeUnavailable, wantStatus: http.StatusServiceUnavailable},
		{name: "internal", code: connect.CodeInternal, wantStatus: http.StatusServiceUnavailable},
		{name: "unknown", code: connect.CodeUnknown, wantStatus: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := mapError("inventory", connect.NewError(tt.code, errors.New("backend detail")))
			domainErr := apperrors.ToDomainError(err)
			assert.Equal(t, tt.wantStatus, domainErr.HTTPStatus)
		})
	}
}

func TestMapErrorKeepsBackendDetail(t *testing.T) {
	err := mapError("inventory", connect.NewError(connect.CodeNotFound, errors.New("product p1 not found")))
	domainErr := apperrors.ToDomainError(err)
	assert.Equal(t, "product p1 not found", domainErr.Message)
}

func TestMapErrorUnavailableIncludesDetail(t *testing.T) {
	err := mapError("orders", connect.NewError(connect.CodeUnavailable, errors.New("connection refused")))
	domainErr := apperrors.ToDomainError(err)
	require.Equal(t, http.StatusServiceUnavailable, domainErr.HTTPStatus)
	assert.Equal(t, "error communicating with the orders service", domainErr.Message)
	assert.Equal(t, "connection refused", domainErr.Details)
}

func TestMapErrorNonRPCFailureIsInternal(t *testing.T) {
	err := mapError("clients", errors.New("boom"))
	domainErr := apperrors.ToDomainError(err)
	assert.Equal(t, http.StatusInternalServerError, domainErr.HTTPStatus)
	assert.Equal(t, "an unexpected error occurred", domainErr.Message, "internal detail must be withheld")
}

func TestMapErrorNil(t *testing.T) {
	assert.NoError(t, mapError("clients", nil))
}
