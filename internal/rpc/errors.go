package rpc

import (
	"errors"
	"fmt"

	"connectrpc.com/connect"

	apperrors "github.com/censudex/gateway/pkg/util"
)

// mapError translates a backend RPC failure into the gateway's error
// taxonomy. The mapping is shared by every adapter so no backend leaks
// its own error representation past this boundary:
//
//	not-found            -> 404
//	invalid-argument     -> 400
//	failed-precondition  -> 409
//	unauthenticated      -> 401
//	permission-denied    -> 403
//	any other RPC code   -> 503 with the backend detail attached
//	non-RPC failure      -> 500, detail withheld from the caller
func mapError(service string, err error) error {
	if err == nil {
		return nil
	}

	var connectErr *connect.Error
	if !errors.As(err, &connectErr) {
		return apperrors.NewInternalError(err)
	}

	detail := connectErr.Message()
	switch connectErr.Code() {
	case connect.CodeNotFound:
		return apperrors.NewNotFound(detail)
	case connect.CodeInvalidArgument:
		return apperrors.NewValidationError(detail)
	case connect.CodeFailedPrecondition:
		return apperrors.NewConflict(detail)
	case connect.CodeUnauthenticated:
		return apperrors.NewUnauthorized(detail)
	case connect.CodePermissionDenied:
		return apperrors.NewForbidden(detail)
	default:
		return apperrors.NewUnavailable(
			fmt.Sprintf("error communicating with the %s service", service),
			detail,
		)
	}
}

func isUnimplemented(err error) bool {
	return connect.CodeOf(err) == connect.CodeUnimplemented
}
