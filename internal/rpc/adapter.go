package rpc

import (
	"context"

	"connectrpc.com/connect"
)

func newClient[Req, Res any](httpClient connect.HTTPClient, baseURL, procedure string) *connect.Client[Req, Res] {
	return connect.NewClient[Req, Res](httpClient, baseURL+procedure, clientOptions()...)
}

// call issues one unary RPC, attaching identity metadata when provided.
// The raw error is returned so callers can apply the shared mapping (or
// the unimplemented degradation) themselves.
func call[Req, Res any](ctx context.Context, client *connect.Client[Req, Res], msg *Req, meta *CallMeta) (*Res, error) {
	req := connect.NewRequest(msg)
	meta.apply(req.Header())
	resp, err := client.CallUnary(ctx, req)
	if err != nil {
		return nil, err
	}
	return resp.Msg, nil
}
