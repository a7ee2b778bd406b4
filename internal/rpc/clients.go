package rpc

import (
	"context"

	"connectrpc.com/connect"
	"go.uber.org/zap"
)

const clientsServiceName = "clients"

// Procedures exposed by the clients service.
const (
	ProcRegisterClient     = "/censudex.clients.v1.ClientService/RegisterClient"
	ProcGetClient          = "/censudex.clients.v1.ClientService/GetClient"
	ProcGetAllClients      = "/censudex.clients.v1.ClientService/GetAllClients"
	ProcGetClientsFiltered = "/censudex.clients.v1.ClientService/GetClientsFiltered"
	ProcUpdateClient       = "/censudex.clients.v1.ClientService/UpdateClient"
	ProcToggleClient       = "/censudex.clients.v1.ClientService/EnableDisableClient"
)

// Client is the client record owned by the clients service.
type Client struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Surename        string `json:"surename"`
	Email           string `json:"email"`
	Username        string `json:"username"`
	Birthdate       string `json:"birthdate"`
	Address         string `json:"address"`
	TelephoneNumber string `json:"telephoneNumber"`
	IsActive        bool   `json:"isActive"`
}

type RegisterClientRequest struct {
	Name            string `json:"name"`
	Surename        string `json:"surename"`
	Email           string `json:"email"`
	Username        string `json:"username"`
	Birthdate       string `json:"birthdate"`
	Address         string `json:"address"`
	TelephoneNumber string `json:"telephoneNumber"`
	Password        string `json:"password"`
}

type RegisterClientResponse struct {
	Success bool    `json:"success"`
	Message string  `json:"message,omitempty"`
	Client  *Client `json:"client,omitempty"`
}

type GetClientRequest struct {
	ID string `json:"id"`
}

type GetClientResponse struct {
	Found  bool    `json:"found"`
	Client *Client `json:"client,omitempty"`
}

type GetAllClientsRequest struct{}

type GetAllClientsResponse struct {
	Clients []Client `json:"clients"`
}

type GetClientsFilteredRequest struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
	Username string `json:"username,omitempty"`
	IsActive *bool  `json:"isActive,omitempty"`
}

type GetClientsFilteredResponse struct {
	Clients []Client `json:"clients"`
}

type UpdateClientRequest struct {
	ID              string `json:"id"`
	Name            string `json:"name,omitempty"`
	Surename        string `json:"surename,omitempty"`
	Email           string `json:"email,omitempty"`
	Username        string `json:"username,omitempty"`
	Birthdate       string `json:"birthdate,omitempty"`
	Address         string `json:"address,omitempty"`
	TelephoneNumber string `json:"telephoneNumber,omitempty"`
	Password        string `json:"password,omitempty"`
}

type UpdateClientResponse struct {
	Success bool    `json:"success"`
	Message string  `json:"message,omitempty"`
	Client  *Client `json:"client,omitempty"`
}

type EnableDisableClientRequest struct {
	ID string `json:"id"`
}

type EnableDisableClientResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// ClientsAdapter wraps the clients service RPC endpoint.
type ClientsAdapter struct {
	register *connect.Client[RegisterClientRequest, RegisterClientResponse]
	get      *connect.Client[GetClientRequest, GetClientResponse]
	getAll   *connect.Client[GetAllClientsRequest, GetAllClientsResponse]
	filtered *connect.Client[GetClientsFilteredRequest, GetClientsFilteredResponse]
	update   *connect.Client[UpdateClientRequest, UpdateClientResponse]
	toggle   *connect.Client[EnableDisableClientRequest, EnableDisableClientResponse]

	logger  *zap.Logger
	baseURL string

	// degradeUnimplemented tolerates a backend that has not implemented
	// an optional capability yet, answering with a default failure
	// response instead of surfacing the error.
	degradeUnimplemented bool
}

// AdapterOption tunes per-adapter behavior.
type AdapterOption func(*adapterSettings)

type adapterSettings struct {
	degradeUnimplemented bool
}

// WithDegradeUnimplemented makes the adapter answer "unimplemented"
// backend replies with a default empty or failure response.
func WithDegradeUnimplemented() AdapterOption {
	return func(s *adapterSettings) { s.degradeUnimplemented = true }
}

// NewClientsAdapter builds the adapter against the configured endpoint.
func NewClientsAdapter(baseURL string, httpClient connect.HTTPClient, logger *zap.Logger, opts ...AdapterOption) *ClientsAdapter {
	var settings adapterSettings
	for _, opt := range opts {
		opt(&settings)
	}
	return &ClientsAdapter{
		register:             newClient[RegisterClientRequest, RegisterClientResponse](httpClient, baseURL, ProcRegisterClient),
		get:                  newClient[GetClientRequest, GetClientResponse](httpClient, baseURL, ProcGetClient),
		getAll:               newClient[GetAllClientsRequest, GetAllClientsResponse](httpClient, baseURL, ProcGetAllClients),
		filtered:             newClient[GetClientsFilteredRequest, GetClientsFilteredResponse](httpClient, baseURL, ProcGetClientsFiltered),
		update:               newClient[UpdateClientRequest, UpdateClientResponse](httpClient, baseURL, ProcUpdateClient),
		toggle:               newClient[EnableDisableClientRequest, EnableDisableClientResponse](httpClient, baseURL, ProcToggleClient),
		logger:               logger,
		baseURL:              baseURL,
		degradeUnimplemented: settings.degradeUnimplemented,
	}
}

// Register creates a new client account. Registration is anonymous, so
// no identity metadata is attached.
func (a *ClientsAdapter) Register(ctx context.Context, req *RegisterClientRequest) (*RegisterClientResponse, error) {
	resp, err := call(ctx, a.register, req, nil)
	if err != nil {
		if a.degraded(err) {
			return &RegisterClientResponse{Success: false, Message: "service unavailable"}, nil
		}
		return nil, mapError(clientsServiceName, err)
	}
	return resp, nil
}

// Get looks a client up by id. Anonymous lookup, no metadata attached.
func (a *ClientsAdapter) Get(ctx context.Context, id string) (*GetClientResponse, error) {
	resp, err := call(ctx, a.get, &GetClientRequest{ID: id}, nil)
	if err != nil {
		if a.degraded(err) {
			return &GetClientResponse{Found: false}, nil
		}
		return nil, mapError(clientsServiceName, err)
	}
	return resp, nil
}

// GetAll lists every client.
func (a *ClientsAdapter) GetAll(ctx context.Context, meta *CallMeta) (*GetAllClientsResponse, error) {
	resp, err := call(ctx, a.getAll, &GetAllClientsRequest{}, meta)
	if err != nil {
		if a.degraded(err) {
			return &GetAllClientsResponse{}, nil
		}
		return nil, mapError(clientsServiceName, err)
	}
	return resp, nil
}

// GetFiltered lists clients matching the given filters.
func (a *ClientsAdapter) GetFiltered(ctx context.Context, req *GetClientsFilteredRequest, meta *CallMeta) (*GetClientsFilteredResponse, error) {
	resp, err := call(ctx, a.filtered, req, meta)
	if err != nil {
		if a.degraded(err) {
			return &GetClientsFilteredResponse{}, nil
		}
		return nil, mapError(clientsServiceName, err)
	}
	return resp, nil
}

// Update modifies a client record.
func (a *ClientsAdapter) Update(ctx context.Context, req *UpdateClientRequest, meta *CallMeta) (*UpdateClientResponse, error) {
	resp, err := call(ctx, a.update, req, meta)
	if err != nil {
		if a.degraded(err) {
			return &UpdateClientResponse{Success: false, Message: "service unavailable"}, nil
		}
		return nil, mapError(clientsServiceName, err)
	}
	return resp, nil
}

// EnableDisable toggles a client's active state.
func (a *ClientsAdapter) EnableDisable(ctx context.Context, id string, meta *CallMeta) (*EnableDisableClientResponse, error) {
	resp, err := call(ctx, a.toggle, &EnableDisableClientRequest{ID: id}, meta)
	if err != nil {
		if a.degraded(err) {
			return &EnableDisableClientResponse{Success: false, Message: "service unavailable"}, nil
		}
		return nil, mapError(clientsServiceName, err)
	}
	return resp, nil
}

func (a *ClientsAdapter) degraded(err error) bool {
	if a.degradeUnimplemented && isUnimplemented(err) {
		a.logger.Warn("clients service not implemented on target", zap.String("address", a.baseURL))
		return true
	}
	return false
}
