package dto

// RegisterClientRequest is the payload for anonymous client registration.
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

// UpdateClientRequest carries the fields a client may change. Empty
// fields are left untouched by the clients service.
type UpdateClientRequest struct {
	Name            string `json:"name"`
	Surename        string `json:"surename"`
	Email           string `json:"email"`
	Username        string `json:"username"`
	Birthdate       string `json:"birthdate"`
	Address         string `json:"address"`
	TelephoneNumber string `json:"telephoneNumber"`
	Password        string `json:"password"`
}
