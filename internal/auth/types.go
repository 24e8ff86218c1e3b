package auth

// TokenRequest carries a token the caller wants to hand over.
type TokenRequest struct {
	Token string `json:"token"`
}

// MessageResponse is the reply of the auth endpoints.
type MessageResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
