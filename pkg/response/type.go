package response

// Resp is the JSON body of every error response, and of success responses that carry no payload.
type Resp struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}
