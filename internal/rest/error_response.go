package rest

// ErrorResponse is the JSON body returned for non-2xx API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
