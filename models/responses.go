package models

// MessageResponse is the envelope of register and login outcomes.
type MessageResponse struct {
	Message string `json:"message"`
}

// LoginResponse is returned by a successful login.
type LoginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

// ErrorResponse is the envelope of failed list operations and of
// authorization failures.
type ErrorResponse struct {
	Error string `json:"error"`
}
