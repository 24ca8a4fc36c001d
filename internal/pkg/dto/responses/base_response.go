package responses

type ResponseDTO struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// CheckoutResponseDTO is the envelope of the checkout endpoint, which has
// always carried its payload under "session" rather than "data".
type CheckoutResponseDTO struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Session interface{} `json:"session"`
}

type ErrorResponseDTO struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}
