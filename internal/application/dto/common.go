package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MessageResponse respuesta simple con mensaje y datos opcionales.
type MessageResponse struct {
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}
