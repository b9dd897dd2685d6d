package dto

// ErrorResponse cuerpo de error HTTP: {"message": "<texto>"}.
type ErrorResponse struct {
	Message string `json:"message"`
}

// MessageResponse cuerpo de éxito para operaciones que solo confirman.
type MessageResponse struct {
	Message string `json:"message"`
}
