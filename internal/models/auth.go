package models

// TokenResponse es la respuesta de POST /auth/token (OAuth2 password form).
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// ChangePasswordRequest es el cuerpo de POST /auth/change-password.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// MessageResponse es la forma de las respuestas que solo traen un mensaje.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse es la forma de error del backend HCE: {"detail": ...}.
// Detail puede ser un string o, en errores de validación, una lista.
type ErrorResponse struct {
	Detail interface{} `json:"detail"`
}
