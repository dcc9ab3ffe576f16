package models

// SuccessResponse başarılı istekler için ortak zarf.
// Hata gövdesi middleware/errors.ErrorResponse ile üretilir.
type SuccessResponse struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}
