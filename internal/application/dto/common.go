package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// DetailResponse respuesta simple de confirmación (delete, etc.).
type DetailResponse struct {
	Detail string `json:"detail"`
}
