package dto

import "time"

// CreateChatConfigRequest entrada para crear la configuración de chat.
// SystemPrompt es opcional: si viene vacío se asigna el prompt por defecto.
type CreateChatConfigRequest struct {
	SystemPrompt string `json:"system_prompt"`
	UserContext  string `json:"user_context"`
}

// UpdateChatConfigRequest entrada de actualización. Solo user_context es editable
// después de la creación; se reemplaza completo (sin PATCH).
type UpdateChatConfigRequest struct {
	UserContext string `json:"user_context"`
}

// ChatConfigResponse salida de la configuración de chat.
type ChatConfigResponse struct {
	ID           string    `json:"id"`
	ShopID       string    `json:"shop_id"`
	SystemPrompt string    `json:"system_prompt"`
	UserContext  string    `json:"user_context"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
