package entity

import "time"

// ChatConfig configuración del prompt del chatbot de una tienda (una por tienda,
// índice único sobre chat_configs.shop_id).
type ChatConfig struct {
	ID           string
	ShopID       string
	SystemPrompt string // requerido; se asigna el prompt por defecto al crear si viene vacío
	UserContext  string // texto libre del dueño, se anexa verbatim al contexto
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
