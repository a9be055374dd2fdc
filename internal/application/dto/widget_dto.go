package dto

import "time"

// WidgetConfigRequest entrada para crear o reemplazar la configuración del widget.
// Los campos vacíos toman los valores por defecto documentados al crear.
type WidgetConfigRequest struct {
	Position     string `json:"position" validate:"omitempty,oneof=bottom-left bottom-right"`
	Theme        string `json:"theme" validate:"omitempty,oneof=light dark"`
	PrimaryColor string `json:"primary_color"`
	Greeting     string `json:"greeting"`
	Placeholder  string `json:"placeholder"`
	ShowBranding *bool  `json:"show_branding"`
}

// WidgetConfigResponse salida de la configuración del widget.
type WidgetConfigResponse struct {
	ID           string    `json:"id"`
	ShopID       string    `json:"shop_id"`
	Position     string    `json:"position"`
	Theme        string    `json:"theme"`
	PrimaryColor string    `json:"primary_color"`
	Greeting     string    `json:"greeting"`
	Placeholder  string    `json:"placeholder"`
	ShowBranding bool      `json:"show_branding"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// WidgetEmbedResponse respuesta JSON con el snippet embebible.
type WidgetEmbedResponse struct {
	EmbedScript string `json:"embed_script"`
}
