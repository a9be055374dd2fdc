package entity

import "time"

// Posiciones y temas válidos del widget (deben coincidir con el CHECK de la tabla).
const (
	PositionBottomLeft  = "bottom-left"
	PositionBottomRight = "bottom-right"

	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Valores por defecto del widget. Se materializan en la primera lectura de
// /widget/embed si la tienda aún no configuró su widget.
const (
	DefaultWidgetPosition = PositionBottomRight
	DefaultWidgetTheme    = ThemeLight
	DefaultPrimaryColor   = "#3B82F6"
	DefaultGreeting       = "Hi! How can we help you with your services?"
	DefaultPlaceholder    = "Ask about pricing, availability, or how we work..."
)

// ChatWidgetConfig apariencia y comportamiento del widget embebible (una por tienda).
// Los campos string se interpolan tal cual en el snippet HTML: no deben contener
// comillas ni < > sin escapar.
type ChatWidgetConfig struct {
	ID           string
	ShopID       string
	Position     string
	Theme        string
	PrimaryColor string // color hex, ej. #3B82F6
	Greeting     string
	Placeholder  string
	ShowBranding bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewDefaultWidgetConfig devuelve una configuración con los valores por defecto
// documentados (sin ID ni timestamps; los asigna el caso de uso).
func NewDefaultWidgetConfig(shopID string) *ChatWidgetConfig {
	return &ChatWidgetConfig{
		ShopID:       shopID,
		Position:     DefaultWidgetPosition,
		Theme:        DefaultWidgetTheme,
		PrimaryColor: DefaultPrimaryColor,
		Greeting:     DefaultGreeting,
		Placeholder:  DefaultPlaceholder,
		ShowBranding: true,
	}
}
