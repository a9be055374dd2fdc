package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateServiceRequest entrada para crear un servicio del catálogo.
// PUT usa el mismo cuerpo: la actualización reemplaza todos los campos.
type CreateServiceRequest struct {
	Name            string          `json:"name" validate:"required,min=1,max=255"`
	Description     string          `json:"description"`
	Price           decimal.Decimal `json:"price"`
	DurationMinutes int             `json:"duration_minutes" validate:"min=0"`
}

// ServiceResponse salida de un servicio.
type ServiceResponse struct {
	ID              string          `json:"id"`
	ShopID          string          `json:"shop_id"`
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	Price           decimal.Decimal `json:"price"`
	DurationMinutes int             `json:"duration_minutes"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}
