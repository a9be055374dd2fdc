package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Service un servicio del catálogo de la tienda (muchos por tienda).
type Service struct {
	ID              string
	ShopID          string
	Name            string
	Description     string
	Price           decimal.Decimal
	DurationMinutes int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
