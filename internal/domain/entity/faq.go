package entity

import "time"

// FAQ pregunta frecuente de una tienda (muchas por tienda).
type FAQ struct {
	ID        string
	ShopID    string
	Question  string
	Answer    string
	CreatedAt time.Time
	UpdatedAt time.Time
}
