package dto

import "time"

// CreateFAQRequest entrada para crear una FAQ. PUT usa el mismo cuerpo (reemplazo total).
type CreateFAQRequest struct {
	Question string `json:"question" validate:"required,min=1,max=500"`
	Answer   string `json:"answer" validate:"required"`
}

// FAQResponse salida de una FAQ.
type FAQResponse struct {
	ID        string    `json:"id"`
	ShopID    string    `json:"shop_id"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
