package dto

import "time"

// CreateShopRequest entrada para crear la tienda del usuario autenticado.
// También se usa en PUT /shops/me: la actualización reemplaza todos los campos (sin PATCH).
type CreateShopRequest struct {
	BusinessName string `json:"business_name" validate:"required,min=1,max=255"`
	Website      string `json:"website"`
	Email        string `json:"email"`
	PhoneNumber  string `json:"phone_number"`
	Description  string `json:"description"`
}

// ShopResponse salida de una tienda.
type ShopResponse struct {
	ID           string    `json:"id"`
	OwnerID      string    `json:"owner_id"`
	BusinessName string    `json:"business_name"`
	Website      string    `json:"website"`
	Email        string    `json:"email"`
	PhoneNumber  string    `json:"phone_number"`
	Description  string    `json:"description"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
