package entity

import "time"

// Shop representa el negocio de un tenant. Un usuario (OwnerID) tiene a lo sumo una tienda;
// la unicidad la respalda el índice único sobre shops.owner_id.
// Borrar la tienda arrastra Services, FAQs, ChatConfig y ChatWidgetConfig (FK ON DELETE CASCADE).
type Shop struct {
	ID           string
	OwnerID      string // identidad externa verificada (Supabase user id)
	BusinessName string
	Website      string
	Email        string
	PhoneNumber  string
	Description  string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
