package entity

import "time"

// Plan único disponible hoy. No hay tiers de pago; cancelar conserva el registro.
const PlanFree = "free"

// Subscription suscripción SaaS de un usuario (una por owner, activa o histórica).
// Cancelar marca IsActive=false y estampa CanceledAt; el registro nunca se borra
// salvo al eliminar la cuenta completa.
type Subscription struct {
	ID         string
	OwnerID    string
	PlanName   string
	IsActive   bool
	StartedAt  time.Time
	CanceledAt *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
