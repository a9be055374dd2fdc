package dto

import "time"

// SubscriptionResponse salida de la suscripción del usuario.
type SubscriptionResponse struct {
	PlanName   string     `json:"plan_name"`
	IsActive   bool       `json:"is_active"`
	StartedAt  time.Time  `json:"started_at"`
	CanceledAt *time.Time `json:"canceled_at,omitempty"`
}
