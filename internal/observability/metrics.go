package observability

import "github.com/prometheus/client_golang/prometheus"

var (
	// ChatRequestsTotal cuenta requests de chat (propios y públicos).
	ChatRequestsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "chat_requests_total",
			Help: "Total de requests de chat recibidos",
		},
	)

	// LLMRequestDuration latencia de la llamada al proveedor LLM.
	LLMRequestDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "llm_request_duration_seconds",
			Help:    "Duración de las llamadas al proveedor de chat-completions",
			Buckets: prometheus.DefBuckets,
		},
	)

	// LLMErrorsTotal fallos del proveedor (timeout, transporte, respuesta malformada).
	LLMErrorsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "llm_errors_total",
			Help: "Total de llamadas al LLM que terminaron en error",
		},
	)
)

// Register registra los colectores en el registry por defecto. Llamar una vez en main.
func Register() {
	prometheus.MustRegister(ChatRequestsTotal, LLMRequestDuration, LLMErrorsTotal)
}
