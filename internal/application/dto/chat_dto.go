package dto

// ChatMessage un turno de la conversación. Role se pasa al proveedor sin validar:
// el proveedor es la fuente de verdad sobre roles aceptables.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest historial de conversación enviado por el widget o el dashboard.
type ChatRequest struct {
	Messages []ChatMessage `json:"messages"`
}

// ChatResponse respuesta generada por el LLM.
type ChatResponse struct {
	Reply string `json:"reply"`
}
