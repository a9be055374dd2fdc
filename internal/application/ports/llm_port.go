package ports

import (
	"context"

	"github.com/detailchatbotai/chatbot-api/internal/application/dto"
)

// LLMService puerto hacia el proveedor de chat-completions.
// La implementación vive en infrastructure/ai; el caso de uso de chat no conoce
// el SDK ni el protocolo del proveedor.
type LLMService interface {
	// GenerateChatResponse envía el contexto de sistema seguido del historial tal
	// cual (roles sin validar) y devuelve el contenido de la primera completion.
	GenerateChatResponse(ctx context.Context, systemContext string, history []dto.ChatMessage) (string, error)
}
