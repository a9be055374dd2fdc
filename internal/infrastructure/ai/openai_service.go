package ai

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"github.com/detailchatbotai/chatbot-api/internal/application/dto"
	"github.com/detailchatbotai/chatbot-api/internal/application/ports"
)

var _ ports.LLMService = (*OpenAIService)(nil)

// OpenAIService adaptador del puerto LLMService contra la API de chat completions de OpenAI.
type OpenAIService struct {
	client *openai.Client
	model  string
}

// NewOpenAIService construye el cliente. Con apiKey vacío el servidor arranca
// igual; el proveedor rechaza la llamada recién en el primer chat.
func NewOpenAIService(apiKey, model string) *OpenAIService {
	return &OpenAIService{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

// GenerateChatResponse envía el contexto del negocio como mensaje system seguido
// del historial de la conversación, y devuelve el texto de la primera choice.
func (s *OpenAIService) GenerateChatResponse(ctx context.Context, systemContext string, history []dto.ChatMessage) (string, error) {
	messages := make([]openai.ChatCompletionMessage, 0, len(history)+1)
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: systemContext,
	})
	for _, m := range history {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    m.Role,
			Content: m.Content,
		})
	}

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       s.model,
		Messages:    messages,
		Temperature: 0.7,
		MaxTokens:   500,
	})
	if err != nil {
		return "", fmt.Errorf("openai chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai chat completion: empty response")
	}
	return resp.Choices[0].Message.Content, nil
}
