package prompt

import (
	"strconv"
	"strings"

	"github.com/detailchatbotai/chatbot-api/internal/domain/entity"
)

// DefaultSystemPrompt se asigna al crear un ChatConfig sin prompt explícito.
// El texto es un contrato: los prompts ya almacenados se escribieron contra esta
// plantilla, y la personalización por nombre de negocio (ver Build) reemplaza las
// frases literales "a service business" y "the business" que aparecen aquí.
const DefaultSystemPrompt = "You are an enthusiastic and knowledgeable sales representative for a service business. " +
	"Your goal is to help customers understand the value of our services and guide them toward booking. " +
	"Be friendly, professional, and persuasive without being pushy. Highlight the benefits and quality of our work. " +
	"When customers ask about services, explain what's included and why it's worth the investment. " +
	"Always try to move the conversation toward scheduling or getting their contact information. " +
	"Use phrases like 'I'd love to help you with that', 'This service would be perfect for you', and 'Would you like to schedule an appointment?' " +
	"If you don't know something specific, offer to have someone call them back with details." +
	"For peak performance, this is a auto detailing business, so you should be an expert in auto detailing services."

// NoServicesFallback se anexa al contexto cuando la tienda no tiene servicios cargados.
const NoServicesFallback = "\nNote: No specific services have been configured yet. Please ask the customer to contact us directly for service information."

// Build arma el system prompt completo que se envía al LLM a partir del estado
// actual de la tienda. Determinista: mismo input, mismo output; se recalcula en
// cada request de chat, sin caché.
//
// Orden de los bloques (define lo que el modelo ve):
//  1. system_prompt personalizado con el nombre del negocio
//  2. Business Information
//  3. Additional Business Context (si hay user_context)
//  4. Services We Offer (o la nota de fallback si no hay servicios)
//  5. Frequently Asked Questions (si hay FAQs)
//
// Devuelve cadena vacía si config o shop son nil; para el chat eso es un fallo
// duro (sin configuración no hay contexto), para otros lectores no.
func Build(shop *entity.Shop, config *entity.ChatConfig, services []*entity.Service, faqs []*entity.FAQ) string {
	if config == nil || shop == nil {
		return ""
	}

	// Personalizar el prompt base con el nombre del negocio. Es un reemplazo
	// literal de subcadenas (todas las ocurrencias): las plantillas almacenadas
	// usan esas frases exactas, y cualquier otro enfoque rompería la salida de
	// configuraciones existentes.
	customized := config.SystemPrompt
	if shop.BusinessName != "" {
		customized = strings.ReplaceAll(customized, "a service business", shop.BusinessName)
		customized = strings.ReplaceAll(customized, "the business", shop.BusinessName)
	}

	parts := []string{customized}

	var shopInfo strings.Builder
	shopInfo.WriteString("\nBusiness Information:\n")
	shopInfo.WriteString("Business Name: " + shop.BusinessName + "\n")
	if shop.Description != "" {
		shopInfo.WriteString("Description: " + shop.Description + "\n")
	}
	if shop.Website != "" {
		shopInfo.WriteString("Website: " + shop.Website + "\n")
	}
	if shop.Email != "" {
		shopInfo.WriteString("Email: " + shop.Email + "\n")
	}
	if shop.PhoneNumber != "" {
		shopInfo.WriteString("Phone: " + shop.PhoneNumber + "\n")
	}
	parts = append(parts, shopInfo.String())

	if config.UserContext != "" {
		parts = append(parts, "\nAdditional Business Context:\n"+config.UserContext)
	}

	if len(services) > 0 {
		var b strings.Builder
		b.WriteString("\nServices We Offer:\n")
		for _, svc := range services {
			b.WriteString("- " + svc.Name + ": $" + svc.Price.String())
			b.WriteString(" (" + strconv.Itoa(svc.DurationMinutes) + " minutes)")
			if svc.Description != "" {
				b.WriteString(" - " + svc.Description)
			}
			b.WriteString("\n")
		}
		parts = append(parts, b.String())
	} else {
		parts = append(parts, NoServicesFallback)
	}

	if len(faqs) > 0 {
		var b strings.Builder
		b.WriteString("\nFrequently Asked Questions:\n")
		for _, faq := range faqs {
			b.WriteString("Q: " + faq.Question + "\nA: " + faq.Answer + "\n\n")
		}
		parts = append(parts, b.String())
	}

	return strings.Join(parts, "\n")
}
