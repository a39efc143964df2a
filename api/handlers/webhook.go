// ABOUTME: Webhook handler for the Huma API
// ABOUTME: Accepts Dialogflow fulfillment requests and answers with Actions on Google replies

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"blog-search-api/api/dto/mappers"
	"blog-search-api/api/dto/requests"
	"blog-search-api/api/dto/responses"
	"blog-search-api/core/domain"
	"blog-search-api/core/interfaces"
)

// Assistant answers a routed intent
type Assistant interface {
	Handle(ctx context.Context, intent domain.Intent) (*domain.Reply, error)
}

// WebhookHandler handles fulfillment requests
type WebhookHandler struct {
	assistant Assistant
	logger    interfaces.Logger
}

// NewWebhookHandler creates a new webhook handler
func NewWebhookHandler(assistant Assistant, logger interfaces.Logger) *WebhookHandler {
	if logger == nil {
		logger = interfaces.NopLogger{}
	}
	return &WebhookHandler{
		assistant: assistant,
		logger:    logger,
	}
}

// RegisterRoutes registers the webhook route
func (h *WebhookHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "fulfillIntent",
		Method:      http.MethodPost,
		Path:        "/webhook",
		Summary:     "Fulfill a Dialogflow intent",
		Description: "Answers a Dialogflow v2 fulfillment request by searching the blog and rendering an Actions on Google rich response",
		Tags:        []string{"Assistant"},
	}, h.Fulfill)
}

// WebhookInput defines the input for the Fulfill operation
type WebhookInput struct {
	Body requests.WebhookRequest
}

// WebhookOutput defines the output for the Fulfill operation
type WebhookOutput struct {
	Body responses.WebhookResponse
}

// Fulfill handles the POST /webhook endpoint
func (h *WebhookHandler) Fulfill(ctx context.Context, input *WebhookInput) (*WebhookOutput, error) {
	intent := input.Body.ToIntent()

	h.logger.Info("Intent received", map[string]interface{}{
		"intent":     input.Body.QueryResult.Intent.DisplayName,
		"kind":       string(intent.Kind),
		"topic":      intent.Topic,
		"post_id":    intent.PostID,
		"has_screen": intent.HasScreen,
		"session":    input.Body.Session,
	})

	reply, err := h.assistant.Handle(ctx, intent)
	if err != nil {
		return nil, toHumaError(err)
	}
	if reply == nil {
		return nil, huma.Error500InternalServerError("No reply for intent " + string(intent.Kind))
	}

	return &WebhookOutput{
		Body: *mappers.ToWebhookResponse(reply),
	}, nil
}
