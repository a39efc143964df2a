// ABOUTME: Health handler for the Huma API
// ABOUTME: Liveness probe that never calls the search service

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"blog-search-api/api/dto/responses"
)

// HealthHandler answers liveness probes
type HealthHandler struct{}

// NewHealthHandler creates a new health handler
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// RegisterRoutes registers the health route
func (h *HealthHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "health",
		Method:      http.MethodGet,
		Path:        "/health",
		Summary:     "Liveness probe",
		Tags:        []string{"System"},
	}, h.Health)
}

// HealthOutput defines the output for the Health operation
type HealthOutput struct {
	Body responses.HealthResponse
}

// Health handles the GET /health endpoint
func (h *HealthHandler) Health(ctx context.Context, input *struct{}) (*HealthOutput, error) {
	return &HealthOutput{Body: responses.HealthResponse{Status: "ok"}}, nil
}
