// ABOUTME: Error handling utilities for API handlers
// ABOUTME: Converts domain errors to appropriate HTTP responses

package handlers

import (
	"github.com/danielgtaylor/huma/v2"

	"blog-search-api/core/errors"
)

// toHumaError converts domain errors to appropriate Huma HTTP errors
func toHumaError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.IsNotFound(err):
		return huma.Error404NotFound(err.Error())
	case errors.IsValidation(err):
		return huma.Error400BadRequest(err.Error())
	case errors.IsSearchUnavailable(err):
		return huma.Error503ServiceUnavailable("Search service unavailable", err)
	case errors.IsMalformedResponse(err):
		return huma.Error502BadGateway("Search service returned an invalid response", err)
	case errors.IsInvalidTimestamp(err):
		return huma.Error500InternalServerError("Post has an invalid publish date", err)
	}

	return huma.Error500InternalServerError("Internal server error", err)
}
