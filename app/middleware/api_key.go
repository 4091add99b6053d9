// Package middleware contains HTTP middleware functions for request processing
package middleware

import (
	"crypto/subtle"

	"github.com/yunseo-dev/campatlas/app/dto"
	"github.com/yunseo-dev/campatlas/config"
	"github.com/gofiber/fiber/v3"
)

// APIKeyMiddleware validates the shared API credential on every request
type APIKeyMiddleware struct {
	cfg config.SecurityConfig
}

// NewAPIKeyMiddleware creates a new API key middleware
func NewAPIKeyMiddleware(cfg config.SecurityConfig) *APIKeyMiddleware {
	return &APIKeyMiddleware{cfg: cfg}
}

// Require is the middleware function that validates the API key header.
// Health and metrics endpoints are exempt so probes and scrapers work
// without credentials.
func (m *APIKeyMiddleware) Require() fiber.Handler {
	return func(c fiber.Ctx) error {
		if !m.cfg.RequireAPIKey {
			return c.Next()
		}
		if c.Path() == "/api/v1/health" || c.Path() == "/metrics" {
			return c.Next()
		}

		apiKey := c.Get(m.cfg.APIKeyHeader)
		if apiKey == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.APIResponse{
				Success: false,
				Message: "API key is required",
				Error: dto.ErrorDetail{
					Code: "MISSING_API_KEY",
				},
			})
		}

		for _, validKey := range m.cfg.AllowedAPIKeys {
			if subtle.ConstantTimeCompare([]byte(apiKey), []byte(validKey)) == 1 {
				return c.Next()
			}
		}

		return c.Status(fiber.StatusUnauthorized).JSON(dto.APIResponse{
			Success: false,
			Message: "Invalid API key",
			Error: dto.ErrorDetail{
				Code: "INVALID_API_KEY",
			},
		})
	}
}
