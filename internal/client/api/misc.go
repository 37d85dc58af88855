package api

import (
	"context"
	"net/http"

	"github.com/inkpress/inkcli/internal/client/models"
)

// SubmitContact sends the contact form with POST /contact.
func (c *Client) SubmitContact(ctx context.Context, req models.ContactRequest) (*models.ContactResult, error) {
	if req.Name == "" || req.Email == "" || req.Message == "" {
		return nil, validationError("Name, email, and message are required")
	}

	var out models.ContactResult
	if err := c.doJSON(ctx, http.MethodPost, "/contact", req, &out, false); err != nil {
		return nil, err
	}
	return &out, nil
}

// HealthCheck probes backend liveness with GET /health.
func (c *Client) HealthCheck(ctx context.Context) (*models.HealthStatus, error) {
	var out models.HealthStatus
	if err := c.doJSON(ctx, http.MethodGet, "/health", nil, &out, false); err != nil {
		return nil, err
	}
	return &out, nil
}
