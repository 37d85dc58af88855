package api

import (
	"context"
	"net/http"

	"github.com/inkpress/inkcli/internal/client/models"
)

// Login authenticates with POST /auth/login. On success the returned token
// and user snapshot are recorded as the local session.
func (c *Client) Login(ctx context.Context, creds models.Credentials) (*models.AuthResponse, error) {
	if creds.Username == "" || creds.Password == "" {
		return nil, validationError("Username and password are required")
	}

	var out models.AuthResponse
	if err := c.doJSON(ctx, http.MethodPost, "/auth/login", creds, &out, false); err != nil {
		return nil, err
	}

	if err := c.recordSession(ctx, &out); err != nil {
		return nil, err
	}
	c.log.Info(ctx, "login successful", "username", creds.Username)
	return &out, nil
}

// Register creates an account with POST /auth/signup. Name falls back to the
// username when not given, mirroring the backend's contract. On success the
// session is recorded just like a login.
func (c *Client) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	if req.Username == "" && req.Name != "" {
		req.Username = req.Name
	}
	if req.Name == "" {
		req.Name = req.Username
	}
	if req.Username == "" || req.Email == "" || req.Password == "" {
		return nil, validationError("Username, email, and password are required")
	}

	var out models.AuthResponse
	if err := c.doJSON(ctx, http.MethodPost, "/auth/signup", req, &out, false); err != nil {
		return nil, err
	}

	if err := c.recordSession(ctx, &out); err != nil {
		return nil, err
	}
	c.log.Info(ctx, "registration successful", "username", req.Username)
	return &out, nil
}

// recordSession persists the credentials from a successful auth response.
// The session is recorded only when the response carries both a token and a
// user record; anything less leaves the client anonymous.
func (c *Client) recordSession(ctx context.Context, resp *models.AuthResponse) error {
	if resp.Token == "" || resp.User == nil {
		return nil
	}
	return c.session.RecordSession(ctx, resp.Token, resp.User)
}

// CreateAdmin provisions an administrator account with POST /admin/create.
// The local session is left untouched; the new admin logs in separately.
func (c *Client) CreateAdmin(ctx context.Context, req models.AdminRequest) (*models.AdminResult, error) {
	if req.Name == "" || req.Email == "" || req.Username == "" || req.Password == "" {
		return nil, validationError("Name, email, username, and password are required")
	}

	var out models.AdminResult
	if err := c.doJSON(ctx, http.MethodPost, "/admin/create", req, &out, false); err != nil {
		return nil, err
	}
	c.log.Info(ctx, "admin account created", "username", req.Username)
	return &out, nil
}

// Logout discards the local session. The backend holds no server-side session
// state, so no request is sent.
func (c *Client) Logout(ctx context.Context) {
	c.session.ClearAuthData(ctx)
	c.log.Info(ctx, "logged out")
}

// GetProfile fetches the caller's profile with GET /auth/profile.
func (c *Client) GetProfile(ctx context.Context) (*models.User, error) {
	var out models.User
	if err := c.doJSON(ctx, http.MethodGet, "/auth/profile", nil, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateProfile updates the caller's profile with PUT /auth/profile and
// refreshes the cached user record with the backend's copy.
func (c *Client) UpdateProfile(ctx context.Context, update models.ProfileUpdate) (*models.User, error) {
	var out models.User
	if err := c.doJSON(ctx, http.MethodPut, "/auth/profile", update, &out, true); err != nil {
		return nil, err
	}

	if token := c.session.Token(ctx); token != "" {
		if err := c.session.RecordSession(ctx, token, &out); err != nil {
			c.log.Warn(ctx, "failed to refresh cached user record", "error", err)
		}
	}
	return &out, nil
}
