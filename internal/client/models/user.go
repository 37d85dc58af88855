// Package models defines the wire types exchanged with the Inkpress backend.
// JSON tags follow the backend's field names verbatim; the client treats the
// payloads as data and applies no business rules to them.
package models

// User is a denormalized snapshot of the authenticated principal, cached
// locally alongside the session token. Without a valid token it is only
// trustworthy for display, never for authorization decisions.
type User struct {
	ID             string `json:"_id"`
	Name           string `json:"name"`
	Username       string `json:"username"`
	Email          string `json:"email,omitempty"`
	Role           string `json:"role,omitempty"`
	Bio            string `json:"bio,omitempty"`
	Phone          string `json:"phone,omitempty"`
	Location       string `json:"location,omitempty"`
	ProfilePicture string `json:"profilePicture,omitempty"`
	IsActive       bool   `json:"isActive,omitempty"`
	CreatedAt      string `json:"createdAt,omitempty"`
}

// Credentials is the login request payload.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegisterRequest is the signup request payload.
type RegisterRequest struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is returned by login and signup. A non-empty Token means the
// backend established a session for User.
type AuthResponse struct {
	Message string `json:"message,omitempty"`
	Token   string `json:"token,omitempty"`
	User    *User  `json:"user,omitempty"`
}

// AdminRequest provisions a new administrator account.
type AdminRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
	Bio      string `json:"bio,omitempty"`
}

// AdminResult acknowledges an admin provisioning request.
type AdminResult struct {
	Message  string `json:"message,omitempty"`
	Username string `json:"username,omitempty"`
	User     *User  `json:"user,omitempty"`
}

// ProfileUpdate carries the editable profile fields for PUT /auth/profile.
type ProfileUpdate struct {
	Name           string `json:"name,omitempty"`
	Bio            string `json:"bio,omitempty"`
	Phone          string `json:"phone,omitempty"`
	Location       string `json:"location,omitempty"`
	ProfilePicture string `json:"profilePicture,omitempty"`
}
