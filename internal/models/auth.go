package models

import "github.com/golang-jwt/jwt/v5"

// AuthClaims are the claims carried by access tokens issued by the external
// identity provider. The subject is the provider's user UUID; this service
// never issues tokens itself.
type AuthClaims struct {
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// UserID returns the provider-issued user identifier.
func (c *AuthClaims) UserID() string {
	if c == nil {
		return ""
	}
	return c.Subject
}
