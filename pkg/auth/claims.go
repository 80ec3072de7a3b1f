package auth

import "github.com/golang-jwt/jwt/v5"

// RoleAdmin is the only privileged role the storefront issues.
const RoleAdmin = "admin"

// AdminTokenPayload is the input to token minting.
type AdminTokenPayload struct {
	Email string
	JTI   string
}

// AdminTokenClaims are the JWT claims carried by the admin auth cookie.
type AdminTokenClaims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// IsAdmin reports whether the claims grant admin access.
func (c *AdminTokenClaims) IsAdmin() bool {
	return c != nil && c.Role == RoleAdmin
}
