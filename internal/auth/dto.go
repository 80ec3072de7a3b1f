package auth

// LoginRequest is the admin login body.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse is returned on successful login; the token itself travels in
// the cookie, never the body.
type LoginResponse struct {
	Email string `json:"email"`
}
