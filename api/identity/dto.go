// Package identityapi provides the HTTP surface for user registration and
// sign-in.
package identityapi

// AuthRequest carries registration and login credentials.
type AuthRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse is the successful sign-in payload.
type AuthResponse struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	SolvedCount int    `json:"solved_count"`
	Token       string `json:"token"`
}
