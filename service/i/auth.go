package i

import "github.com/beka-birhanu/labyrinth-api/identity"

// Authenticator defines the interface for user registration and sign-in.
type Authenticator interface {
	// Register creates a new user with the given credentials.
	Register(username, password string) error

	// SignIn verifies the credentials and returns the user with a signed
	// access token.
	SignIn(username, password string) (*identity.User, string, error)
}
