package i

import "time"

// Tokenizer defines the interface for issuing and validating access tokens.
type Tokenizer interface {
	// Generate creates a signed token carrying the given claims, valid for
	// expTime.
	Generate(claims map[string]interface{}, expTime time.Duration) (string, error)

	// Decode parses and validates a token, returning its claims.
	Decode(token string) (map[string]interface{}, error)
}
