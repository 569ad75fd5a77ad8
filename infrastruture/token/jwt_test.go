package token

import (
	"crypto/rand"
	"encoding/base64"
	"log"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestJwtService(t *testing.T) {
	// Setup
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		log.Fatalf("Error generating random bytes: %v", err)
	}
	secretKey := base64.URLEncoding.EncodeToString(bytes)
	issuer := "testIssuer"

	svc := NewJwtService(secretKey, issuer)

	t.Run("Generate and Decode valid token", func(t *testing.T) {
		claims := map[string]interface{}{
			"userID":   "3f0c8e2a-27d4-4b2f-9a61-0f6a10c5d001",
			"username": "maze_runner_1",
		}
		expDuration := time.Minute * 5

		// Generate token
		token, err := svc.Generate(claims, expDuration)
		assert.NoError(t, err)
		assert.NotEmpty(t, token)

		// Decode token
		decoded, err := svc.Decode(token)
		assert.NoError(t, err)
		assert.Equal(t, claims["userID"], decoded["userID"])
		assert.Equal(t, claims["username"], decoded["username"])
		assert.Equal(t, issuer, decoded["iss"])
	})

	t.Run("Decode invalid token", func(t *testing.T) {
		invalidToken := "invalidTokenString"

		// Decode should fail
		_, err := svc.Decode(invalidToken)
		assert.Error(t, err)
	})

	t.Run("Decode expired token", func(t *testing.T) {
		claims := map[string]interface{}{
			"userID": "3f0c8e2a-27d4-4b2f-9a61-0f6a10c5d001",
		}
		expDuration := -time.Minute // Expired token

		// Generate expired token
		token, err := svc.Generate(claims, expDuration)
		assert.NoError(t, err)
		assert.NotEmpty(t, token)

		// Decode should fail
		_, err = svc.Decode(token)
		assert.Error(t, err)
	})

	t.Run("Decode token from another issuer", func(t *testing.T) {
		other := NewJwtService(secretKey, "otherIssuer")
		token, err := other.Generate(map[string]interface{}{}, time.Minute)
		assert.NoError(t, err)

		// Decode should fail on issuer mismatch
		_, err = svc.Decode(token)
		assert.Error(t, err)
	})

	t.Run("Generate token with empty claims", func(t *testing.T) {
		emptyClaims := map[string]interface{}{}
		expDuration := time.Minute * 5

		// Generate token
		token, err := svc.Generate(emptyClaims, expDuration)
		assert.NoError(t, err)
		assert.NotEmpty(t, token)

		// Decode token
		decodedClaims, err := svc.Decode(token)
		assert.NoError(t, err)
		assert.Empty(t, decodedClaims["userID"])
		assert.Empty(t, decodedClaims["username"])
	})
}
