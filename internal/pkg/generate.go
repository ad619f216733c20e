package pkg

import "github.com/google/uuid"

// GenerateRoundID returns a random round identifier.
func GenerateRoundID() string {
	return uuid.NewString()
}
