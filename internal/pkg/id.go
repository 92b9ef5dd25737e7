package pkg

import "github.com/google/uuid"

// GenerateGameID returns a short random game identifier.
func GenerateGameID() string {
	return uuid.NewString()[:8]
}
