package pkg

import (
	"strings"

	"github.com/google/uuid"
)

// GenerateNewSessionID - a random id for a client session cookie.
func GenerateNewSessionID() string {
	return uuid.NewString()
}

// GenerateGameID - a short upper case code that identifies a game to watchers.
func GenerateGameID() string {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")

	return strings.ToUpper(id[:8])
}
