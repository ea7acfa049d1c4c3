package pkg

import "github.com/google/uuid"

// GenerateRunID - generates a unique identifier for a simulation run.
func GenerateRunID() string {
	return uuid.NewString()
}
