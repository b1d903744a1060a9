package id

import (
	"strings"

	"github.com/google/uuid"
)

// GenerateID creates a unique 32-character hex ID for questions and answers.
func GenerateID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
