package utils

import (
	"strings"

	"github.com/google/uuid"
)

// NewPublicID generates a client-facing identifier like "quiz_1f8a03c2b4d1".
func NewPublicID(prefix string) string {
	hex := strings.ReplaceAll(uuid.NewString(), "-", "")
	return prefix + "_" + hex[:12]
}

// NewClassCode generates a short join code for a class. Uniqueness is
// enforced by the database constraint on insert.
func NewClassCode() string {
	hex := strings.ReplaceAll(uuid.NewString(), "-", "")
	return strings.ToUpper(hex[:6])
}
