package id

import (
	"encoding/base32"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

var encoding = base32.StdEncoding.WithPadding(base32.NoPadding)

// NewID returns a new random identifier.
func NewID() (string, error) {
	u, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("generate uuid: %w", err)
	}
	return strings.ToLower(encoding.EncodeToString(u[:])), nil
}

// Valid reports whether s has the shape of an identifier returned by NewID.
func Valid(s string) bool {
	if len(s) != 26 {
		return false
	}
	decoded, err := encoding.DecodeString(strings.ToUpper(s))
	if err != nil {
		return false
	}
	return len(decoded) == 16 && s == strings.ToLower(s)
}
