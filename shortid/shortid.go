// Package shortid renders UUIDs as compact base58 strings (Bitcoin alphabet), e.g. for
// URLs and log lines, and parses them back.
package shortid

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/mr-tron/base58"
)

// ErrInvalidShortID is matched by every Decode failure.
var ErrInvalidShortID = errors.New("invalid_short_id")

// Encode returns the base58 form of the 16 network-order bytes of u.
func Encode(u uuid.UUID) string {
	return base58.Encode(u[:])
}

// Decode parses a string produced by Encode.
func Decode(s string) (uuid.UUID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return uuid.Nil, ErrInvalidShortID
	}
	decoded, err := base58.Decode(s)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: base58 decode failed: %v", ErrInvalidShortID, err)
	}
	if len(decoded) != 16 {
		return uuid.Nil, fmt.Errorf("%w: got %d bytes, want 16", ErrInvalidShortID, len(decoded))
	}
	return uuid.FromBytes(decoded)
}

// Parse accepts either the canonical text form or the base58 short form.
func Parse(s string) (uuid.UUID, error) {
	s = strings.TrimSpace(s)
	if u, err := uuid.Parse(s); err == nil {
		return u, nil
	}
	return Decode(s)
}
