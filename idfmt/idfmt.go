// Package idfmt renders identifiers in the text forms accepted by the uuidkit server and CLI.
package idfmt

import (
	"encoding/hex"
	"errors"
	"strings"

	"github.com/PaulFidika/uuidkit/deterministic"
	"github.com/PaulFidika/uuidkit/shortid"
	"github.com/google/uuid"
)

const (
	// Canonical is xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx.
	Canonical = "canonical"
	// Short is the base58 form from package shortid.
	Short = "short"
	// GUIDHex is the hex encoding of the GUID byte layout, as stored by .NET and SQL Server.
	GUIDHex = "guidhex"
)

// ErrUnknownFormat is returned by Format for names other than the constants above.
var ErrUnknownFormat = errors.New("unknown_format")

// Format renders u in the named format. An empty name means Canonical.
func Format(u uuid.UUID, format string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", Canonical:
		return u.String(), nil
	case Short:
		return shortid.Encode(u), nil
	case GUIDHex:
		b := deterministic.GUIDBytes(u)
		return hex.EncodeToString(b[:]), nil
	default:
		return "", ErrUnknownFormat
	}
}

// Valid reports whether format is a known format name.
func Valid(format string) bool {
	_, err := Format(uuid.Nil, format)
	return err == nil
}
