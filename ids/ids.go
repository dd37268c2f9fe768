package ids

import (
	"errors"
	"strings"

	"github.com/PaulFidika/uuidkit/deterministic"
	"github.com/google/uuid"
)

// ErrEmptyKeyPart is returned when a key has no parts or a blank part.
var ErrEmptyKeyPart = errors.New("empty_key_part")

// Key joins trimmed parts with ":" into a domain key such as "order:42:shipped".
// Keys should start with an entity type so unrelated entities cannot collide.
func Key(parts ...string) (string, error) {
	if len(parts) == 0 {
		return "", ErrEmptyKeyPart
	}
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			return "", ErrEmptyKeyPart
		}
		out = append(out, p)
	}
	return strings.Join(out, ":"), nil
}

// CommandID computes UUIDv5(NamespaceCommands, key). Keys are treated as immutable identity:
// changing how a key is built changes every identifier derived from it.
func CommandID(key string) (uuid.UUID, error) {
	return deterministic.Create(deterministic.NamespaceCommands, key)
}

// EventID computes UUIDv5(NamespaceEvents, key).
func EventID(key string) (uuid.UUID, error) {
	return deterministic.Create(deterministic.NamespaceEvents, key)
}

// EventIDFor is EventID(Key(parts...)).
func EventIDFor(parts ...string) (uuid.UUID, error) {
	key, err := Key(parts...)
	if err != nil {
		return uuid.Nil, err
	}
	return EventID(key)
}

// CommandIDFor is CommandID(Key(parts...)).
func CommandIDFor(parts ...string) (uuid.UUID, error) {
	key, err := Key(parts...)
	if err != nil {
		return uuid.Nil, err
	}
	return CommandID(key)
}
