package deterministic

import (
	"crypto/md5"
	"crypto/sha1"
	"hash"

	"github.com/google/uuid"
)

const (
	// MD5 selects name-based version 3 identifiers.
	MD5 = uuid.Version(3)
	// SHA1 selects name-based version 5 identifiers.
	SHA1 = uuid.Version(5)
)

// Create returns the version 5 (SHA-1) UUID for name within namespaceID.
func Create(namespaceID uuid.UUID, name string) (uuid.UUID, error) {
	return CreateVersion(namespaceID, name, SHA1)
}

// CreateVersion returns the name-based UUID for name within namespaceID. version must
// be MD5 (3) or SHA1 (5).
func CreateVersion(namespaceID uuid.UUID, name string, version uuid.Version) (uuid.UUID, error) {
	b, err := CreateGUIDBytes(GUIDBytes(namespaceID), name, version)
	if err != nil {
		return uuid.Nil, err
	}
	return FromGUIDBytes(b), nil
}

// MustCreate is like Create but panics on invalid input. Intended for package-level
// variables and tests.
func MustCreate(namespaceID uuid.UUID, name string) uuid.UUID {
	return MustCreateVersion(namespaceID, name, SHA1)
}

// MustCreateVersion is like CreateVersion but panics on invalid input.
func MustCreateVersion(namespaceID uuid.UUID, name string, version uuid.Version) uuid.UUID {
	id, err := CreateVersion(namespaceID, name, version)
	if err != nil {
		panic(err)
	}
	return id
}

// CreateGUIDBytes runs the RFC 4122 §4.3 algorithm on identifiers held in the GUID byte
// layout (see GUIDBytes). Both the namespace and the result use that layout, so the
// output can be handed directly to systems that store GUIDs that way.
func CreateGUIDBytes(namespace [16]byte, name string, version uuid.Version) ([16]byte, error) {
	var out [16]byte
	if namespace == ([16]byte{}) {
		return out, invalidArg("namespace", "namespace cannot be nil")
	}
	// Go strings are UTF-8 octets already, so an empty name is the only way to get
	// an empty encoding.
	if name == "" {
		return out, invalidArg("name", "name cannot be null or empty")
	}
	h := digest(version)
	if h == nil {
		return out, invalidArg("version", "version must be 3 or 5")
	}

	ns := namespace
	swapByteOrder(&ns)

	h.Write(ns[:])
	h.Write([]byte(name))
	sum := h.Sum(nil)

	copy(out[:], sum[:16])
	out[6] = (out[6] & 0x0f) | byte(version)<<4
	out[8] = (out[8] & 0x3f) | 0x80

	swapByteOrder(&out)
	return out, nil
}

// digest returns a fresh hash for version, or nil if version is not name-based.
func digest(version uuid.Version) hash.Hash {
	switch version {
	case MD5:
		return md5.New()
	case SHA1:
		return sha1.New()
	default:
		return nil
	}
}
