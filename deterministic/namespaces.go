package deterministic

import "github.com/google/uuid"

// Predefined namespaces. Every identifier ever derived from one of these depends on its
// value, so they must never change.
var (
	// NamespaceCommands is the namespace for command identifiers.
	NamespaceCommands = uuid.MustParse("b8bfc711-ed0b-4151-a4fd-26a749825f7b")
	// NamespaceEvents is the namespace for event identifiers.
	NamespaceEvents = uuid.MustParse("115a74c3-19dd-4753-b31e-f366eb3e2005")

	// RFC 4122, Appendix C.
	NamespaceDNS    = uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
	NamespaceURL    = uuid.MustParse("6ba7b811-9dad-11d1-80b4-00c04fd430c8")
	NamespaceISOOID = uuid.MustParse("6ba7b812-9dad-11d1-80b4-00c04fd430c8")
	NamespaceX500DN = uuid.MustParse("6ba7b814-9dad-11d1-80b4-00c04fd430c8")
)

// Namespaces returns the predefined namespaces keyed by their lower-case short name.
// The returned map is a copy and may be modified by the caller.
func Namespaces() map[string]uuid.UUID {
	return map[string]uuid.UUID{
		"commands": NamespaceCommands,
		"events":   NamespaceEvents,
		"dns":      NamespaceDNS,
		"url":      NamespaceURL,
		"isooid":   NamespaceISOOID,
		"x500dn":   NamespaceX500DN,
	}
}
