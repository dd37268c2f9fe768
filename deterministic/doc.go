// Package deterministic derives name-based UUIDs (RFC 4122 §4.3).
//
// The same (namespace, name, version) triple always yields the same identifier, on any
// machine and in any process, so stable identifiers can be computed from business keys
// without a central allocator:
//
//	id, err := deterministic.Create(deterministic.NamespaceEvents, "order:42:shipped")
//
// Version 3 hashes with MD5 and version 5 with SHA-1. Create defaults to version 5.
package deterministic
