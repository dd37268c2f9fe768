package deterministic

import "github.com/google/uuid"

// swapByteOrder converts a 16-byte UUID between network order and the GUID field
// layout, where time_low, time_mid and time_hi_and_version are little-endian.
// clock_seq and node (bytes 8-15) are identical in both layouts. The transform is its
// own inverse.
func swapByteOrder(b *[16]byte) {
	b[0], b[3] = b[3], b[0]
	b[1], b[2] = b[2], b[1]
	b[4], b[5] = b[5], b[4]
	b[6], b[7] = b[7], b[6]
}

// GUIDBytes returns u in the GUID byte layout used by .NET Guid.ToByteArray and
// SQL Server uniqueidentifier columns.
func GUIDBytes(u uuid.UUID) [16]byte {
	b := [16]byte(u)
	swapByteOrder(&b)
	return b
}

// FromGUIDBytes is the inverse of GUIDBytes.
func FromGUIDBytes(b [16]byte) uuid.UUID {
	swapByteOrder(&b)
	return uuid.UUID(b)
}
