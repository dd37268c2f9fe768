package deterministic

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestGUIDBytes_Layout(t *testing.T) {
	// Guid.ToByteArray() of 6ba7b810-9dad-11d1-80b4-00c04fd430c8.
	want := [16]byte{0x10, 0xb8, 0xa7, 0x6b, 0xad, 0x9d, 0xd1, 0x11, 0x80, 0xb4, 0x00, 0xc0, 0x4f, 0xd4, 0x30, 0xc8}
	require.Equal(t, want, GUIDBytes(NamespaceDNS))
	require.Equal(t, NamespaceDNS, FromGUIDBytes(want))
}

func TestSwapByteOrder_Involution(t *testing.T) {
	b := [16]byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15}
	swapByteOrder(&b)
	require.Equal(t, [16]byte{3, 2, 1, 0, 5, 4, 7, 6, 8, 9, 10, 11, 12, 13, 14, 15}, b)
	swapByteOrder(&b)
	require.Equal(t, [16]byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15}, b)
}

func TestCreateGUIDBytes(t *testing.T) {
	got, err := CreateGUIDBytes(GUIDBytes(NamespaceDNS), "python.org", SHA1)
	require.NoError(t, err)
	want := uuid.MustParse("886313e1-3b8a-5372-9b90-0c9aee199e5d")
	require.Equal(t, GUIDBytes(want), got)
	// Version nibble sits in the high nibble of byte 7 in GUID layout.
	require.Equal(t, byte(0x53), got[7])

	_, err = CreateGUIDBytes([16]byte{}, "python.org", SHA1)
	require.ErrorIs(t, err, ErrInvalidArgument)
}
