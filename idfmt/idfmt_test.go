package idfmt

import (
	"testing"

	"github.com/PaulFidika/uuidkit/deterministic"
	"github.com/PaulFidika/uuidkit/shortid"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	id := deterministic.NamespaceDNS

	s, err := Format(id, "")
	require.NoError(t, err)
	require.Equal(t, "6ba7b810-9dad-11d1-80b4-00c04fd430c8", s)

	s, err = Format(id, "GUIDHEX")
	require.NoError(t, err)
	require.Equal(t, "10b8a76bad9dd11180b400c04fd430c8", s)

	s, err = Format(id, Short)
	require.NoError(t, err)
	require.Equal(t, shortid.Encode(id), s)

	_, err = Format(id, "braces")
	require.ErrorIs(t, err, ErrUnknownFormat)
	require.False(t, Valid("braces"))
	require.True(t, Valid(Canonical))
}

func TestValidAgreesWithFormat(t *testing.T) {
	id := deterministic.NamespaceEvents
	for _, f := range []string{"", " Canonical ", Short, GUIDHex, "SHORT", "braces", "hex", "urn"} {
		_, err := Format(id, f)
		require.Equal(t, err == nil, Valid(f), f)
	}
}
