package shortid

import (
	"testing"

	"github.com/PaulFidika/uuidkit/deterministic"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecode(t *testing.T) {
	ids := []uuid.UUID{
		deterministic.NamespaceDNS,
		deterministic.MustCreate(deterministic.NamespaceEvents, "order:42:shipped"),
		uuid.MustParse("00000000-0000-0000-0000-000000000001"),
	}
	for _, id := range ids {
		s := Encode(id)
		require.NotContains(t, s, "-")
		require.LessOrEqual(t, len(s), 22)

		got, err := Decode(s)
		require.NoError(t, err)
		require.Equal(t, id, got)
	}
}

func TestDecode_Invalid(t *testing.T) {
	for _, s := range []string{"", "0OIl", "abc"} {
		_, err := Decode(s)
		require.ErrorIs(t, err, ErrInvalidShortID, s)
	}
}

func TestParse_AcceptsBothForms(t *testing.T) {
	id := deterministic.NamespaceURL
	got, err := Parse(id.String())
	require.NoError(t, err)
	require.Equal(t, id, got)

	got, err = Parse(Encode(id))
	require.NoError(t, err)
	require.Equal(t, id, got)
}
