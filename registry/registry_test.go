package registry

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PaulFidika/uuidkit/deterministic"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	r := Default()
	require.Equal(t, []string{"commands", "dns", "events", "isooid", "url", "x500dn"}, r.Names())

	id, ok := r.Lookup(" DNS ")
	require.True(t, ok)
	require.Equal(t, deterministic.NamespaceDNS, id)
}

func TestLoad_MergesCustomNamespaces(t *testing.T) {
	doc := `
namespaces:
  Orders: 3f0e4c52-8d0f-4a51-9d6f-2b0f1f3b7c11
  dns: 6ba7b810-9dad-11d1-80b4-00c04fd430c8
`
	r, err := Load(strings.NewReader(doc))
	require.NoError(t, err)

	id, ok := r.Lookup("orders")
	require.True(t, ok)
	require.Equal(t, uuid.MustParse("3f0e4c52-8d0f-4a51-9d6f-2b0f1f3b7c11"), id)
	require.Len(t, r.Entries(), 7)
}

func TestLoad_EmptyDocument(t *testing.T) {
	r, err := Load(strings.NewReader(""))
	require.NoError(t, err)
	require.Len(t, r.Names(), 6)
}

func TestLoad_Errors(t *testing.T) {
	cases := map[string]struct {
		doc  string
		want error
	}{
		"nil namespace": {"namespaces:\n  zero: 00000000-0000-0000-0000-000000000000\n", ErrNilNamespace},
		"override":      {"namespaces:\n  events: 3f0e4c52-8d0f-4a51-9d6f-2b0f1f3b7c11\n", ErrPredefinedOverride},
		"duplicate":     {"namespaces:\n  a: 3f0e4c52-8d0f-4a51-9d6f-2b0f1f3b7c11\n  A: 9a4c1e2b-7f61-4d6e-a3c8-5e2d0b9f4a17\n", ErrDuplicateNamespace},
		"empty name":    {"namespaces:\n  \"  \": 3f0e4c52-8d0f-4a51-9d6f-2b0f1f3b7c11\n", ErrInvalidNamespaceKey},
	}
	for desc, tc := range cases {
		t.Run(desc, func(t *testing.T) {
			_, err := Load(strings.NewReader(tc.doc))
			require.ErrorIs(t, err, tc.want)
		})
	}

	_, err := Load(strings.NewReader("namespaces:\n  a: not-a-uuid\n"))
	require.Error(t, err)
	_, err = Load(strings.NewReader("namespaces: [a, b]\n"))
	require.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "namespaces.yaml")
	require.NoError(t, os.WriteFile(path, []byte("namespaces:\n  billing: 9a4c1e2b-7f61-4d6e-a3c8-5e2d0b9f4a17\n"), 0o600))

	r, err := LoadFile(path)
	require.NoError(t, err)
	_, ok := r.Lookup("billing")
	require.True(t, ok)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestResolve(t *testing.T) {
	r := Default()

	id, err := r.Resolve("url")
	require.NoError(t, err)
	require.Equal(t, deterministic.NamespaceURL, id)

	id, err = r.Resolve("3f0e4c52-8d0f-4a51-9d6f-2b0f1f3b7c11")
	require.NoError(t, err)
	require.Equal(t, "3f0e4c52-8d0f-4a51-9d6f-2b0f1f3b7c11", id.String())

	_, err = r.Resolve("nope")
	require.ErrorIs(t, err, ErrUnknownNamespace)
	_, err = r.Resolve(uuid.Nil.String())
	require.ErrorIs(t, err, ErrNilNamespace)
}

func TestLoad_NullNamespaces(t *testing.T) {
	r, err := Load(strings.NewReader("namespaces:\n"))
	require.NoError(t, err)
	require.Len(t, r.Names(), 6)
}
