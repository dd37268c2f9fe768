// Package registry resolves namespace names to namespace UUIDs.
//
// A Registry always contains the predefined namespaces of package deterministic and can
// be extended from a YAML document:
//
//	namespaces:
//	  orders: 3f0e4c52-8d0f-4a51-9d6f-2b0f1f3b7c11
//	  invoices: 9a4c1e2b-7f61-4d6e-a3c8-5e2d0b9f4a17
package registry

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/PaulFidika/uuidkit/deterministic"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

var (
	ErrNilNamespace        = errors.New("nil_namespace")
	ErrPredefinedOverride  = errors.New("predefined_namespace_override")
	ErrDuplicateNamespace  = errors.New("duplicate_namespace")
	ErrUnknownNamespace    = errors.New("unknown_namespace")
	ErrInvalidNamespaceKey = errors.New("invalid_namespace_name")
)

// Registry is immutable after construction and safe for concurrent use.
type Registry struct {
	byName     map[string]uuid.UUID
	predefined map[string]bool
}

// Entry is a named namespace.
type Entry struct {
	Name string    `json:"name" yaml:"name"`
	ID   uuid.UUID `json:"id" yaml:"id"`
}

type fileFormat struct {
	Namespaces yaml.Node `yaml:"namespaces"`
}

// Default returns a registry holding only the predefined namespaces.
func Default() *Registry {
	r := &Registry{byName: deterministic.Namespaces(), predefined: map[string]bool{}}
	for name := range r.byName {
		r.predefined[name] = true
	}
	return r
}

// LoadFile reads a YAML registry from path. See Load.
func LoadFile(path string) (*Registry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open namespaces file: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Load reads custom namespaces from a YAML document and merges them over the predefined
// ones. Redefining a predefined name is only allowed with its exact value.
func Load(r io.Reader) (*Registry, error) {
	var doc fileFormat
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode namespaces file: %w", err)
	}
	reg := Default()
	node := doc.Namespaces
	if node.Kind == 0 || node.ShortTag() == "!!null" {
		return reg, nil
	}
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("decode namespaces file: line %d: namespaces must be a mapping", node.Line)
	}
	// A mapping node is laid out as alternating key/value nodes.
	seen := map[string]bool{}
	for i := 0; i+1 < len(node.Content); i += 2 {
		k, v := node.Content[i], node.Content[i+1]
		name := normalize(k.Value)
		if name == "" {
			return nil, fmt.Errorf("line %d: %w", k.Line, ErrInvalidNamespaceKey)
		}
		if seen[name] {
			return nil, fmt.Errorf("line %d: %q: %w", k.Line, name, ErrDuplicateNamespace)
		}
		seen[name] = true
		id, err := uuid.Parse(strings.TrimSpace(v.Value))
		if err != nil {
			return nil, fmt.Errorf("line %d: namespace %q: %w", v.Line, name, err)
		}
		if err := reg.add(name, id); err != nil {
			return nil, fmt.Errorf("line %d: %w", k.Line, err)
		}
	}
	return reg, nil
}

func (r *Registry) add(name string, id uuid.UUID) error {
	if id == uuid.Nil {
		return fmt.Errorf("namespace %q: %w", name, ErrNilNamespace)
	}
	if r.predefined[name] {
		if r.byName[name] != id {
			return fmt.Errorf("namespace %q: %w", name, ErrPredefinedOverride)
		}
		return nil
	}
	r.byName[name] = id
	return nil
}

// Lookup returns the namespace registered under name (case-insensitive).
func (r *Registry) Lookup(name string) (uuid.UUID, bool) {
	id, ok := r.byName[normalize(name)]
	return id, ok
}

// Resolve accepts a registered name or a literal UUID. The nil UUID is rejected.
func (r *Registry) Resolve(s string) (uuid.UUID, error) {
	if id, ok := r.Lookup(s); ok {
		return id, nil
	}
	id, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil {
		return uuid.Nil, fmt.Errorf("%q: %w", s, ErrUnknownNamespace)
	}
	if id == uuid.Nil {
		return uuid.Nil, ErrNilNamespace
	}
	return id, nil
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	out := make([]string, 0, len(r.byName))
	for name := range r.byName {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Entries returns all namespaces sorted by name.
func (r *Registry) Entries() []Entry {
	names := r.Names()
	out := make([]Entry, 0, len(names))
	for _, name := range names {
		out = append(out, Entry{Name: name, ID: r.byName[name]})
	}
	return out
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
