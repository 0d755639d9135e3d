// Package macros provides the named-format-macro store consumed by the fmt
// command: a mapping from macro name to the raw command string it expands
// to. Stores are populated at startup; definitions are append-only.
package macros

import (
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/fdl/pkg/errors"
	"github.com/arthur-debert/fdl/pkg/registry"
)

// Store resolves macro names to raw command strings
type Store interface {
	// Get returns the raw command string for name
	Get(name string) (string, error)

	// Has reports whether name is defined
	Has(name string) bool

	// Define adds a macro; redefining an existing name is an error
	Define(name, raw string) error

	// Names returns all defined macro names
	Names() []string
}

// MemoryStore is the in-memory Store implementation
type MemoryStore struct {
	reg registry.Registry[string]
}

// NewMemoryStore creates an empty store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{reg: registry.New[string]()}
}

// Get returns the raw command string for name
func (m *MemoryStore) Get(name string) (string, error) {
	raw, err := m.reg.Get(name)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrMacroNotFound, "macro '%s' is not defined", name)
	}
	return raw, nil
}

// Has reports whether name is defined
func (m *MemoryStore) Has(name string) bool {
	return m.reg.Has(name)
}

// Define adds a macro
func (m *MemoryStore) Define(name, raw string) error {
	return m.reg.Register(name, raw)
}

// Names returns all defined macro names in sorted order
func (m *MemoryStore) Names() []string {
	return m.reg.List()
}

// macroFile is the TOML shape: a [macros] table of name -> command string
type macroFile struct {
	Macros map[string]string `toml:"macros"`
}

// ParseTOML builds a store from TOML content
func ParseTOML(data []byte) (*MemoryStore, error) {
	var file macroFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "invalid macro file")
	}

	store := NewMemoryStore()
	for name, raw := range file.Macros {
		if err := store.Define(name, raw); err != nil {
			return nil, err
		}
	}
	return store, nil
}

// LoadTOML reads a macro definition file from disk
func LoadTOML(path string) (*MemoryStore, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "cannot read macro file %s", path)
	}
	return ParseTOML(data)
}
