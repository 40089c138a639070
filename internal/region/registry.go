package region

import (
	"errors"
	"math/rand/v2"
	"sort"
	"strings"
	"sync"
)

// Registry errors.
var (
	// ErrEmptyRegistry is returned when a random code is drawn from a
	// registry with no entries.
	ErrEmptyRegistry = errors.New("region registry is empty")

	// ErrNoCodeWithPrefix is returned when no registered code starts with
	// the requested prefix.
	ErrNoCodeWithPrefix = errors.New("no region code matches the prefix")
)

// Registry is the read-only lookup capability the validators and the fake
// generator depend on. Implementations must be safe for concurrent reads.
type Registry interface {
	// Lookup returns the place name for a six-digit division code.
	// The second return value reports whether the code is registered.
	Lookup(code string) (string, bool)

	// Contains reports whether the six-digit division code is registered.
	Contains(code string) bool

	// RandCode draws a uniformly random registered code.
	RandCode() (string, error)

	// RandCodeWithPrefix draws a uniformly random registered code that
	// starts with prefix. An empty prefix matches nothing.
	RandCodeWithPrefix(prefix string) (string, error)
}

// TableRegistry is a Registry backed by an in-memory map.
// It is immutable after construction.
type TableRegistry struct {
	names map[string]string
	codes []string // sorted, for deterministic iteration under a seeded source
}

// NewTableRegistry creates a TableRegistry from a code-to-name map.
// The map is copied; later mutation of the argument does not affect the
// registry.
func NewTableRegistry(names map[string]string) *TableRegistry {
	copied := make(map[string]string, len(names))
	codes := make([]string, 0, len(names))
	for code, name := range names {
		copied[code] = name
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return &TableRegistry{names: copied, codes: codes}
}

var (
	embeddedOnce     sync.Once
	embeddedRegistry *TableRegistry
)

// Embedded returns the registry built from the compiled-in region table.
// It is constructed once and shared; the underlying table is never mutated.
func Embedded() *TableRegistry {
	embeddedOnce.Do(func() {
		embeddedRegistry = NewTableRegistry(regionNames)
	})
	return embeddedRegistry
}

// Lookup returns the place name for a six-digit division code.
func (r *TableRegistry) Lookup(code string) (string, bool) {
	name, ok := r.names[code]
	return name, ok
}

// Contains reports whether the six-digit division code is registered.
func (r *TableRegistry) Contains(code string) bool {
	_, ok := r.names[code]
	return ok
}

// RandCode draws a uniformly random registered code.
func (r *TableRegistry) RandCode() (string, error) {
	if len(r.codes) == 0 {
		return "", ErrEmptyRegistry
	}
	return r.codes[rand.IntN(len(r.codes))], nil
}

// RandCodeWithPrefix draws a uniformly random registered code starting with
// prefix. A full six-digit prefix that is itself registered returns exactly
// that code.
func (r *TableRegistry) RandCodeWithPrefix(prefix string) (string, error) {
	if prefix == "" {
		return "", ErrNoCodeWithPrefix
	}
	matches := make([]string, 0, 8)
	for _, code := range r.codes {
		if strings.HasPrefix(code, prefix) {
			matches = append(matches, code)
		}
	}
	if len(matches) == 0 {
		return "", ErrNoCodeWithPrefix
	}
	return matches[rand.IntN(len(matches))], nil
}

// Len returns the number of registered codes.
func (r *TableRegistry) Len() int {
	return len(r.codes)
}
