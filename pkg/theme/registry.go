package theme

import (
	stderrors "errors"
	"fmt"
	"slices"
	"sync"

	"github.com/go-drift/visualkit/pkg/errors"
)

// Registry maps theme identifiers to Style constructors. It is safe for
// concurrent use.
type Registry struct {
	mu     sync.RWMutex
	builds map[ID]func() Style
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{builds: make(map[ID]func() Style)}
}

// DefaultRegistry returns a new registry holding the built-in themes.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.builds[Visual] = VisualStyle
	r.builds[Enigma] = EnigmaStyle
	r.builds[BlackAndYellow] = BlackAndYellowStyle
	return r
}

// Register adds or replaces the constructor for id.
func (r *Registry) Register(id ID, build func() Style) error {
	if id == "" {
		return errors.Invalid("theme.Registry.Register", stderrors.New("empty theme id"))
	}
	if build == nil {
		return errors.Invalid("theme.Registry.Register", fmt.Errorf("theme %q: nil constructor", id))
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.builds[id] = build
	return nil
}

// Resolve builds the style registered under id. Unknown identifiers fail
// with KindInvalidConfiguration wrapping ErrUnknownTheme.
func (r *Registry) Resolve(id ID) (Style, error) {
	r.mu.RLock()
	build, ok := r.builds[id]
	r.mu.RUnlock()
	if !ok {
		return Style{}, errors.Invalid("theme.Registry.Resolve", fmt.Errorf("%w %q", errors.ErrUnknownTheme, id))
	}
	s := build()
	s.ID = id
	return s, nil
}

// Has reports whether id is registered.
func (r *Registry) Has(id ID) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.builds[id]
	return ok
}

// IDs returns the registered identifiers in sorted order.
func (r *Registry) IDs() []ID {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]ID, 0, len(r.builds))
	for id := range r.builds {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
