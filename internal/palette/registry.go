package palette

import (
	"errors"
	"fmt"
	"strings"
)

// Identity is a stable string token naming a color independently of its
// concrete value. Identities are what the attribute codec archives; concrete
// colors are rebuilt from them after the round trip.
type Identity string

// Reserved identity forms.
const (
	// Automatic is the theme-derived default foreground. It never resolves
	// to a literal color; callers substitute the live theme color.
	Automatic Identity = "automatic"

	// customPrefix introduces a reversible hex encoding for colors outside
	// the fixed palette.
	customPrefix = "custom:"
)

// Tolerance is the default per-channel tolerance for palette matching.
const Tolerance = 0.001

// Errors returned by registry operations.
var (
	// ErrNameReserved indicates an entry name collides with a reserved token.
	ErrNameReserved = errors.New("palette name is reserved")

	// ErrNameTaken indicates an entry name is already registered.
	ErrNameTaken = errors.New("palette name already registered")
)

// IsCustom returns true if the identity is a custom hex token.
func (id Identity) IsCustom() bool {
	return strings.HasPrefix(string(id), customPrefix)
}

// IsAutomatic returns true if the identity is the reserved automatic token.
func (id Identity) IsAutomatic() bool {
	return id == Automatic
}

// Custom returns the custom identity token for a color.
func Custom(c Color) Identity {
	return Identity(customPrefix + c.Hex8())
}

// Registry maps semantic color identities to concrete colors and back.
// The zero value is not usable; construct with NewRegistry.
type Registry struct {
	entries []Entry
	byName  map[Identity]Color
	tol     float64
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithTolerance overrides the per-channel matching tolerance.
func WithTolerance(tol float64) RegistryOption {
	return func(r *Registry) {
		if tol > 0 {
			r.tol = tol
		}
	}
}

// NewRegistry creates a registry over the fixed palette (foregrounds and
// highlights share one identity namespace).
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{tol: Tolerance}
	for _, opt := range opts {
		opt(r)
	}

	r.entries = make([]Entry, 0, len(foregrounds)+len(highlights))
	r.byName = make(map[Identity]Color, len(foregrounds)+len(highlights))
	for _, e := range foregrounds {
		r.add(e)
	}
	for _, e := range highlights {
		r.add(e)
	}
	return r
}

func (r *Registry) add(e Entry) {
	r.entries = append(r.entries, e)
	r.byName[Identity(e.Name)] = e.Color
}

// Register adds a named color to the registry, extending the palette with
// a configuration-supplied entry. The name must not collide with reserved
// tokens or existing entries.
func (r *Registry) Register(name string, c Color) error {
	if name == string(Automatic) || strings.HasPrefix(name, customPrefix) || name == "" {
		return fmt.Errorf("%w: %q", ErrNameReserved, name)
	}
	if _, ok := r.byName[Identity(name)]; ok {
		return fmt.Errorf("%w: %q", ErrNameTaken, name)
	}
	r.add(Entry{Name: name, Color: c.Clamped()})
	return nil
}

// Identify returns the stable identity for a concrete color: the palette
// token when the color matches a palette entry within the registry
// tolerance, otherwise a reversible custom hex token.
//
// Identify never returns Automatic. The automatic identity is a contextual
// sentinel, not a color value: the theme foreground varies at render time,
// so callers that may be holding the theme color must check their existing
// identifier before inferring one from the concrete value.
func (r *Registry) Identify(c Color) Identity {
	for _, e := range r.entries {
		if c.WithinTolerance(e.Color, r.tol) {
			return Identity(e.Name)
		}
	}
	return Custom(c)
}

// Resolve returns the concrete color for an identity. Palette tokens look
// up the fixed palette; custom tokens decode their hex payload. Automatic
// and malformed tokens return (Color{}, false): the caller substitutes the
// live theme color. Resolution never fails hard; color fidelity across the
// archival boundary is best effort.
func (r *Registry) Resolve(id Identity) (Color, bool) {
	if id == Automatic || id == "" {
		return Color{}, false
	}
	if c, ok := r.byName[id]; ok {
		return c, true
	}
	if id.IsCustom() {
		c, err := ParseHex8(string(id[len(customPrefix):]))
		if err != nil {
			return Color{}, false
		}
		return c, true
	}
	return Color{}, false
}
