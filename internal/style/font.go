package style

// DefaultFamily is the platform-neutral system font family name.
const DefaultFamily = "System"

// Font is the native font object attached to a run. It is the lossy half
// of the styling model: the archiver does not preserve it across platform
// boundaries, which is why the codec stamps redundant trait flags and a
// size token next to it.
type Font struct {
	Family string
	Points float64
	Bold   bool
	Italic bool
}

// Provider synthesizes font variants. Implementations back onto a platform
// font system; the engine ships a platform-neutral one. A Provider must
// never fail hard: when a trait combination cannot be synthesized,
// WithTraits reports ok=false and the caller keeps the unmodified font.
type Provider interface {
	// System returns the base system font at the given point size.
	System(points float64) Font

	// WithTraits returns a variant of f carrying the requested traits.
	// ok is false when the font system cannot synthesize the combination.
	WithTraits(f Font, bold, italic bool) (Font, bool)
}

// systemProvider is the platform-neutral Provider. Synthesis always
// succeeds: the descriptor is a value, not a rasterized face.
type systemProvider struct {
	family string
}

// DefaultProvider returns the platform-neutral font provider.
func DefaultProvider() Provider {
	return systemProvider{family: DefaultFamily}
}

// NewProvider returns a provider that issues fonts in the given family.
// An empty family falls back to the platform default.
func NewProvider(family string) Provider {
	if family == "" {
		family = DefaultFamily
	}
	return systemProvider{family: family}
}

func (p systemProvider) System(points float64) Font {
	if points <= 0 {
		points = DefaultPoints
	}
	return Font{Family: p.family, Points: points}
}

func (systemProvider) WithTraits(f Font, bold, italic bool) (Font, bool) {
	f.Bold = bold
	f.Italic = italic
	return f, true
}
