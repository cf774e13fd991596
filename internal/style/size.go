package style

import "math"

// FontSize is the semantic text size of a run. It archives as a primitive
// token, unlike the font object's point size, which does not survive the
// round trip.
type FontSize uint8

const (
	// SizeUnset marks a run carrying no explicit size attribute.
	SizeUnset FontSize = iota
	SizeSmall
	SizeNormal
	SizeLarge
	SizeHuge
)

// DefaultPoints is the fixed fallback point size used when neither an
// explicit size attribute nor a readable font size is available.
const DefaultPoints = 13.0

// sizePoints maps each semantic size to its point value.
var sizePoints = map[FontSize]float64{
	SizeSmall:  11,
	SizeNormal: 13,
	SizeLarge:  18,
	SizeHuge:   24,
}

// sizeOrder fixes the tie-break order for nearest-size recovery.
var sizeOrder = []FontSize{SizeSmall, SizeNormal, SizeLarge, SizeHuge}

// Points returns the point value for the size. SizeUnset falls back to
// DefaultPoints.
func (s FontSize) Points() float64 {
	if pts, ok := sizePoints[s]; ok {
		return pts
	}
	return DefaultPoints
}

// String returns the size token used in archives and configuration.
func (s FontSize) String() string {
	switch s {
	case SizeSmall:
		return "small"
	case SizeNormal:
		return "normal"
	case SizeLarge:
		return "large"
	case SizeHuge:
		return "huge"
	default:
		return ""
	}
}

// ParseFontSize parses a size token. Unknown tokens yield SizeUnset.
func ParseFontSize(s string) FontSize {
	switch s {
	case "small":
		return SizeSmall
	case "normal":
		return SizeNormal
	case "large":
		return SizeLarge
	case "huge":
		return SizeHuge
	default:
		return SizeUnset
	}
}

// SizeForPoints returns the semantic size nearest to a point value,
// used to recover a size from an archived font's point size. Ties resolve
// to the smaller size.
func SizeForPoints(pts float64) FontSize {
	best := SizeNormal
	bestDist := math.Inf(1)
	for _, size := range sizeOrder {
		if d := math.Abs(sizePoints[size] - pts); d < bestDist {
			best, bestDist = size, d
		}
	}
	return best
}
