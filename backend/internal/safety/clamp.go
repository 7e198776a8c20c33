// Package safety holds the per-family strength ranges that keep generations close to the source photo.
package safety

import (
	"fmt"
	"math"

	"stylize-engine/backend/internal/catalog"
)

// ProfessionalGuidance replaces any nominal guidance scale on diffusion payloads.
const ProfessionalGuidance = 4.5

// Range is an inclusive [Min, Max] interval.
type Range struct {
	Min float64
	Max float64
}

var (
	MoodMask        = Range{Min: 0.10, Max: 0.15}
	ReactionOverlay = Range{Min: 0.12, Max: 0.18}
	GlitchOverlay   = Range{Min: 0.20, Max: 0.30}
	Professional    = Range{Min: 0.08, Max: 0.22}

	RegionSubject    = Range{Min: 0.12, Max: 0.22}
	RegionBackground = Range{Min: 0.55, Max: 0.80}
)

// Clamp returns max(lo, min(hi, x)). NaN maps to lo.
func Clamp(x, lo, hi float64) float64 {
	if math.IsNaN(x) {
		return lo
	}
	return math.Max(lo, math.Min(hi, x))
}

// Clamp moves x into the range.
func (r Range) Clamp(x float64) float64 {
	return Clamp(x, r.Min, r.Max)
}

// Contains reports whether x lies within the range, bounds included.
func (r Range) Contains(x float64) bool {
	return x >= r.Min && x <= r.Max
}

func (r Range) String() string {
	return fmt.Sprintf("[%.2f, %.2f]", r.Min, r.Max)
}

// ForFamily returns the strength range for a family. Region-aware presets without subject
// locking use RegionSubject, the same range the router applies when it falls back to a
// professional payload.
func ForFamily(f catalog.Family) (Range, bool) {
	switch f {
	case catalog.FamilyMoodMask:
		return MoodMask, true
	case catalog.FamilyReactionOverlay:
		return ReactionOverlay, true
	case catalog.FamilyGlitchOverlay:
		return GlitchOverlay, true
	case catalog.FamilyProfessional:
		return Professional, true
	case catalog.FamilyRegionAwareEditing:
		return RegionSubject, true
	default:
		return Range{}, false
	}
}

// ForRegion returns the denoise range for a region layer.
func ForRegion(kind catalog.RegionKind) (Range, bool) {
	switch kind {
	case catalog.RegionSubject:
		return RegionSubject, true
	case catalog.RegionBackground:
		return RegionBackground, true
	default:
		return Range{}, false
	}
}
