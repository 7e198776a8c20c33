package safety

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stylize-engine/backend/internal/catalog"
)

var allRanges = map[string]Range{
	"mood":       MoodMask,
	"reaction":   ReactionOverlay,
	"glitch":     GlitchOverlay,
	"pro":        Professional,
	"subject":    RegionSubject,
	"background": RegionBackground,
}

var probes = []float64{
	math.Inf(-1), -1, 0, 0.05, 0.08, 0.1, 0.12, 0.125, 0.15, 0.18, 0.2, 0.22,
	0.25, 0.3, 0.55, 0.6, 0.8, 0.95, 1, 2, math.Inf(1), math.NaN(),
}

func TestClamp_Idempotent(t *testing.T) {
	for name, r := range allRanges {
		for _, x := range probes {
			once := r.Clamp(x)
			assert.Equal(t, once, r.Clamp(once), "%s: clamp(%v)", name, x)
		}
	}
}

func TestClamp_WithinRange(t *testing.T) {
	for name, r := range allRanges {
		for _, x := range probes {
			got := r.Clamp(x)
			assert.True(t, r.Contains(got), "%s: clamp(%v) = %v outside %s", name, x, got, r)
			if r.Contains(x) {
				assert.Equal(t, x, got, "%s: in-range value must pass through", name)
			}
		}
	}
}

func TestClamp_Bounds(t *testing.T) {
	assert.Equal(t, 0.15, MoodMask.Clamp(0.2))
	assert.Equal(t, 0.10, MoodMask.Clamp(0.05))
	assert.Equal(t, 0.15, MoodMask.Clamp(0.9))
	assert.Equal(t, 0.10, MoodMask.Clamp(0.01))
	assert.Equal(t, 0.55, RegionBackground.Clamp(0.5))
	assert.Equal(t, 0.80, RegionBackground.Clamp(0.9))
	assert.Equal(t, 0.08, Professional.Clamp(math.NaN()))
}

func TestForFamily(t *testing.T) {
	for _, f := range catalog.Families() {
		r, ok := ForFamily(f)
		require.True(t, ok, f.String())
		assert.Less(t, r.Min, r.Max)
	}
	_, ok := ForFamily(catalog.Family(0))
	assert.False(t, ok)

	r, _ := ForFamily(catalog.FamilyGlitchOverlay)
	assert.Equal(t, GlitchOverlay, r)
}

func TestForRegion(t *testing.T) {
	r, ok := ForRegion(catalog.RegionSubject)
	assert.True(t, ok)
	assert.Equal(t, RegionSubject, r)

	r, ok = ForRegion(catalog.RegionBackground)
	assert.True(t, ok)
	assert.Equal(t, RegionBackground, r)

	_, ok = ForRegion("sky")
	assert.False(t, ok)
}
