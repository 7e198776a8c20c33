package catalog

// RegionKind names the part of the frame a region layer edits.
type RegionKind string

const (
	RegionSubject    RegionKind = "subject"
	RegionBackground RegionKind = "background"
)

// DefaultSubjectLockWeight applies when a region preset enables subject locking without a weight.
const DefaultSubjectLockWeight = 0.8

// Entry is one catalog row. Entries are read-only once a Catalog is built.
type Entry struct {
	ID     string
	Family Family
	Name   string

	// Prompt is used verbatim for fixed presets and is a pre-rendered sample for randomized ones.
	Prompt string
	// BasePrompt is the template rendered on every call when IsRandomized is set.
	BasePrompt     string
	NegativePrompt string

	Strength      float64
	GuidanceScale float64 // nominal only; zero when the author did not suggest one

	Tags         []string
	IsRandomized bool
	// Tokens binds each {TOKEN} in BasePrompt to a vocabulary name.
	Tokens map[string]string

	// Region is only meaningful for FamilyRegionAwareEditing.
	Region *RegionSpec
}

// RegionSpec describes subject locking and per-region denoise for region-aware presets.
type RegionSpec struct {
	SubjectLock       bool
	SubjectLockWeight float64
	ControlNets       []ControlNetSpec
	Layers            []RegionLayer
}

// RegionLayer is the nominal denoise value the author wants for one region.
type RegionLayer struct {
	Region  RegionKind
	Denoise float64
}

// ControlNetSpec is a conditioning unit attached to a subject-locked payload.
type ControlNetSpec struct {
	Type          string
	Weight        float64
	GuidanceStart float64
	GuidanceEnd   float64
}

// LockWeight returns the subject lock weight, falling back to DefaultSubjectLockWeight.
func (r *RegionSpec) LockWeight() float64 {
	if r == nil || r.SubjectLockWeight <= 0 {
		return DefaultSubjectLockWeight
	}
	if r.SubjectLockWeight > 1 {
		return 1
	}
	return r.SubjectLockWeight
}

// SubjectLocked reports whether the entry asks for the richer subject-locked payload.
func (e Entry) SubjectLocked() bool {
	return e.Region != nil && e.Region.SubjectLock
}

// Template returns the prompt text the router should render for this entry.
func (e Entry) Template() string {
	if e.IsRandomized && e.BasePrompt != "" {
		return e.BasePrompt
	}
	return e.Prompt
}

// HasTag reports whether tag is among the entry's descriptive tags.
func (e Entry) HasTag(tag string) bool {
	for _, t := range e.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
