package router

// Shape identifies which downstream model family a payload targets.
type Shape string

const (
	ShapeEdit      Shape = "edit"
	ShapeDiffusion Shape = "diffusion"
)

// Payload is either *EditPayload or *DiffusionPayload. Both marshal to the
// snake_case body the generation endpoint expects.
type Payload interface {
	Shape() Shape
	// Target is the model identifier the payload is addressed to.
	Target() string
	// PromptText is the final prompt after substitution and guarding.
	PromptText() string
}

// EditPayload is the minimal request for the lightweight edit model.
type EditPayload struct {
	Model    string  `json:"model"`
	Prompt   string  `json:"prompt"`
	ImageURL string  `json:"image_url"`
	Strength float64 `json:"strength"`
}

func (p *EditPayload) Shape() Shape       { return ShapeEdit }
func (p *EditPayload) Target() string     { return p.Model }
func (p *EditPayload) PromptText() string { return p.Prompt }

// DiffusionPayload is the request for the diffusion model. SubjectLock, ControlNets and
// RegionLayers are only set for subject-locked region-aware presets.
type DiffusionPayload struct {
	Model             string  `json:"model"`
	Prompt            string  `json:"prompt"`
	NegativePrompt    string  `json:"negative_prompt"`
	ImageURL          string  `json:"image_url"`
	Strength          float64 `json:"strength"`
	NumInferenceSteps int     `json:"num_inference_steps"`
	GuidanceScale     float64 `json:"guidance_scale"`
	NumVariations     int     `json:"num_variations"`

	SubjectLock  *SubjectLock  `json:"subject_lock,omitempty"`
	ControlNets  []ControlNet  `json:"control_nets,omitempty"`
	RegionLayers []RegionLayer `json:"region_layers,omitempty"`
}

func (p *DiffusionPayload) Shape() Shape       { return ShapeDiffusion }
func (p *DiffusionPayload) Target() string     { return p.Model }
func (p *DiffusionPayload) PromptText() string { return p.Prompt }

// SubjectLock pins the subject to the reference image.
type SubjectLock struct {
	ReferenceImageURL string  `json:"reference_image_url"`
	Weight            float64 `json:"weight"`
}

// ControlNet is one conditioning unit.
type ControlNet struct {
	Type          string  `json:"type"`
	Weight        float64 `json:"weight"`
	GuidanceStart float64 `json:"guidance_start"`
	GuidanceEnd   float64 `json:"guidance_end"`
}

// RegionLayer records the clamped denoise value for one declared region.
// The backend applies a single global strength; layers are informational.
type RegionLayer struct {
	Region  string  `json:"region"`
	Denoise float64 `json:"denoise"`
}
