package router

import (
	"fmt"
	"math"
	"strings"

	"go.uber.org/zap"

	"stylize-engine/backend/internal/catalog"
	"stylize-engine/backend/internal/safety"
	apperrors "stylize-engine/backend/pkg/errors"
	"stylize-engine/backend/pkg/logger"
	"stylize-engine/backend/pkg/metrics"
)

// SingleFrameGuard is prepended to every diffusion prompt. The diffusion model
// sometimes answers an edit request with a multi-panel composition.
const SingleFrameGuard = "Single continuous frame: one photograph of one scene, no grid, no collage, no split-screen, no mirrored or duplicated faces. "

// DefaultNegativePrompt is used for diffusion payloads whose preset declares none.
const DefaultNegativePrompt = "grid, collage, split screen, multiple panels, duplicated face, mirrored face, extra people, different person, distorted features, low quality"

// DefaultFreeTextStrength is the nominal strength for prompts without a preset.
const DefaultFreeTextStrength = 0.15

const freeTextLabel = "free_text"

// FragmentSource renders randomized templates. *rotation.Registry satisfies it.
type FragmentSource interface {
	Render(template string, tokens map[string]string) (string, []string)
}

// Settings are the model-level parameters shared by every payload.
type Settings struct {
	EditModel         string
	DiffusionModel    string
	NumInferenceSteps int
	MaxVariations     int
}

// Options are per-call knobs that do not affect routing.
type Options struct {
	NumVariations int
}

// Builder turns a preset identifier or free text into a generation payload.
// It is safe for concurrent use; the only shared mutable state lives in the fragment source.
type Builder struct {
	catalog    PresetCatalog
	classifier *Classifier
	fragments  FragmentSource
	settings   Settings
}

// NewBuilder creates a builder over a catalog and fragment source.
func NewBuilder(c PresetCatalog, fragments FragmentSource, settings Settings) *Builder {
	if settings.NumInferenceSteps <= 0 {
		settings.NumInferenceSteps = 30
	}
	if settings.MaxVariations < 1 {
		settings.MaxVariations = 1
	}
	return &Builder{
		catalog:    c,
		classifier: NewClassifier(c),
		fragments:  fragments,
		settings:   settings,
	}
}

// Classifier exposes the builder's classifier.
func (b *Builder) Classifier() *Classifier {
	return b.classifier
}

// Build resolves presetID and assembles its payload. The only error is *errors.ErrUnknownPreset.
func (b *Builder) Build(presetID, imageURL string, opts Options) (Payload, error) {
	family, err := b.classifier.Classify(presetID)
	if err != nil {
		metrics.PayloadBuildsTotal.WithLabelValues("unknown", "", "unknown_preset").Inc()
		logger.Get().Debug("Unknown preset", zap.String("preset_id", presetID))
		return nil, err
	}

	entry, ok := b.catalog.Lookup(family, presetID)
	if !ok {
		metrics.PayloadBuildsTotal.WithLabelValues(family.String(), "", "unknown_preset").Inc()
		return nil, apperrors.NewUnknownPreset(presetID)
	}

	prompt := b.resolvePrompt(entry)

	var payload Payload
	switch family {
	case catalog.FamilyRegionAwareEditing:
		if entry.SubjectLocked() {
			payload = b.subjectLockedPayload(entry, prompt, imageURL, opts)
		} else {
			strength := b.clamp(family, safety.RegionSubject, entry.Strength)
			payload = b.diffusionPayload(prompt, entry.NegativePrompt, imageURL, strength, opts)
		}
	case catalog.FamilyMoodMask, catalog.FamilyReactionOverlay, catalog.FamilyGlitchOverlay:
		r, _ := safety.ForFamily(family)
		payload = &EditPayload{
			Model:    b.settings.EditModel,
			Prompt:   prompt,
			ImageURL: imageURL,
			Strength: b.clamp(family, r, entry.Strength),
		}
	case catalog.FamilyProfessional:
		strength := b.clamp(family, safety.Professional, entry.Strength)
		payload = b.diffusionPayload(prompt, entry.NegativePrompt, imageURL, strength, opts)
	default:
		// every declared family is handled above
		return nil, fmt.Errorf("router: unhandled family %s for preset %s", family, presetID)
	}

	metrics.PayloadBuildsTotal.WithLabelValues(family.String(), string(payload.Shape()), "ok").Inc()
	logger.Get().Debug("Built payload",
		zap.String("preset_id", presetID),
		zap.String("family", family.String()),
		zap.String("shape", string(payload.Shape())),
		zap.String("model", payload.Target()),
		zap.Bool("randomized", entry.IsRandomized),
	)
	return payload, nil
}

// BuildFreeText wraps a user prompt into a professional-shaped diffusion payload.
func (b *Builder) BuildFreeText(prompt, imageURL string, opts Options) (Payload, error) {
	strength := safety.Professional.Clamp(DefaultFreeTextStrength)
	payload := b.diffusionPayload(strings.TrimSpace(prompt), "", imageURL, strength, opts)

	metrics.PayloadBuildsTotal.WithLabelValues(freeTextLabel, string(payload.Shape()), "ok").Inc()
	logger.Get().Debug("Built free-text payload",
		zap.Int("prompt_length", len(prompt)),
		zap.String("model", payload.Target()),
	)
	return payload, nil
}

func (b *Builder) resolvePrompt(entry catalog.Entry) string {
	if !entry.IsRandomized {
		return entry.Prompt
	}
	prompt, unresolved := b.fragments.Render(entry.Template(), entry.Tokens)
	if len(unresolved) > 0 {
		logger.Get().Warn("Template placeholders left unresolved",
			zap.String("preset_id", entry.ID),
			zap.Strings("tokens", unresolved),
		)
	}
	return prompt
}

func (b *Builder) subjectLockedPayload(entry catalog.Entry, prompt, imageURL string, opts Options) *DiffusionPayload {
	spec := entry.Region

	// single global strength: the largest clamped denoise across declared regions
	strength := math.Inf(-1)
	var layers []RegionLayer
	for _, layer := range spec.Layers {
		r, ok := safety.ForRegion(layer.Region)
		if !ok {
			continue
		}
		denoise := b.clamp(entry.Family, r, layer.Denoise)
		layers = append(layers, RegionLayer{Region: string(layer.Region), Denoise: denoise})
		strength = math.Max(strength, denoise)
	}
	if len(layers) == 0 {
		strength = b.clamp(entry.Family, safety.RegionSubject, entry.Strength)
	}

	p := b.diffusionPayload(prompt, entry.NegativePrompt, imageURL, strength, opts)
	p.SubjectLock = &SubjectLock{
		ReferenceImageURL: imageURL,
		Weight:            spec.LockWeight(),
	}
	for _, cn := range spec.ControlNets {
		p.ControlNets = append(p.ControlNets, ControlNet{
			Type:          cn.Type,
			Weight:        cn.Weight,
			GuidanceStart: cn.GuidanceStart,
			GuidanceEnd:   cn.GuidanceEnd,
		})
	}
	p.RegionLayers = layers
	return p
}

func (b *Builder) diffusionPayload(prompt, negative, imageURL string, strength float64, opts Options) *DiffusionPayload {
	if negative == "" {
		negative = DefaultNegativePrompt
	}
	return &DiffusionPayload{
		Model:             b.settings.DiffusionModel,
		Prompt:            withGuard(prompt),
		NegativePrompt:    negative,
		ImageURL:          imageURL,
		Strength:          strength,
		NumInferenceSteps: b.settings.NumInferenceSteps,
		GuidanceScale:     safety.ProfessionalGuidance,
		NumVariations:     b.variations(opts.NumVariations),
	}
}

func (b *Builder) clamp(family catalog.Family, r safety.Range, nominal float64) float64 {
	v := r.Clamp(nominal)
	if v != nominal {
		metrics.StrengthClampedTotal.WithLabelValues(family.String()).Inc()
	}
	return v
}

func (b *Builder) variations(n int) int {
	if n < 1 {
		return 1
	}
	if n > b.settings.MaxVariations {
		return b.settings.MaxVariations
	}
	return n
}

func withGuard(prompt string) string {
	if strings.HasPrefix(prompt, SingleFrameGuard) {
		return prompt
	}
	return SingleFrameGuard + prompt
}
