package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"stylize-engine/backend/internal/catalog"
	"stylize-engine/backend/internal/rotation"
	"stylize-engine/backend/internal/router"
	"stylize-engine/backend/pkg/logger"

	"go.uber.org/zap"
)

// Validates the built-in catalogs plus an optional YAML overlay and prints
// sample payloads for a preset, e.g.
//
//	go run ./backend/scripts -file presets.yaml -preset reflection_pact -samples 5
func main() {
	file := flag.String("file", "", "Optional YAML catalog overlay to merge")
	presetID := flag.String("preset", "", "Preset to render sample payloads for")
	samples := flag.Int("samples", 3, "Number of sample payloads to render")
	flag.Parse()

	// Initialize logger
	if err := logger.Init("development", "info"); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Sync()

	log := logger.Get()

	cat := catalog.Default()
	if *file != "" {
		extra, err := catalog.LoadFile(*file)
		if err != nil {
			log.Fatal("Failed to load overlay", zap.String("file", *file), zap.Error(err))
		}
		if cat, err = cat.Merge(extra...); err != nil {
			log.Fatal("Failed to merge overlay", zap.Error(err))
		}
		log.Info("Overlay merged", zap.Int("presets", len(extra)))
	}

	fragments := rotation.DefaultRegistry()
	if err := catalog.Validate(cat, fragments); err != nil {
		log.Fatal("Catalog is invalid", zap.Error(err))
	}

	for _, f := range catalog.Families() {
		log.Info("Family", zap.String("family", f.String()), zap.Int("presets", len(cat.Entries(f))))
	}
	log.Info("Catalog OK", zap.Int("presets", cat.Len()), zap.Int("vocabularies", fragments.Size()))

	if *presetID == "" {
		return
	}

	builder := router.NewBuilder(cat, fragments, router.Settings{
		EditModel:      "edit-model",
		DiffusionModel: "diffusion-model",
	})
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	for i := 0; i < *samples; i++ {
		payload, err := builder.Build(*presetID, "https://example.com/input.png", router.Options{})
		if err != nil {
			log.Fatal("Failed to build payload", zap.String("preset_id", *presetID), zap.Error(err))
		}
		if err := enc.Encode(payload); err != nil {
			log.Fatal("Failed to encode payload", zap.Error(err))
		}
	}
}
