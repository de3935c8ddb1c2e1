// Package main is the entry point for the dungeonforge layout previewer.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/samdwyer/dungeonforge/internal/gen"
	"github.com/samdwyer/dungeonforge/internal/preset"
	"github.com/samdwyer/dungeonforge/internal/telemetry"
	"github.com/samdwyer/dungeonforge/internal/ui"
	"github.com/samdwyer/dungeonforge/internal/world"
)

const retryAttempts = 5

func main() {
	presetID := flag.String("preset", "standard", "generation preset id (standard, cramped, cavernous)")
	seed := flag.Int64("seed", 0, "generation seed; 0 derives one from the clock")
	floor := flag.Int("floor", 1, "floor level, scales bounds and boss placement")
	dump := flag.Bool("dump", false, "print the layout to stdout instead of the interactive preview")
	flag.Parse()

	// Load .env file for local development
	// This makes HONEYCOMB_DUNGEONFORGE_API_KEY available
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}
	setupOTelEnv()

	ctx := context.Background()

	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		log.Printf("Warning: telemetry setup failed: %v", err)
		log.Printf("Preview will run without observability")
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				log.Printf("Error shutting down telemetry: %v", err)
			}
		}()
	}

	registry, err := preset.LoadRegistry()
	if err != nil {
		log.Fatalf("Failed to load presets: %v", err)
	}
	def := registry.GetByID(*presetID)
	if def == nil {
		log.Fatalf("Unknown preset %q; available: %s", *presetID, presetIDs(registry))
	}

	cfg := def.Config(*floor)
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	level, err := gen.GenerateWithRetry(ctx, cfg, *seed, retryAttempts)
	if err != nil {
		log.Fatalf("Generation failed: %v", err)
	}

	if *dump {
		dumpLevel(level)
		return
	}

	viewer, err := ui.NewViewer(level)
	if err != nil {
		log.Fatalf("Failed to initialize preview: %v", err)
	}

	nextSeed := *seed
	regen := func(ctx context.Context) (*world.Level, error) {
		nextSeed++
		return gen.GenerateWithRetry(ctx, cfg, nextSeed, retryAttempts)
	}

	if err := viewer.Run(ctx, regen); err != nil {
		log.Fatalf("Preview error: %v", err)
	}
}

// dumpLevel prints the tile grid and a room summary to stdout.
func dumpLevel(level *world.Level) {
	var sb strings.Builder
	for y := 0; y < level.Grid.Height; y++ {
		for x := 0; x < level.Grid.Width; x++ {
			sb.WriteRune(level.TileAt(x, y).Rune())
		}
		sb.WriteByte('\n')
	}
	fmt.Print(sb.String())

	for i, room := range level.Rooms {
		c := room.Center()
		fmt.Printf("room %2d %-10s %dx%d at (%d,%d) center (%d,%d)\n",
			i, room.Type, room.Bounds.Width, room.Bounds.Height,
			room.Bounds.X, room.Bounds.Y, c.X, c.Y)
	}
	fmt.Printf("%d corridors, entrance at (%d,%d)\n",
		len(level.Corridors), level.EntrancePosition().X, level.EntrancePosition().Y)
}

func presetIDs(r *preset.Registry) string {
	ids := make([]string, 0, r.Count())
	for _, d := range r.All() {
		ids = append(ids, d.ID)
	}
	return strings.Join(ids, ", ")
}

// setupOTelEnv configures OTEL environment variables from our custom env vars.
func setupOTelEnv() {
	// Always set endpoint to Honeycomb
	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")

	// Always set headers from our API key - the .env file may have an unexpanded
	// variable reference that doesn't work, so we construct it properly here
	apiKey := os.Getenv("HONEYCOMB_DUNGEONFORGE_API_KEY")
	dataset := os.Getenv("HONEYCOMB_DUNGEONFORGE_DATASET")
	if dataset == "" {
		dataset = "dungeonforge" // default dataset name
	}
	if apiKey != "" {
		os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
			fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
	}
}
