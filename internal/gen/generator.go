package gen

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/dungeonforge/internal/geom"
	"github.com/samdwyer/dungeonforge/internal/telemetry"
	"github.com/samdwyer/dungeonforge/internal/world"
)

// Generate runs the full layout pipeline once and returns a fully populated
// Level, or a generation failure the caller may retry with a different seed.
// The pipeline executes synchronously; the rng must not be shared with a
// concurrent generation call.
func Generate(ctx context.Context, cfg Config, rng *rand.Rand) (*world.Level, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	tracer := telemetry.Tracer("gen")
	_, span := tracer.Start(ctx, "level.generate")
	defer span.End()

	startTime := time.Now()
	bounds := geom.Rect{X: 0, Y: 0, Width: cfg.Width, Height: cfg.Height}

	root := BuildPartitionTree(bounds, cfg, rng)

	rooms := CarveRooms(root, cfg, rng)
	if len(rooms) == 0 {
		return nil, fmt.Errorf("%w: all %d leaf partitions below minimum room size",
			ErrNoRooms, len(root.Leaves()))
	}

	pairs := ResolveNeighbors(root, len(rooms), cfg.Adjacency)
	candidates := make([]world.Corridor, 0, len(pairs))
	for _, pair := range pairs {
		c, ok := RouteCorridor(rooms[pair.A], rooms[pair.B], pair.A, pair.B, rng.Intn(2) == 0)
		if !ok {
			continue
		}
		candidates = append(candidates, c)
	}

	corridors, err := SelectSpanningTree(candidates, len(rooms))
	if err != nil {
		return nil, err
	}

	entrance, exit, err := AssignRoomTypes(rooms, corridors, cfg, rng)
	if err != nil {
		return nil, err
	}

	grid := Rasterize(bounds, rooms, corridors)

	span.SetAttributes(
		attribute.Int("level.width", cfg.Width),
		attribute.Int("level.height", cfg.Height),
		attribute.Int("level.room_count", len(rooms)),
		attribute.Int("level.candidate_count", len(candidates)),
		attribute.Int("level.corridor_count", len(corridors)),
		attribute.Int64("level.generation_ms", time.Since(startTime).Milliseconds()),
	)

	return &world.Level{
		Bounds:    bounds,
		Root:      root,
		Rooms:     rooms,
		Corridors: corridors,
		Grid:      grid,
		Entrance:  entrance,
		Exit:      exit,
	}, nil
}
