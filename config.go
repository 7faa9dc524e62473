package veclist

import (
	"log/slog"

	"github.com/holmberd/go-veclist/internal/arena"
)

type Config struct {
	// MinBucketSlots is the minimum number of slots in a newly allocated
	// bucket regardless of element size.
	MinBucketSlots int

	// MinBucketBytes floors a new bucket's byte footprint, so tiny elements
	// do not produce an excessive number of tiny buckets.
	MinBucketBytes int

	// GrowthFactor controls geometric bucket growth; a new bucket holds at
	// least capacity*(GrowthFactor-1) slots, giving amortized O(1)
	// insertion. Reserve bypasses the factor.
	GrowthFactor float64

	// Logger receives debug events for growth and compaction.
	// A nil Logger discards them.
	Logger *slog.Logger
}

func DefaultConfig() Config {
	a := arena.DefaultConfig()
	return Config{
		MinBucketSlots: a.MinBucketSlots,
		MinBucketBytes: a.MinBucketBytes,
		GrowthFactor:   a.GrowthFactor,
	}
}

func (c Config) arenaConfig() arena.Config {
	return arena.Config{
		MinBucketSlots: c.MinBucketSlots,
		MinBucketBytes: c.MinBucketBytes,
		GrowthFactor:   c.GrowthFactor,
	}
}

// Validate reports whether the config is usable.
func (c Config) Validate() error {
	return c.arenaConfig().Validate()
}
