package arena

import (
	"errors"
	"fmt"
)

type Config struct {
	// MinBucketSlots is the lower bound on the number of slots in a
	// newly allocated bucket, regardless of element size.
	MinBucketSlots int

	// MinBucketBytes is the lower bound on a new bucket's byte footprint.
	// For small elements the effective slot floor is MinBucketBytes divided
	// by the slot size, which keeps the bucket count from growing
	// excessively when elements are tiny.
	MinBucketBytes int

	// GrowthFactor controls geometric growth. When the free chain runs dry,
	// the new bucket holds at least capacity*(GrowthFactor-1) slots, so a
	// sequence of insertions performs amortized O(1) allocations, the same
	// guarantee an amortized-growth array gives.
	//
	// Reserve bypasses the factor and grows exactly to the requested target.
	GrowthFactor float64
}

func (c Config) Validate() error {
	var errs []error
	if c.MinBucketSlots < 1 {
		errs = append(errs, fmt.Errorf("invalid config: MinBucketSlots %d must be at least 1", c.MinBucketSlots))
	}
	if c.MinBucketBytes < 0 {
		errs = append(errs, fmt.Errorf("invalid config: MinBucketBytes %d must not be negative", c.MinBucketBytes))
	}
	if c.GrowthFactor <= 1.0 || c.GrowthFactor > 8.0 {
		errs = append(errs, errors.New("invalid config: GrowthFactor must be greater than 1.0 and at most 8.0"))
	}
	return errors.Join(errs...)
}

func DefaultConfig() Config {
	return Config{
		MinBucketSlots: 8,    // Never allocate a bucket smaller than 8 slots.
		MinBucketBytes: 1024, // Floor the bucket footprint at 1KiB for small elements.
		GrowthFactor:   2.0,  // Double capacity per growth, as an amortized-growth array does.
	}
}
