package arena

import (
	"testing"
	"unsafe"
)

// testConfig returns a config with byte-flooring disabled so bucket sizes
// in tests are deterministic regardless of platform padding.
func testConfig() Config {
	return Config{
		MinBucketSlots: 4,
		MinBucketBytes: 0,
		GrowthFactor:   2.0,
	}
}

func TestConfigValidate(t *testing.T) {
	testCases := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"Default", DefaultConfig(), false},
		{"Zero min slots", Config{MinBucketSlots: 0, MinBucketBytes: 0, GrowthFactor: 2.0}, true},
		{"Negative min bytes", Config{MinBucketSlots: 4, MinBucketBytes: -1, GrowthFactor: 2.0}, true},
		{"Growth factor too small", Config{MinBucketSlots: 4, MinBucketBytes: 0, GrowthFactor: 1.0}, true},
		{"Growth factor too large", Config{MinBucketSlots: 4, MinBucketBytes: 0, GrowthFactor: 9.0}, true},
		{"Fractional growth factor", Config{MinBucketSlots: 4, MinBucketBytes: 0, GrowthFactor: 1.5}, false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if gotErr := err != nil; gotErr != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestArenaGrowthGeometric(t *testing.T) {
	var a Arena[int]
	a.Init(nil, testConfig())

	// Each exhaustion doubles capacity: 4, 8, 16, ...
	wantCaps := []int{4, 8, 16, 32}
	for _, want := range wantCaps {
		a.Get()
		if got := a.Cap(); got != want {
			t.Fatalf("expected cap %d after first get of a bucket, got %d", want, got)
		}
		// Drain the rest of the bucket so the next Get grows again.
		for a.Free() > 0 {
			a.Get()
		}
	}
}

func TestArenaMinBucketBytes(t *testing.T) {
	cfg := testConfig()
	cfg.MinBucketBytes = 1024

	var a Arena[int64]
	a.Init(nil, cfg)
	a.Get()

	want := 1024 / int(unsafe.Sizeof(Node[int64]{}))
	if want < cfg.MinBucketSlots {
		want = cfg.MinBucketSlots
	}
	if got := a.Cap(); got != want {
		t.Errorf("expected first bucket to hold %d slots, got %d", want, got)
	}
}

func TestArenaReserveExact(t *testing.T) {
	var a Arena[int]
	a.Init(nil, testConfig())

	a.Reserve(100)
	if got := a.Cap(); got != 100 {
		t.Errorf("expected cap 100 after exact reserve, got %d", got)
	}
	if got := a.NumBuckets(); got != 1 {
		t.Errorf("expected a single bucket, got %d", got)
	}

	// Reserving below capacity is a no-op.
	a.Reserve(10)
	if got := a.Cap(); got != 100 {
		t.Errorf("expected cap unchanged at 100, got %d", got)
	}

	// Reserving above allocates exactly the shortfall.
	a.Reserve(110)
	if got := a.Cap(); got != 110 {
		t.Errorf("expected cap 110, got %d", got)
	}
}

func TestArenaGetPutRecycle(t *testing.T) {
	var a Arena[string]
	a.Init(nil, testConfig())

	n := a.Get()
	n.Value = "hello"
	n.Used = true
	free := a.Free()

	a.Put(n)
	if got := a.Free(); got != free+1 {
		t.Fatalf("expected free %d after put, got %d", free+1, got)
	}
	if n.Used || n.Value != "" || n.Prev != nil {
		t.Errorf("expected put to reset the slot, got %+v", n)
	}

	// The freed slot is recycled before any hole deeper in the chain.
	if got := a.Get(); got != n {
		t.Error("expected get to return the most recently freed slot")
	}
}

func TestArenaSlotAddressStability(t *testing.T) {
	var a Arena[int]
	a.Init(nil, testConfig())

	n := a.Get()
	n.Value = 42
	n.Used = true

	// Growth must never relocate issued slots.
	for range 1000 {
		m := a.Get()
		m.Used = true
	}
	if n.Value != 42 {
		t.Errorf("expected slot to keep its value across growth, got %d", n.Value)
	}
}

func TestArenaAdopt(t *testing.T) {
	var a, b Arena[int]
	a.Init(nil, testConfig())
	b.Init(nil, testConfig())

	a.Reserve(8)
	b.Reserve(16)
	n := b.Get()
	n.Value = 7
	n.Used = true

	a.Adopt(&b)
	if got := a.Cap(); got != 24 {
		t.Errorf("expected adopted cap 24, got %d", got)
	}
	if got := a.Free(); got != 23 {
		t.Errorf("expected adopted free 23, got %d", got)
	}
	if b.Cap() != 0 || b.Free() != 0 || b.NumBuckets() != 0 {
		t.Error("expected donor arena to be empty after adopt")
	}
	if n.Value != 7 {
		t.Error("expected adopted slot to keep its value")
	}

	// The donor must remain usable.
	m := b.Get()
	if m == nil || b.Cap() == 0 {
		t.Error("expected donor arena to grow again after adopt")
	}
}

func TestArenaRefill(t *testing.T) {
	var a Arena[int]
	a.Init(nil, testConfig())

	for i := range 10 {
		n := a.Get()
		n.Value = i
		n.Used = true
	}
	cap := a.Cap()

	a.Refill()
	if got := a.Free(); got != cap {
		t.Errorf("expected all %d slots free after refill, got %d", cap, got)
	}
	if got := a.Cap(); got != cap {
		t.Errorf("expected cap unchanged at %d, got %d", cap, got)
	}

	// Every slot is a pristine hole again.
	for a.Free() > 0 {
		n := a.Get()
		if n.Used || n.Value != 0 {
			t.Fatalf("expected pristine hole, got %+v", n)
		}
	}
}

func TestArenaRelease(t *testing.T) {
	var a Arena[int]
	a.Init(nil, testConfig())

	a.Reserve(32)
	a.Release()
	if a.Cap() != 0 || a.Free() != 0 || a.NumBuckets() != 0 {
		t.Error("expected empty arena after release")
	}

	// Release does not kill the arena; it grows again on demand.
	a.Get()
	if a.Cap() == 0 {
		t.Error("expected arena to grow after release")
	}
}
