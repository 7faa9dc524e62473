// Command veclist-bench drives a list through a configurable workload and
// reports per-operation latency and storage statistics.
//
// Example:
//
//	veclist-bench --workload churn --items 200000 --optimize
package main

import (
	"encoding/binary"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/jamiealquiza/tachymeter"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/pflag"

	veclist "github.com/holmberd/go-veclist"
)

func main() {
	var (
		items    = pflag.Int("items", 100_000, "number of operations to run")
		workload = pflag.String("workload", "churn", "workload: append, prepend, mid or churn")
		optimize = pflag.Bool("optimize", false, "re-pack storage after the workload")
		samples  = pflag.Int("samples", 50_000, "latency samples to keep")
		seed     = pflag.Int64("seed", 1, "random seed")
		verbose  = pflag.Bool("verbose", false, "enable debug logging")
	)
	pflag.Parse()

	if err := run(*workload, *items, *samples, *seed, *optimize, *verbose); err != nil {
		fmt.Fprintln(os.Stderr, "veclist-bench:", err)
		os.Exit(1)
	}
}

func run(workload string, items, samples int, seed int64, optimize, verbose bool) error {
	logger := slog.New(slog.DiscardHandler)
	if verbose {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	cfg := veclist.DefaultConfig()
	cfg.Logger = logger
	l, err := veclist.Custom[uint64](cfg)
	if err != nil {
		return err
	}

	meter := tachymeter.New(&tachymeter.Config{Size: samples})
	rng := rand.New(rand.NewSource(seed))

	step, err := stepFunc(workload, l, rng)
	if err != nil {
		return err
	}

	wallStart := time.Now()
	for i := range items {
		start := time.Now()
		step(uint64(i))
		meter.AddTime(time.Since(start))
	}
	if optimize {
		start := time.Now()
		l.Optimize(true)
		logger.Debug("optimized storage",
			"took", time.Since(start),
			"len", l.Len(),
			"cap", l.Cap(),
		)
	}
	meter.SetWallTime(time.Since(wallStart))

	report(workload, items, optimize, l, meter.Calc())
	return nil
}

// stepFunc returns the per-iteration operation for a workload.
func stepFunc(workload string, l *veclist.List[uint64], rng *rand.Rand) (func(uint64), error) {
	switch workload {
	case "append":
		return func(v uint64) { l.PushBack(v) }, nil
	case "prepend":
		return func(v uint64) { l.PushFront(v) }, nil
	case "mid":
		// Insert before a held anchor element; the handle stays valid
		// across every insertion.
		l.PushBack(0)
		mid := l.Begin()
		return func(v uint64) { l.Insert(mid, v) }, nil
	case "churn":
		// Keep a window of handles and replace a random one each step.
		window := make([]veclist.Iterator[uint64], 0, 1024)
		return func(v uint64) {
			if len(window) < cap(window) {
				window = append(window, l.PushBack(v))
				return
			}
			i := rng.Intn(len(window))
			l.Erase(window[i])
			window[i] = l.PushBack(v)
		}, nil
	default:
		return nil, fmt.Errorf("unknown workload %q", workload)
	}
}

func report(workload string, items int, optimized bool, l *veclist.List[uint64], m *tachymeter.Metrics) {
	s := l.Stats()

	tw := table.NewWriter()
	tw.SetOutputMirror(os.Stdout)
	tw.SetStyle(table.StyleLight)
	tw.SetTitle("veclist-bench: %s", workload)
	tw.AppendHeader(table.Row{"Metric", "Value"})
	tw.AppendRows([]table.Row{
		{"operations", items},
		{"optimized", optimized},
		{"len", s.Len},
		{"cap", s.Cap},
		{"free", s.Free},
		{"buckets", s.Buckets},
		{"compactions", s.Compactions},
		{"checksum", fmt.Sprintf("%016x", checksum(l))},
	})
	tw.AppendSeparator()
	tw.AppendRows([]table.Row{
		{"ops/sec", fmt.Sprintf("%.0f", m.Rate.Second)},
		{"latency avg", m.Time.Avg},
		{"latency p50", m.Time.P50},
		{"latency p95", m.Time.P95},
		{"latency p99", m.Time.P99},
		{"latency max", m.Time.Max},
	})
	tw.Render()
}

// checksum hashes the elements in traversal order, so two runs with the same
// seed and workload must agree.
func checksum(l *veclist.List[uint64]) uint64 {
	d := xxhash.New()
	var buf [8]byte
	for v := range l.All() {
		binary.LittleEndian.PutUint64(buf[:], v)
		d.Write(buf[:])
	}
	return d.Sum64()
}
