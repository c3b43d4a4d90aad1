// SPDX-License-Identifier: Apache-2.0

// Package bench is the benchmarking harness for the string pool: synthetic
// corpus generation, shuffling, timing, and the native-vs-pool
// allocate-and-sort scenarios. It consumes the allocator through its
// public operations only.
package bench

import (
	"math/rand/v2"
	"slices"
	"strconv"
	"strings"
	"time"

	stringpool "github.com/wundergraph/go-stringpool"
)

// Config controls corpus generation and pool sizing.
type Config struct {
	// Count is the number of times each corpus line is repeated.
	Count int `toml:"count"`
	// ShortStrings swaps the lorem lines for small numbered strings, to
	// exercise the small-string regime.
	ShortStrings bool `toml:"short_strings"`
	// Seed drives the deterministic corpus shuffle.
	Seed uint64 `toml:"seed"`
	// MinChunkSize overrides the pool's chunk floor when > 0.
	MinChunkSize int `toml:"min_chunk_size"`
	// MaxStringLength overrides the pool's allocation ceiling when > 0.
	MaxStringLength int `toml:"max_string_length"`
}

// DefaultConfig returns the standard benchmark configuration.
func DefaultConfig() Config {
	return Config{
		Count: 200 * 1000,
		Seed:  1,
	}
}

// loremLines are long enough that native Go strings always heap-allocate.
var loremLines = [...]string{
	"Lorem ipsum dolor sit amet, consectetuer adipiscing elit.",
	"Maecenas porttitor congue massa. Fusce posuere, magna sed",
	"pulvinar ultricies, purus lectus malesuada libero,",
	"sit amet commodo magna eros quis urna.",
	"Nunc viverra imperdiet enim. Fusce est. Vivamus a tellus.",
	"Pellentesque habitant morbi tristique senectus et netus et",
	"malesuada fames ac turpis egestas. Proin pharetra nonummy pede.",
	"Mauris et orci. [*** add more chars to prevent interning ***]",
}

// Corpus builds the benchmark strings: each line repeated Count times,
// shuffled deterministically by Seed.
func (c Config) Corpus() []string {
	v := make([]string, 0, c.Count*len(loremLines))
	for i := 0; i < c.Count; i++ {
		for _, line := range loremLines {
			if c.ShortStrings {
				v = append(v, "#"+strconv.Itoa(i))
			} else {
				v = append(v, line)
			}
		}
	}

	rng := rand.New(rand.NewPCG(c.Seed, 0))
	rng.Shuffle(len(v), func(i, j int) {
		v[i], v[j] = v[j], v[i]
	})
	return v
}

// Stopwatch measures elapsed wall time between Start and Stop.
type Stopwatch struct {
	start   time.Time
	elapsed time.Duration
}

// Start begins a measurement.
func (w *Stopwatch) Start() {
	w.start = time.Now()
}

// Stop ends the measurement started by Start.
func (w *Stopwatch) Stop() {
	w.elapsed = time.Since(w.start)
}

// Elapsed returns the duration between the last Start and Stop.
func (w *Stopwatch) Elapsed() time.Duration {
	return w.elapsed
}

// Result holds the timings and stats of one scenario run.
type Result struct {
	Name  string
	Alloc time.Duration
	Sort  time.Duration

	// Pool stats; zero for the native scenario.
	Bytes  int
	Chunks int
}

// RunNative allocates one owned Go string per corpus entry and sorts them,
// timing both phases.
func RunNative(corpus []string) Result {
	var w Stopwatch

	w.Start()
	v := make([]string, 0, len(corpus))
	for _, s := range corpus {
		// Clone forces a real per-string copy; corpus entries share
		// backing memory.
		v = append(v, strings.Clone(s))
	}
	w.Stop()
	alloc := w.Elapsed()

	w.Start()
	slices.Sort(v)
	w.Stop()

	return Result{Name: "native", Alloc: alloc, Sort: w.Elapsed()}
}

// RunPool allocates one handle per corpus entry from a single pool and
// sorts the handles, timing both phases.
func RunPool(corpus []string, cfg Config) (Result, error) {
	var opts []stringpool.Option
	if cfg.MinChunkSize > 0 {
		opts = append(opts, stringpool.WithMinChunkSize(cfg.MinChunkSize))
	}
	if cfg.MaxStringLength > 0 {
		opts = append(opts, stringpool.WithMaxStringLength(cfg.MaxStringLength))
	}
	pool := stringpool.New(opts...)

	var w Stopwatch
	w.Start()
	v := make([]stringpool.String, 0, len(corpus))
	for _, s := range corpus {
		h, err := pool.AllocString(s)
		if err != nil {
			return Result{}, err
		}
		v = append(v, h)
	}
	w.Stop()
	alloc := w.Elapsed()

	w.Start()
	slices.SortFunc(v, stringpool.String.Compare)
	w.Stop()

	return Result{
		Name:   "pool",
		Alloc:  alloc,
		Sort:   w.Elapsed(),
		Bytes:  pool.Len(),
		Chunks: pool.NumChunks(),
	}, nil
}
