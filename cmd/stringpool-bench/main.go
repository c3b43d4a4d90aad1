// SPDX-License-Identifier: Apache-2.0

// Command stringpool-bench compares allocating and sorting a large string
// corpus with native Go strings versus pool-allocated handles, and prints
// a timing table.
package main

import (
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/wundergraph/go-stringpool/bench"
)

var (
	configPath = kingpin.Flag("config", "Optional TOML config file; values in the file override flags.").String()
	count      = kingpin.Flag("count", "Repetitions of the corpus lines.").Default("200000").Int()
	short      = kingpin.Flag("short", "Benchmark with short strings instead of lorem lines.").Bool()
	seed       = kingpin.Flag("seed", "Corpus shuffle seed.").Default("1").Uint64()
	chunkSize  = kingpin.Flag("min-chunk-size", "Pool chunk size floor in bytes (0 = library default).").Default("0").Int()
	verbose    = kingpin.Flag("verbose", "Enable debug logging.").Short('v').Bool()
)

func main() {
	kingpin.Parse()

	log.Logger = zerolog.New(zerolog.NewConsoleWriter()).With().Timestamp().Logger()
	if *verbose {
		log.Logger = log.Logger.Level(zerolog.DebugLevel)
	} else {
		log.Logger = log.Logger.Level(zerolog.InfoLevel)
	}

	cfg := bench.DefaultConfig()
	cfg.Count = *count
	cfg.ShortStrings = *short
	cfg.Seed = *seed
	cfg.MinChunkSize = *chunkSize

	if *configPath != "" {
		if _, err := toml.DecodeFile(*configPath, &cfg); err != nil {
			log.Fatal().Err(err).Str("path", *configPath).Msg("Failed to load config")
		}
		log.Debug().Str("path", *configPath).Msg("Loaded config file")
	}

	log.Info().
		Int("count", cfg.Count).
		Bool("short_strings", cfg.ShortStrings).
		Uint64("seed", cfg.Seed).
		Msg("Building corpus")
	corpus := cfg.Corpus()
	log.Info().Int("strings", len(corpus)).Msg("Corpus ready")

	log.Info().Msg("Running native scenario")
	native := bench.RunNative(corpus)

	log.Info().Msg("Running pool scenario")
	pool, err := bench.RunPool(corpus, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Pool scenario failed")
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Scenario", "Alloc", "Sort", "Pool bytes", "Chunks"})
	for _, r := range []bench.Result{native, pool} {
		poolBytes, chunks := "-", "-"
		if r.Chunks > 0 {
			poolBytes = humanize.IBytes(uint64(r.Bytes))
			chunks = strconv.Itoa(r.Chunks)
		}
		table.Append([]string{r.Name, r.Alloc.String(), r.Sort.String(), poolBytes, chunks})
	}
	table.Render()
}
