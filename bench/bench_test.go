// SPDX-License-Identifier: Apache-2.0

package bench

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCorpusDeterministic(t *testing.T) {
	cfg := Config{Count: 10, Seed: 7}

	a := cfg.Corpus()
	b := cfg.Corpus()
	require.Equal(t, 10*len(loremLines), len(a))
	require.Equal(t, a, b)

	cfg.Seed = 8
	c := cfg.Corpus()
	require.NotEqual(t, a, c)
}

func TestCorpusShortStrings(t *testing.T) {
	cfg := Config{Count: 3, Seed: 1, ShortStrings: true}

	for _, s := range cfg.Corpus() {
		require.Less(t, len(s), 4)
		require.Equal(t, byte('#'), s[0])
	}
}

func TestRunScenarios(t *testing.T) {
	cfg := Config{Count: 50, Seed: 1, MinChunkSize: 4096}
	corpus := cfg.Corpus()

	native := RunNative(corpus)
	require.Equal(t, "native", native.Name)
	require.Zero(t, native.Chunks)

	pool, err := RunPool(corpus, cfg)
	require.NoError(t, err)
	require.Equal(t, "pool", pool.Name)
	require.Greater(t, pool.Chunks, 0)

	// Every corpus byte plus one terminator slot per string ends up in
	// the pool.
	wantBytes := len(corpus)
	for _, s := range corpus {
		wantBytes += len(s)
	}
	require.Equal(t, wantBytes, pool.Bytes)
}

func TestRunPoolRespectsCeiling(t *testing.T) {
	cfg := Config{Count: 1, Seed: 1, MaxStringLength: 4}
	_, err := RunPool(cfg.Corpus(), cfg)
	require.Error(t, err)
}
