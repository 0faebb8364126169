package main

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runfall/CheatKeeper_Go/internal/config"
	"github.com/runfall/CheatKeeper_Go/internal/random"
)

func TestSourceFactoryZeroSeed(t *testing.T) {
	assert.Nil(t, sourceFactory(&config.Config{RandomSeed: 0}),
		"zero seed defers to the manager's default source")
}

// Session creation calls the factory from concurrent HTTP handlers, so the
// seed offset must hold up under parallel calls: no two sessions may share
// a generator sequence.
func TestSourceFactoryConcurrentCreates(t *testing.T) {
	factory := sourceFactory(&config.Config{RandomSeed: 7})
	require.NotNil(t, factory)

	const workers = 32
	sources := make([]random.Source, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			sources[i] = factory()
		}(i)
	}
	wg.Wait()

	// Distinct seeds produce distinct sequences; a duplicate fingerprint
	// means two sessions got the same seed.
	type fingerprint [4]int
	seen := make(map[fingerprint]int, workers)
	for i, src := range sources {
		require.NotNil(t, src)
		var fp fingerprint
		for j := range fp {
			fp[j] = src.IntN(1 << 30)
		}
		if prev, dup := seen[fp]; dup {
			t.Fatalf("sources %d and %d share a seed", prev, i)
		}
		seen[fp] = i
	}
	assert.Len(t, seen, workers)
}
