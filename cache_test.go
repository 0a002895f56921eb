package utern

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheServesEqualModel(t *testing.T) {
	cache := NewCache(2)
	engine := NewEngine(WithCache(cache))

	first, err := engine.Compute(DefaultConfiguration())
	require.NoError(t, err)
	second, err := engine.Compute(DefaultConfiguration())
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.False(t, first == second, "cached model must be copied for every caller")
	hits, misses := cache.Stats()
	assert.Equal(t, 1, hits)
	assert.Equal(t, 1, misses)
	assert.Equal(t, 1, cache.Len())
}

func TestCachedModelIsolatedFromCallers(t *testing.T) {
	cache := NewCache(2)
	engine := NewEngine(WithCache(cache))

	first, err := engine.Compute(DefaultConfiguration())
	require.NoError(t, err)
	innerX := first.Island.Inner[0][0]
	labelText := first.Annotations.Labels[0].Text

	first.Island.Inner[0][0] = -999
	first.Island.Ring[0][0] = -999
	first.Annotations.Labels[0].Text = "changed"
	first.Annotations.Dimensions[0].Label = "changed"

	second, err := engine.Compute(DefaultConfiguration())
	require.NoError(t, err)
	assert.Equal(t, innerX, second.Island.Inner[0][0])
	assert.Equal(t, innerX, second.Island.Ring[0][0])
	assert.Equal(t, labelText, second.Annotations.Labels[0].Text)
	assert.Equal(t, "L1 7m", second.Annotations.Dimensions[0].Label)

	// Mutating a served copy must not leak into the next one either
	second.Island.Inner[0][0] = -999
	third, err := engine.Compute(DefaultConfiguration())
	require.NoError(t, err)
	assert.Equal(t, innerX, third.Island.Inner[0][0])

	hits, _ := cache.Stats()
	assert.Equal(t, 2, hits)
}

func TestCacheEvictsOldest(t *testing.T) {
	cache := NewCache(2)
	engine := NewEngine(WithCache(cache))

	speeds := []float64{40, 60, 80}
	models := make([]*Model, 0, len(speeds))
	for _, speed := range speeds {
		cfg := DefaultConfiguration()
		cfg.TrafficSpeed = speed
		model, err := engine.Compute(cfg)
		require.NoError(t, err)
		models = append(models, model)
	}
	assert.Equal(t, 2, cache.Len())

	cfg := DefaultConfiguration()
	cfg.TrafficSpeed = 40
	again, err := engine.Compute(cfg)
	require.NoError(t, err)
	hits, misses := cache.Stats()
	assert.Equal(t, 0, hits, "evicted model must be recomputed")
	assert.Equal(t, 4, misses)
	assert.Equal(t, models[0], again)

	cfg.TrafficSpeed = 80
	cached, err := engine.Compute(cfg)
	require.NoError(t, err)
	hits, _ = cache.Stats()
	assert.Equal(t, 1, hits)
	assert.Equal(t, models[2], cached)
}

func TestCacheSkipsInvalid(t *testing.T) {
	cache := NewCache(4)
	engine := NewEngine(WithCache(cache))
	cfg := DefaultConfiguration()
	cfg.L1Width = -1
	_, err := engine.Compute(cfg)
	assert.True(t, IsInvalidConfiguration(err))
	assert.Equal(t, 0, cache.Len())
}

func TestCacheConcurrentCompute(t *testing.T) {
	cache := NewCache(8)
	engine := NewEngine(WithCache(cache))
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			cfg := DefaultConfiguration()
			cfg.L1Width = 5 + float64(i%4)
			model, err := engine.Compute(cfg)
			assert.NoError(t, err)
			assert.Equal(t, cfg, model.Config)
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 4, cache.Len())
}

func TestNewCacheMinimalCapacity(t *testing.T) {
	cache := NewCache(0)
	engine := NewEngine(WithCache(cache))
	for _, speed := range []float64{30, 50} {
		cfg := DefaultConfiguration()
		cfg.TrafficSpeed = speed
		_, err := engine.Compute(cfg)
		require.NoError(t, err)
	}
	assert.Equal(t, 1, cache.Len())
}
