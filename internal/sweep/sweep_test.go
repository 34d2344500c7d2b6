package sweep

import (
	"testing"
	"time"

	"fogcrawl/internal/sims/fog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func smallBase() fog.Config {
	cfg := fog.DefaultConfig()
	cfg.Resolution = 48
	cfg.WorldSize = 120
	return cfg
}

func TestRunIsDeterministic(t *testing.T) {
	sc := Scenario{Name: "normal", Config: smallBase(), Seed: 4, Duration: 10 * time.Second, Frame: 50 * time.Millisecond}
	a := Run(sc)
	b := Run(sc)

	assert.Equal(t, a.Fog, b.Fog)
	assert.Equal(t, a.Corruption, b.Corruption)
	assert.Equal(t, 200, a.Frames)
	assert.Equal(t, 5, a.Ticks)
	assert.Greater(t, a.Explored, 0.0)
	assert.True(t, a.Survived)
}

func TestRunAllCoversMatrix(t *testing.T) {
	scenarios := Matrix(smallBase(), []int64{1, 2}, 6*time.Second)
	require.Len(t, scenarios, 6)
	for i := range scenarios {
		scenarios[i].Frame = 100 * time.Millisecond
	}

	results := RunAll(scenarios, 3)
	require.Len(t, results, len(scenarios))
	for i := 1; i < len(results); i++ {
		assert.GreaterOrEqual(t, results[i-1].Explored, results[i].Explored)
	}

	seen := map[string]int{}
	for _, r := range results {
		seen[r.Scenario.Name]++
		assert.Len(t, r.Fog, 48*48)
	}
	assert.Equal(t, map[string]int{"easy": 2, "normal": 2, "hard": 2}, seen)
}
