package fog

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfigMatchesNormal(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 512, cfg.Resolution)
	assert.Equal(t, 400.0, cfg.WorldSize)
	assert.Equal(t, DifficultyNormal, cfg.Difficulty)
	assert.Equal(t, 25.0, cfg.RevealRadius)
	assert.Equal(t, 2*time.Second, cfg.TickInterval)
	assert.Equal(t, Params{RevealThreshold: 128, EdgeBand: 5, NeighborThreshold: 100, GrowthRate: 15, DecayRate: 30}, cfg.Params)
}

func TestParseDifficulty(t *testing.T) {
	d, err := ParseDifficulty(" Hard ")
	assert.NoError(t, err)
	assert.Equal(t, DifficultyHard, d)

	_, err = ParseDifficulty("nightmare")
	if !errors.Is(err, ErrUnknownDifficulty) {
		t.Fatalf("expected ErrUnknownDifficulty, got %v", err)
	}
}

func TestDifficultyPresetsOrdered(t *testing.T) {
	ds := Difficulties()
	for i := 1; i < len(ds); i++ {
		assert.Less(t, ds[i].RevealRadius(), ds[i-1].RevealRadius())
		assert.Less(t, ds[i].TickInterval(), ds[i-1].TickInterval())
	}
	assert.Equal(t, DifficultyNormal.RevealRadius(), Difficulty("bogus").RevealRadius())
}

func TestFromMap(t *testing.T) {
	cfg := FromMap(map[string]string{
		"difficulty":         "easy",
		"res":                "256",
		"world":              "300",
		"interval":           "750ms",
		"edge_band":          "3",
		"neighbor_threshold": "90",
		"growth":             "20",
		"decay":              "bad",
	})
	assert.Equal(t, DifficultyEasy, cfg.Difficulty)
	assert.Equal(t, 35.0, cfg.RevealRadius)
	assert.Equal(t, 256, cfg.Resolution)
	assert.Equal(t, 300.0, cfg.WorldSize)
	assert.Equal(t, 750*time.Millisecond, cfg.TickInterval)
	assert.Equal(t, 3, cfg.Params.EdgeBand)
	assert.Equal(t, uint8(90), cfg.Params.NeighborThreshold)
	assert.Equal(t, uint8(20), cfg.Params.GrowthRate)
	assert.Equal(t, uint8(30), cfg.Params.DecayRate, "invalid values keep the default")
}

func TestFromMapRejectsNonPositive(t *testing.T) {
	cfg := FromMap(map[string]string{"res": "0", "world": "-5", "growth": "300", "interval": "-1s"})
	assert.Equal(t, DefaultConfig(), cfg)
	assert.Equal(t, DefaultConfig(), FromMap(nil))
}
