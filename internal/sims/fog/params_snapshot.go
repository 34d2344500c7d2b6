package fog

import "fogcrawl/internal/core"

// Parameters reports the current tunables grouped for display.
func (f *Field) Parameters() core.ParameterSnapshot {
	cfg := f.cfg
	params := cfg.Params
	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				core.IntParam("res", "Resolution", cfg.Resolution),
				core.FloatParam("world", "World size", cfg.WorldSize),
			},
		},
		{
			Name:    "Reveal",
			Summary: string(cfg.Difficulty),
			Params: []core.Parameter{
				core.FloatParam("radius", "Reveal radius", cfg.RevealRadius),
				core.IntParam("reveal_threshold", "Reveal threshold", int(params.RevealThreshold)),
			},
		},
		{
			Name: "Corruption",
			Params: []core.Parameter{
				core.DurationParam("interval", "Tick interval", f.clock.Interval()),
				core.IntParam("edge_band", "Edge band", params.EdgeBand),
				core.IntParam("neighbor_threshold", "Neighbor threshold", int(params.NeighborThreshold)),
				core.IntParam("growth", "Growth per tick", int(params.GrowthRate)),
				core.IntParam("decay", "Decay per tick", int(params.DecayRate)),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}
