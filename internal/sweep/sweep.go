package sweep

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"fogcrawl/internal/app"
	"fogcrawl/internal/sims/fog"
)

// Scenario is one headless round: a field configuration, an observer seed
// and how much simulated time to run.
type Scenario struct {
	Name     string
	Config   fog.Config
	Seed     int64
	Duration time.Duration
	Frame    time.Duration
}

func (s Scenario) String() string {
	return fmt.Sprintf("%s seed=%d radius=%.1f interval=%s", s.Name, s.Seed, s.Config.RevealRadius, s.Config.TickInterval)
}

// Result summarises a finished scenario.
type Result struct {
	Scenario Scenario

	Frames        int
	Ticks         int
	Explored      float64
	PixelsCleared int
	Mean          float64
	Corrupted     float64
	Health        float64
	Survived      bool
	Elapsed       time.Duration

	// Fog and Corruption are copies of the final grids.
	Fog        []uint8
	Corruption []uint8
}

// Run plays a scenario to the end of its duration or until the observer is
// reclaimed.
func Run(sc Scenario) Result {
	start := time.Now()
	frame := sc.Frame
	if frame <= 0 {
		frame = time.Second / 60
	}
	s := app.NewSession(sc.Config, sc.Seed)
	frames := 0
	for sim := time.Duration(0); sim < sc.Duration && !s.Over(); sim += frame {
		s.Frame(frame)
		frames++
	}
	f := s.Field
	return Result{
		Scenario:      sc,
		Frames:        frames,
		Ticks:         f.TickCount(),
		Explored:      f.ExplorationPercent(),
		PixelsCleared: f.PixelsCleared(),
		Mean:          f.MeanCorruption(),
		Corrupted:     f.CorruptedFraction(100),
		Health:        s.Health(),
		Survived:      !s.Over(),
		Elapsed:       time.Since(start),
		Fog:           f.ExplorationView().Snapshot(),
		Corruption:    f.CorruptionView().Snapshot(),
	}
}

// RunAll runs scenarios on workers goroutines. Each scenario owns its field,
// so nothing is shared between workers. Results come back sorted by explored
// share, highest first.
func RunAll(scenarios []Scenario, workers int) []Result {
	if workers <= 0 {
		workers = 1
	}
	jobs := make(chan Scenario)
	results := make(chan Result)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for sc := range jobs {
				results <- Run(sc)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, sc := range scenarios {
			jobs <- sc
		}
		close(jobs)
	}()

	all := make([]Result, 0, len(scenarios))
	for res := range results {
		all = append(all, res)
	}
	sort.SliceStable(all, func(i, j int) bool {
		if all[i].Explored != all[j].Explored {
			return all[i].Explored > all[j].Explored
		}
		return all[i].Scenario.Name < all[j].Scenario.Name
	})
	return all
}

// Matrix builds one scenario per difficulty and seed on top of base.
func Matrix(base fog.Config, seeds []int64, duration time.Duration) []Scenario {
	var out []Scenario
	for _, d := range fog.Difficulties() {
		cfg := base
		cfg.Difficulty = d
		cfg.RevealRadius = d.RevealRadius()
		cfg.TickInterval = d.TickInterval()
		for _, seed := range seeds {
			out = append(out, Scenario{
				Name:     string(d),
				Config:   cfg,
				Seed:     seed,
				Duration: duration,
			})
		}
	}
	return out
}
