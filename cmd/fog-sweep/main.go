package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"fogcrawl/internal/render"
	"fogcrawl/internal/sims/fog"
	"fogcrawl/internal/sweep"
	"fogcrawl/pkg/logger"

	"github.com/sirupsen/logrus"
)

type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

func main() {
	duration := flag.Duration("duration", 3*time.Minute, "simulated time per scenario")
	seeds := flag.Int("seeds", 4, "observer seeds per difficulty")
	workers := flag.Int("workers", runtime.NumCPU(), "parallel scenario evaluations")
	pngDir := flag.String("png", "", "directory to write a final-state PNG per scenario")
	var overrides kvList
	flag.Var(&overrides, "set", "config override in key=value form (repeatable)")
	flag.Parse()

	logger.Init()

	kv := map[string]string{}
	for _, o := range overrides {
		parts := strings.SplitN(o, "=", 2)
		if len(parts) != 2 {
			logger.Log.WithField("override", o).Warn("Ignoring malformed override.")
			continue
		}
		kv[parts[0]] = parts[1]
	}
	base := fog.FromMap(kv)

	seedList := make([]int64, *seeds)
	for i := range seedList {
		seedList[i] = int64(i + 1)
	}
	scenarios := sweep.Matrix(base, seedList, *duration)

	logger.Log.WithFields(logrus.Fields{
		"scenarios": len(scenarios),
		"workers":   *workers,
		"duration":  duration.String(),
	}).Info("Sweeping fog scenarios.")

	start := time.Now()
	results := sweep.RunAll(scenarios, *workers)

	fmt.Printf("\nResults (elapsed %s):\n", time.Since(start).Round(time.Millisecond))
	for i, res := range results {
		fmt.Printf("%2d) %-6s seed=%d explored=%6.2f%% corrupted=%6.2f%% mean=%.3f ticks=%d hp=%3.0f survived=%v\n",
			i+1, res.Scenario.Name, res.Scenario.Seed, res.Explored, res.Corrupted*100, res.Mean, res.Ticks, res.Health, res.Survived)
	}

	if *pngDir == "" {
		return
	}
	if err := os.MkdirAll(*pngDir, 0o755); err != nil {
		logger.Log.WithError(err).Fatal("Cannot create PNG directory.")
	}
	for _, res := range results {
		path := filepath.Join(*pngDir, fmt.Sprintf("%s-%d.png", res.Scenario.Name, res.Scenario.Seed))
		if err := writePNG(path, res); err != nil {
			logger.Log.WithError(err).WithField("path", path).Error("Failed to write snapshot.")
		}
	}
}

func writePNG(path string, res sweep.Result) error {
	n := res.Scenario.Config.Resolution
	img := image.NewRGBA(image.Rect(0, 0, n, n))
	render.Composite(img, res.Fog, res.Corruption, color.RGBA{R: 58, G: 72, B: 52, A: 255})

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
