//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"fogcrawl/internal/app"
	"fogcrawl/pkg/logger"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	logger.Init()

	fieldCfg, err := cfg.FieldConfig()
	if err != nil {
		log.Fatal(err)
	}

	session := app.NewSession(fieldCfg, cfg.Seed)
	game := app.New(session, cfg.Scale, cfg.TPS, cfg.Audio)
	w, h := game.Layout(0, 0)

	logger.Log.WithField("difficulty", fieldCfg.Difficulty).Info("Starting fogcrawl.")

	ebiten.SetWindowTitle("fogcrawl — " + string(fieldCfg.Difficulty))
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
