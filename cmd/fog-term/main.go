package main

import (
	"flag"
	"io"
	"log"
	"time"

	"fogcrawl/internal/app"
	"fogcrawl/internal/audio"
	"fogcrawl/internal/term"
	"fogcrawl/pkg/logger"

	"github.com/gdamore/tcell/v2"
	"github.com/gopxl/beep/speaker"
)

func main() {
	cfg := app.NewConfig()
	cfg.Resolution = 256
	cfg.TPS = 30
	cfg.Bind(flag.CommandLine)
	speed := flag.Float64("speed", 1, "simulated seconds per real second")
	flag.Parse()

	// Log lines would tear the screen; keep them out of the terminal.
	logger.InitWithOutput(io.Discard)

	fieldCfg, err := cfg.FieldConfig()
	if err != nil {
		log.Fatal(err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}
	defer screen.Fini()

	session := app.NewSession(fieldCfg, cfg.Seed)
	if cfg.Audio {
		hum := audio.NewHum(audio.SampleRate, 55, 250*time.Millisecond)
		if err := speaker.Init(audio.SampleRate, audio.SampleRate.N(time.Second/10)); err == nil {
			speaker.Play(hum)
			session.AttachHum(hum)
		}
	}

	events := make(chan tcell.Event, 8)
	quit := make(chan struct{})
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()
	defer close(quit)

	minimap := term.NewMinimap(session.Field)
	frame := time.Second / time.Duration(cfg.TPS)
	step := time.Duration(float64(frame) * *speed)
	ticker := time.NewTicker(frame)
	defer ticker.Stop()

	paused := false
	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				switch {
				case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC, ev.Rune() == 'q':
					return
				case ev.Rune() == ' ':
					paused = !paused
				case ev.Rune() == 'r':
					session.Reset(session.Seed())
				case ev.Rune() == 's':
					session.Reset(time.Now().UnixNano())
				case ev.Rune() == 'n':
					session.Field.StepCorruption()
				}
			case *tcell.EventResize:
				screen.Sync()
			}
		case <-ticker.C:
			if !paused {
				session.Frame(step)
			}
			gx, gz := session.ObserverCell()
			minimap.Draw(screen, gx, gz, term.Status{
				Health:    session.Health(),
				Corrupted: session.Field.CorruptedFraction(100),
			})
			screen.Show()
		}
	}
}
