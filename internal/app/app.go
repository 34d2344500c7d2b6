//go:build ebiten

package app

import (
	"image/color"
	"time"

	"fogcrawl/internal/audio"
	"fogcrawl/internal/render"
	"fogcrawl/internal/ui"
	"fogcrawl/pkg/logger"

	"github.com/hajimehoshi/ebiten/v2"
	ebaudio "github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const hudWidth = 220

// Game adapts a Session to the ebiten.Game interface.
type Game struct {
	session *Session

	corruption *render.GridPainter
	fog        *render.GridPainter
	overlay    *ui.Overlay
	hud        *ui.HUD

	player *ebaudio.Player

	ground   color.Color
	scale    float64
	delta    time.Duration
	paused   bool
	tickOnce bool
}

// New constructs a Game for the provided session. When withAudio is set the
// corruption hum is played through ebiten's audio context.
func New(session *Session, scale float64, tps int, withAudio bool) *Game {
	field := session.Field
	g := &Game{
		session:    session,
		corruption: render.NewGridPainter(render.NewTexture(field.CorruptionView(), render.CorruptionPalette())),
		fog:        render.NewGridPainter(render.NewTexture(field.ExplorationView(), render.FogPalette())),
		overlay:    ui.NewOverlay(field.Mapper(), field.Config().RevealRadius, scale),
		hud:        ui.NewHUD(field, hudWidth),
		ground:     color.RGBA{R: 58, G: 72, B: 52, A: 255},
		scale:      scale,
		delta:      time.Second / time.Duration(tps),
	}
	if withAudio {
		g.startHum()
	}
	return g
}

func (g *Game) startHum() {
	hum := audio.NewHum(audio.SampleRate, 55, 250*time.Millisecond)
	ctx := ebaudio.NewContext(int(audio.SampleRate))
	player, err := ctx.NewPlayer(audio.NewPCMReader(hum))
	if err != nil {
		// Non-fatal, the game runs without sound.
		logger.Log.WithError(err).Warn("Audio initialization failed.")
		return
	}
	player.Play()
	g.player = player
	g.session.AttachHum(hum)
}

// Reset restarts the round with the provided seed.
func (g *Game) Reset(seed int64) {
	g.session.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.session.Seed())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}

	g.overlay.Update()

	if !g.paused {
		g.session.Frame(g.delta)
	} else if g.tickOnce {
		g.session.Field.StepCorruption()
		g.tickOnce = false
	}
	g.hud.Update(g.session)
	return nil
}

// Draw renders ground, corruption tint, fog and the overlays.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.ground)
	g.corruption.Blit(screen, g.scale)
	if !g.overlay.FogHidden() {
		g.fog.Blit(screen, g.scale)
	}
	x, z := g.session.Walker.Position()
	g.overlay.Draw(screen, x, z)
	g.hud.Draw(screen, g.mapWidth())
}

func (g *Game) mapWidth() int {
	return int(float64(g.session.Field.Size().W) * g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.session.Field.Size()
	return g.mapWidth() + hudWidth, int(float64(s.H) * g.scale)
}
