package term

import (
	"fmt"

	"fogcrawl/internal/core"

	"github.com/gdamore/tcell/v2"
)

// Surface is the part of tcell.Screen the minimap draws on.
type Surface interface {
	Size() (int, int)
	SetContent(x, y int, mainc rune, combc []rune, style tcell.Style)
}

// Source is the fog field as seen by the minimap.
type Source interface {
	ExplorationView() core.View
	CorruptionView() core.View
	ExplorationPercent() float64
	TickCount() int
}

// Status is the line printed under the map.
type Status struct {
	Health    float64
	Corrupted float64
}

const (
	glyphFog       = '░'
	glyphCorrupt   = '▓'
	glyphRevealed  = ' '
	glyphObserver  = '@'
	fogThreshold   = 128
	corruptVisible = 40
)

var (
	styleBase     = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
	styleFog      = styleBase.Foreground(tcell.NewRGBColor(70, 70, 80))
	styleRevealed = styleBase.Background(tcell.NewRGBColor(30, 45, 30))
	styleObserver = styleRevealed.Foreground(tcell.ColorYellow).Bold(true)
	styleStatus   = styleBase.Foreground(tcell.NewRGBColor(200, 200, 210))
)

// Minimap downsamples the fog and corruption grids to terminal cells. Each
// terminal cell shows the worst corruption and the densest fog of the grid
// block it covers.
type Minimap struct {
	src  Source
	fog  []uint8
	corr []uint8
}

// NewMinimap returns a minimap reading from src.
func NewMinimap(src Source) *Minimap {
	return &Minimap{src: src}
}

// Draw renders the map into all but the last row of s and a status line into
// the last row. ox, oz is the observer's grid cell.
func (m *Minimap) Draw(s Surface, ox, oz int, status Status) {
	cols, rows := s.Size()
	if cols <= 0 || rows <= 1 {
		return
	}
	mapRows := rows - 1

	fogView := m.src.ExplorationView()
	size := fogView.Size()
	m.fog = fogView.CopyInto(m.fog)
	m.corr = m.src.CorruptionView().CopyInto(m.corr)

	observerCol, observerRow := -1, -1
	if ox >= 0 && oz >= 0 && ox < size.W && oz < size.H {
		observerCol = ox * cols / size.W
		observerRow = oz * mapRows / size.H
	}

	for row := 0; row < mapRows; row++ {
		z0, z1 := span(row, mapRows, size.H)
		for col := 0; col < cols; col++ {
			x0, x1 := span(col, cols, size.W)
			fog, corr := m.sample(size.W, x0, x1, z0, z1)
			r, st := cellGlyph(fog, corr)
			if col == observerCol && row == observerRow {
				r, st = glyphObserver, styleObserver
			}
			s.SetContent(col, row, r, nil, st)
		}
	}

	line := fmt.Sprintf(" explored %5.2f%%  corrupted %5.2f%%  ticks %d  hp %3.0f",
		m.src.ExplorationPercent(), status.Corrupted*100, m.src.TickCount(), status.Health)
	drawText(s, 0, rows-1, cols, line, styleStatus)
}

// span maps terminal index i of n onto the half-open grid range it covers.
func span(i, n, size int) (int, int) {
	lo := i * size / n
	hi := (i + 1) * size / n
	if hi <= lo {
		hi = lo + 1
	}
	if hi > size {
		hi = size
	}
	return lo, hi
}

func (m *Minimap) sample(w, x0, x1, z0, z1 int) (uint8, uint8) {
	var fog, corr uint8
	for z := z0; z < z1; z++ {
		row := z * w
		for x := x0; x < x1; x++ {
			if v := m.fog[row+x]; v > fog {
				fog = v
			}
			if v := m.corr[row+x]; v > corr {
				corr = v
			}
		}
	}
	return fog, corr
}

func cellGlyph(fog, corr uint8) (rune, tcell.Style) {
	if corr >= corruptVisible {
		red := int32(80 + int(corr)*175/255)
		return glyphCorrupt, styleBase.Foreground(tcell.NewRGBColor(red, 30, int32(120+int(corr)/4)))
	}
	if fog >= fogThreshold {
		return glyphFog, styleFog
	}
	return glyphRevealed, styleRevealed
}

func drawText(s Surface, x, y, maxWidth int, text string, style tcell.Style) {
	col := x
	for _, r := range text {
		if col >= maxWidth {
			return
		}
		s.SetContent(col, y, r, nil, style)
		col++
	}
	for ; col < maxWidth; col++ {
		s.SetContent(col, y, ' ', nil, style)
	}
}
