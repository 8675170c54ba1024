// Package render draws a session with Ebiten: one grid per board, the
// incoming piece preview, the player captions and the session messages.
package render

import (
	"bytes"
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/stackfall/session"
	"github.com/plus3/stackfall/tetris"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	pausedText  = "GAME PAUSED"
	restartText = "PRESS [ENTER] TO PLAY AGAIN"

	pausedSize  = 40
	restartSize = 20
	bannerSize  = 50
)

// Caption returns the name shown above a board's preview.
func Caption(name string) string {
	if name == "" {
		return ""
	}
	return "FOR " + name
}

// LinesText formats the line counter of a board.
func LinesText(lines int) string {
	return fmt.Sprintf("LINES:   %04d", lines)
}

// Renderer draws sessions. It is not safe for concurrent use.
type Renderer struct {
	layout   Layout
	palettes []Palette

	source *text.GoTextFaceSource
	faces  map[int]*text.GoTextFace
}

// New creates a renderer for a number of players. A cell size of 0 picks the
// size from the player count.
func New(players, cell int) (*Renderer, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("loading font: %w", err)
	}

	r := &Renderer{
		layout: NewLayout(players, cell),
		source: source,
		faces:  make(map[int]*text.GoTextFace),
	}
	for slot := range players {
		r.palettes = append(r.palettes, PaletteFor(players, slot))
	}
	return r, nil
}

// Layout returns the layout the renderer draws with.
func (r *Renderer) Layout() Layout {
	return r.layout
}

func (r *Renderer) face(size int) *text.GoTextFace {
	f, ok := r.faces[size]
	if !ok {
		f = &text.GoTextFace{Source: r.source, Size: float64(size)}
		r.faces[size] = f
	}
	return f
}

// Draw renders every board of the session onto dst. Boards that are over
// are replaced by the restart prompt.
func (r *Renderer) Draw(dst *ebiten.Image, s *session.Session) {
	dst.Fill(Background)

	var live, over bool
	for slot, b := range s.Boards() {
		if slot >= len(r.layout.Boards) {
			break
		}
		if b.GameOver {
			over = true
			continue
		}
		live = true
		r.drawBoard(dst, b, r.layout.Boards[slot], r.palettes[slot])
	}

	if over {
		r.drawCentered(dst, restartText, restartSize, ScreenHeight/2-50, TextColor, 1)
	}
	if live && s.Paused() {
		r.drawCentered(dst, pausedText, pausedSize, ScreenHeight/2-40, TextColor, 1)
	}
}

func (r *Renderer) drawBoard(dst *ebiten.Image, b *tetris.Board, bl BoardLayout, p Palette) {
	cell := r.layout.Cell
	fade := FadeDim
	if b.Tone == tetris.ToneBright {
		fade = FadeBright
	}

	for y := range tetris.GridHeight {
		for x := range tetris.GridWidth {
			at := bl.Cell(cell, x, y)
			switch b.Grid.At(x, y) {
			case tetris.Empty:
				strokeCell(dst, at, cell, p.Light)
			case tetris.Full:
				fillCell(dst, at, cell, p.Mid)
			case tetris.Moving:
				fillCell(dst, at, cell, p.Dark)
			case tetris.Block:
				fillCell(dst, at, cell, p.Light)
			case tetris.Fading:
				fillCell(dst, at, cell, fade)
			}
		}
	}

	for y := range tetris.PieceSize {
		for x := range tetris.PieceSize {
			at := bl.Preview.Add(image.Pt(x*cell, y*cell))
			if b.Incoming[y][x] {
				fillCell(dst, at, cell, p.Mid)
			} else {
				strokeCell(dst, at, cell, p.Light)
			}
		}
	}

	r.drawText(dst, Caption(b.Name), r.layout.TextSize, bl.Name, TextColor, 1)
	r.drawText(dst, "INCOMING:", r.layout.TextSize, bl.Incoming, TextColor, 1)
	r.drawText(dst, LinesText(b.Lines), r.layout.TextSize, bl.Lines, TextColor, 1)
}

// DrawBanner renders the results banner over whatever is on dst.
func (r *Renderer) DrawBanner(dst *ebiten.Image, b *Banner) {
	r.drawCentered(dst, b.Text, bannerSize, ScreenHeight/3-50, BannerRed, b.Alpha())
}

func (r *Renderer) drawText(dst *ebiten.Image, s string, size int, at image.Point, clr color.Color, alpha float32) {
	if s == "" {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(at.X), float64(at.Y))
	op.ColorScale.ScaleWithColor(clr)
	op.ColorScale.ScaleAlpha(alpha)
	text.Draw(dst, s, r.face(size), op)
}

func (r *Renderer) drawCentered(dst *ebiten.Image, s string, size, y int, clr color.Color, alpha float32) {
	w, _ := text.Measure(s, r.face(size), 0)
	r.drawText(dst, s, size, image.Pt(ScreenWidth/2-int(w)/2, y), clr, alpha)
}

func fillCell(dst *ebiten.Image, at image.Point, cell int, clr color.Color) {
	vector.DrawFilledRect(dst, float32(at.X), float32(at.Y), float32(cell), float32(cell), clr, false)
}

func strokeCell(dst *ebiten.Image, at image.Point, cell int, clr color.Color) {
	vector.StrokeRect(dst, float32(at.X), float32(at.Y), float32(cell), float32(cell), 1, clr, false)
}
