package render

import (
	"image"

	"github.com/plus3/stackfall/tetris"
)

// The renderer draws on a fixed logical screen; ebiten scales it to the
// window.
const (
	ScreenWidth  = 1920
	ScreenHeight = 1080
)

// AutoCellSize returns the cell size for a player count.
func AutoCellSize(players int) int {
	if players > 2 {
		return ScreenWidth / 80
	}
	return ScreenWidth / 40
}

// BoardLayout holds the screen positions of one board.
type BoardLayout struct {
	// Grid is the top-left corner of cell (0, 0).
	Grid image.Point
	// Preview is the top-left corner of the incoming piece box.
	Preview image.Point

	Name     image.Point
	Incoming image.Point
	Lines    image.Point
}

// GridRect returns the screen rectangle covered by the grid.
func (bl BoardLayout) GridRect(cell int) image.Rectangle {
	return image.Rect(bl.Grid.X, bl.Grid.Y,
		bl.Grid.X+tetris.GridWidth*cell, bl.Grid.Y+tetris.GridHeight*cell)
}

// Cell returns the top-left corner of grid cell (x, y).
func (bl BoardLayout) Cell(cell, x, y int) image.Point {
	return bl.Grid.Add(image.Pt(x*cell, y*cell))
}

// Layout positions every board of a session on the logical screen.
type Layout struct {
	Cell     int
	TextSize int
	Boards   []BoardLayout
}

// offsets places up to four boards around the screen centre.
func offsets(players int) []image.Point {
	switch players {
	case 1:
		return []image.Point{{0, 0}}
	case 2:
		return []image.Point{{-580, 0}, {400, 0}}
	case 3:
		return []image.Point{{-580, -255}, {400, -255}, {0, 246}}
	}
	return []image.Point{{-580, -255}, {400, -255}, {-580, 246}, {400, 246}}
}

// NewLayout computes the layout for a number of players. A cell size of 0
// picks the size from the player count.
func NewLayout(players, cell int) Layout {
	if cell <= 0 {
		cell = AutoCellSize(players)
	}
	previewRow := 4
	if players > 2 {
		previewRow = 15
	}

	l := Layout{Cell: cell, TextSize: cell / 2}
	for _, off := range offsets(players)[:players] {
		grid := image.Pt(
			ScreenWidth/2-tetris.GridWidth*cell/2-50+off.X,
			ScreenHeight/2-(tetris.GridHeight-1)*cell/2+off.Y,
		)
		preview := image.Pt(
			ScreenWidth/2+tetris.GridWidth*cell/2+off.X,
			previewRow*cell+off.Y,
		)
		l.Boards = append(l.Boards, BoardLayout{
			Grid:     grid,
			Preview:  preview,
			Name:     preview.Add(image.Pt(0, -2*cell)),
			Incoming: preview.Add(image.Pt(0, -cell)),
			Lines:    preview.Add(image.Pt(0, tetris.PieceSize*cell+20)),
		})
	}
	return l
}
