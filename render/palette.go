package render

import "image/color"

// Palette holds the three shades a board is drawn with. Light outlines empty
// cells and fills walls, Mid fills settled cells and the preview, Dark fills
// the falling piece.
type Palette struct {
	Light color.RGBA
	Mid   color.RGBA
	Dark  color.RGBA
}

var (
	Background = color.RGBA{245, 245, 245, 255}
	TextColor  = color.RGBA{130, 130, 130, 255}
	BannerRed  = color.RGBA{230, 41, 55, 255}

	// FadeBright and FadeDim are the two tones of rows being cleared.
	FadeBright = color.RGBA{190, 33, 55, 255}
	FadeDim    = color.RGBA{130, 130, 130, 255}
)

// Palettes are the board colours in slot order for multiplayer sessions.
var Palettes = [4]Palette{
	{Light: color.RGBA{102, 191, 255, 255}, Mid: color.RGBA{0, 121, 241, 255}, Dark: color.RGBA{0, 82, 172, 255}},
	{Light: color.RGBA{200, 122, 255, 255}, Mid: color.RGBA{135, 60, 190, 255}, Dark: color.RGBA{112, 31, 126, 255}},
	{Light: color.RGBA{0, 228, 48, 255}, Mid: color.RGBA{0, 158, 47, 255}, Dark: color.RGBA{0, 117, 44, 255}},
	{Light: color.RGBA{211, 176, 131, 255}, Mid: color.RGBA{127, 106, 79, 255}, Dark: color.RGBA{76, 63, 47, 255}},
}

// PaletteFor returns the palette of a slot. A single player uses purple.
func PaletteFor(players, slot int) Palette {
	if players == 1 {
		return Palettes[1]
	}
	return Palettes[slot%len(Palettes)]
}
