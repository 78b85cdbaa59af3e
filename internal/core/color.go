package core

import "image/color"

// Color names one entry of the game palette. Hosts translate it to their own
// color model (lipgloss for terminals, color.RGBA for windows).
type Color uint8

// Palette entries used by the render routines.
const (
	ColorDefault Color = iota
	ColorBlack
	ColorWhite
	ColorYellow
	ColorPaleYellow
	ColorRed
	ColorSky      // Playing background
	ColorNight    // Title background
	ColorForest   // Stage clear background
	ColorOlive    // Game clear background
	ColorMaroon   // Game over background
	ColorEarth    // Solid ground
	ColorCactus   // Obstacles
	colorSentinel // keep last
)

var palette = [colorSentinel]color.RGBA{
	ColorDefault:    {0, 0, 0, 0},
	ColorBlack:      {0, 0, 0, 255},
	ColorWhite:      {255, 255, 255, 255},
	ColorYellow:     {255, 255, 0, 255},
	ColorPaleYellow: {255, 255, 150, 255},
	ColorRed:        {255, 0, 0, 255},
	ColorSky:        {0, 0, 100, 255},
	ColorNight:      {0, 0, 80, 255},
	ColorForest:     {0, 80, 0, 255},
	ColorOlive:      {100, 100, 0, 255},
	ColorMaroon:     {80, 0, 0, 255},
	ColorEarth:      {139, 69, 19, 255},
	ColorCactus:     {0, 200, 0, 255},
}

// RGBA returns the palette value. ColorDefault is fully transparent, meaning
// "leave whatever the host shows there".
func (c Color) RGBA() color.RGBA {
	if c >= colorSentinel {
		return palette[ColorDefault]
	}
	return palette[c]
}

// IsDefault reports whether the color defers to the host's default.
func (c Color) IsDefault() bool {
	return c == ColorDefault || c >= colorSentinel
}
