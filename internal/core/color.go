package core

import "hash/fnv"

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for scene elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorOrange
	ColorGray
)

// tagPalette is the rotation used for group tags. Red is reserved for hits.
var tagPalette = []Color{
	ColorGreen,
	ColorYellow,
	ColorBlue,
	ColorMagenta,
	ColorCyan,
	ColorOrange,
}

// ColorForTag picks a stable color for a group tag.
// The empty tag maps to ColorGray.
func ColorForTag(tag string) Color {
	if tag == "" {
		return ColorGray
	}
	h := fnv.New32a()
	h.Write([]byte(tag))
	return tagPalette[h.Sum32()%uint32(len(tagPalette))]
}
