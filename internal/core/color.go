package core

// Color is a foreground color for a screen cell.
// The platform maps it to a terminal style; games only pick a slot.
type Color uint8

// Palette slots used by the runner renderer.
const (
	ColorDefault Color = iota
	ColorSky
	ColorGround
	ColorPlayer
	ColorPlayerPowered
	ColorBed
	ColorGiant
	ColorMiniboss
	ColorMushroom
	ColorTree
	ColorBranch
	ColorFog
	ColorHUD
	ColorWarning
	ColorBanner
)
