package core

// Color is a semantic palette slot for a screen cell.
// Platforms map slots to concrete colors per theme, so games never
// hardcode terminal codes or RGB values.
type Color uint8

// Palette slots used by the runner.
const (
	ColorDefault  Color = iota
	ColorPlayer         // Golden fly body
	ColorPlayerEye      // Eyes drawn on the body
	ColorGround         // Ground band
	ColorObstacle       // Obstacles
	ColorHUD            // Score readouts
	ColorBanner         // Milestone banner and overlays
	ColorMuted          // Hints and secondary text
)
