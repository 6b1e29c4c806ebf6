package render

import "github.com/gdamore/tcell/v2"

// RGB color definitions for the scene and HUD
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbStatusText = tcell.NewRGBColor(255, 255, 255) // White
	RgbHelpText   = tcell.NewRGBColor(130, 130, 150) // Muted gray
	RgbStatsText  = tcell.NewRGBColor(0, 255, 255)   // Cyan

	RgbStateDriftingBg  = tcell.NewRGBColor(40, 120, 60)  // Green
	RgbStateCollidingBg = tcell.NewRGBColor(170, 40, 40)  // Red
	RgbStateResetBg     = tcell.NewRGBColor(130, 90, 200) // Violet
)
