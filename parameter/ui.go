package parameter

// Layout & Margins
const (
	// TopMargin holds the score board line
	TopMargin = 1

	// BottomMargin holds the status line
	BottomMargin = 1
)

// UI Symbols
const (
	AudioStr     = "♫ "
	PausedText   = " PAUSED "
	GameOverText = " ROUND OVER - press enter "
	MenuText     = "ANINMALS - press enter to start, q to quit"
	SplashText   = "A N I N M A L S"
)
