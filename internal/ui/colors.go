package ui

// Color accessor functions return ANSI escape codes from the currently
// active theme. Presentation code calls these instead of reading the theme
// struct directly, so a theme change takes effect everywhere at once.

// ColorGreen returns the code for positive outcomes (theme Success).
func ColorGreen() string { return GetCurrentTheme().Success }

// ColorRed returns the code for failures (theme Error).
func ColorRed() string { return GetCurrentTheme().Error }

// ColorYellow returns the code for cautionary output (theme Warning).
func ColorYellow() string { return GetCurrentTheme().Warning }

// ColorCyan returns the code for highlighted values (theme Primary).
func ColorCyan() string { return GetCurrentTheme().Primary }

// ColorMagenta returns the code for informational accents (theme Info).
func ColorMagenta() string { return GetCurrentTheme().Info }

// ColorGrey returns the code for de-emphasized output (theme Secondary).
func ColorGrey() string { return GetCurrentTheme().Secondary }

// ColorBold returns the bold escape code.
func ColorBold() string { return GetCurrentTheme().Bold }

// ColorUnderline returns the underline escape code.
func ColorUnderline() string { return GetCurrentTheme().Underline }

// ColorReset returns the reset escape code.
func ColorReset() string { return GetCurrentTheme().Reset }
