package tint

// Named color mutators, one fg/bg pair per ANSI color. Purple is an alias
// of magenta: same code, second name, kept for compatibility with common
// usage.

// Black sets the foreground to black.
func (s Style) Black() Style { return s.Fg(Black.Color()) }

// OnBlack sets the background to black.
func (s Style) OnBlack() Style { return s.Bg(Black.Color()) }

// Red sets the foreground to red.
func (s Style) Red() Style { return s.Fg(Red.Color()) }

// OnRed sets the background to red.
func (s Style) OnRed() Style { return s.Bg(Red.Color()) }

// Green sets the foreground to green.
func (s Style) Green() Style { return s.Fg(Green.Color()) }

// OnGreen sets the background to green.
func (s Style) OnGreen() Style { return s.Bg(Green.Color()) }

// Yellow sets the foreground to yellow.
func (s Style) Yellow() Style { return s.Fg(Yellow.Color()) }

// OnYellow sets the background to yellow.
func (s Style) OnYellow() Style { return s.Bg(Yellow.Color()) }

// Blue sets the foreground to blue.
func (s Style) Blue() Style { return s.Fg(Blue.Color()) }

// OnBlue sets the background to blue.
func (s Style) OnBlue() Style { return s.Bg(Blue.Color()) }

// Magenta sets the foreground to magenta.
func (s Style) Magenta() Style { return s.Fg(Magenta.Color()) }

// OnMagenta sets the background to magenta.
func (s Style) OnMagenta() Style { return s.Bg(Magenta.Color()) }

// Purple sets the foreground to magenta.
func (s Style) Purple() Style { return s.Fg(Magenta.Color()) }

// OnPurple sets the background to magenta.
func (s Style) OnPurple() Style { return s.Bg(Magenta.Color()) }

// Cyan sets the foreground to cyan.
func (s Style) Cyan() Style { return s.Fg(Cyan.Color()) }

// OnCyan sets the background to cyan.
func (s Style) OnCyan() Style { return s.Bg(Cyan.Color()) }

// White sets the foreground to white.
func (s Style) White() Style { return s.Fg(White.Color()) }

// OnWhite sets the background to white.
func (s Style) OnWhite() Style { return s.Bg(White.Color()) }

// DefaultColor resets the foreground to the terminal default (SGR 39).
func (s Style) DefaultColor() Style { return s.Fg(Default.Color()) }

// OnDefaultColor resets the background to the terminal default (SGR 49).
func (s Style) OnDefaultColor() Style { return s.Bg(Default.Color()) }

// BrightBlack sets the foreground to bright black.
func (s Style) BrightBlack() Style { return s.Fg(BrightBlack.Color()) }

// OnBrightBlack sets the background to bright black.
func (s Style) OnBrightBlack() Style { return s.Bg(BrightBlack.Color()) }

// BrightRed sets the foreground to bright red.
func (s Style) BrightRed() Style { return s.Fg(BrightRed.Color()) }

// OnBrightRed sets the background to bright red.
func (s Style) OnBrightRed() Style { return s.Bg(BrightRed.Color()) }

// BrightGreen sets the foreground to bright green.
func (s Style) BrightGreen() Style { return s.Fg(BrightGreen.Color()) }

// OnBrightGreen sets the background to bright green.
func (s Style) OnBrightGreen() Style { return s.Bg(BrightGreen.Color()) }

// BrightYellow sets the foreground to bright yellow.
func (s Style) BrightYellow() Style { return s.Fg(BrightYellow.Color()) }

// OnBrightYellow sets the background to bright yellow.
func (s Style) OnBrightYellow() Style { return s.Bg(BrightYellow.Color()) }

// BrightBlue sets the foreground to bright blue.
func (s Style) BrightBlue() Style { return s.Fg(BrightBlue.Color()) }

// OnBrightBlue sets the background to bright blue.
func (s Style) OnBrightBlue() Style { return s.Bg(BrightBlue.Color()) }

// BrightMagenta sets the foreground to bright magenta.
func (s Style) BrightMagenta() Style { return s.Fg(BrightMagenta.Color()) }

// OnBrightMagenta sets the background to bright magenta.
func (s Style) OnBrightMagenta() Style { return s.Bg(BrightMagenta.Color()) }

// BrightPurple sets the foreground to bright magenta.
func (s Style) BrightPurple() Style { return s.Fg(BrightMagenta.Color()) }

// OnBrightPurple sets the background to bright magenta.
func (s Style) OnBrightPurple() Style { return s.Bg(BrightMagenta.Color()) }

// BrightCyan sets the foreground to bright cyan.
func (s Style) BrightCyan() Style { return s.Fg(BrightCyan.Color()) }

// OnBrightCyan sets the background to bright cyan.
func (s Style) OnBrightCyan() Style { return s.Bg(BrightCyan.Color()) }

// BrightWhite sets the foreground to bright white.
func (s Style) BrightWhite() Style { return s.Fg(BrightWhite.Color()) }

// OnBrightWhite sets the background to bright white.
func (s Style) OnBrightWhite() Style { return s.Bg(BrightWhite.Color()) }
