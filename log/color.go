package log

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"

	"golang.org/x/term"
)

// ColorMode controls whether output is colored.
type ColorMode string

const (
	// ColorAuto colors output written to a terminal.
	ColorAuto ColorMode = "auto"
	// ColorAlways colors all output.
	ColorAlways ColorMode = "always"
	// ColorNever disables colors.
	ColorNever ColorMode = "never"
)

var allColorModes = []ColorMode{ColorAuto, ColorAlways, ColorNever}

// ParseColorMode parses a color mode string.
func ParseColorMode(mode string) (ColorMode, error) {
	m := ColorMode(strings.ToLower(mode))
	if slices.Contains(allColorModes, m) {
		return m, nil
	}

	return "", ErrUnknownColorMode
}

// GetAllColorModeStrings returns all valid color mode strings.
func GetAllColorModeStrings() []string {
	modes := make([]string, 0, len(allColorModes))
	for _, m := range allColorModes {
		modes = append(modes, string(m))
	}

	return modes
}

// Enabled reports whether output to w should be colored.
func (m ColorMode) Enabled(w io.Writer) bool {
	switch m {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}

	f, ok := w.(*os.File)

	return ok && term.IsTerminal(int(f.Fd()))
}

// RGB is a 24-bit terminal color.
type RGB struct {
	R, G, B uint8
}

// Hex returns the color as "#rrggbb".
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Escape returns the SGR sequence selecting c as the foreground color.
func (c RGB) Escape() string {
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm", c.R, c.G, c.B)
}

// Paint wraps s in the escape for c and a reset.
func (c RGB) Paint(s string) string {
	return c.Escape() + s + resetEscape
}

// String returns the color as "r, g, b".
func (c RGB) String() string {
	return fmt.Sprintf("%d, %d, %d", c.R, c.G, c.B)
}

const resetEscape = "\x1b[0m"

// Palette assigns a color to each level.
type Palette struct {
	Debug RGB
	Info  RGB
	Warn  RGB
	Error RGB
	Fatal RGB
	// Success marks passed checks. No level maps to it.
	Success RGB
}

// DefaultPalette returns grey for debug and info, orange for warnings, red
// for errors and green for success.
func DefaultPalette() Palette {
	grey := RGB{128, 128, 128}
	red := RGB{255, 0, 0}

	return Palette{
		Debug:   grey,
		Info:    grey,
		Warn:    RGB{255, 165, 0},
		Error:   red,
		Fatal:   red,
		Success: RGB{25, 207, 73},
	}
}

// For returns the color for a record level.
func (p Palette) For(l slog.Level) RGB {
	switch {
	case l >= SlogLevelFatal:
		return p.Fatal
	case l >= slog.LevelError:
		return p.Error
	case l >= slog.LevelWarn:
		return p.Warn
	case l >= slog.LevelInfo:
		return p.Info
	}

	return p.Debug
}
