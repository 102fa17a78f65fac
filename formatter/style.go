package formatter

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/philipp01105/pinelog/core"
)

// ColorMode controls whether console levels carry ANSI colors.
type ColorMode uint8

const (
	// ColorAuto colors output when the writer is a terminal and NO_COLOR is unset
	ColorAuto ColorMode = iota
	// ColorAlways forces ANSI colors
	ColorAlways
	// ColorNever disables colors
	ColorNever
)

// String returns the flag spelling of the mode
func (m ColorMode) String() string {
	switch m {
	case ColorAuto:
		return "auto"
	case ColorAlways:
		return "always"
	case ColorNever:
		return "never"
	default:
		return "unknown"
	}
}

// ParseColorMode converts auto, always or never to a ColorMode.
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return ColorAuto, nil
	case "always":
		return ColorAlways, nil
	case "never":
		return ColorNever, nil
	default:
		return ColorAuto, fmt.Errorf("unknown color mode %q", s)
	}
}

// level colors, ANSI palette indices
var levelColors = [...]lipgloss.Color{
	core.InfoLevel:  lipgloss.Color("2"), // green
	core.WarnLevel:  lipgloss.Color("3"), // yellow
	core.ErrorLevel: lipgloss.Color("1"), // red
}

// Styles holds the pre-rendered decorated level tags for one console
// writer. Rendering happens once at construction so the hot path is a
// table lookup.
type Styles struct {
	colored   bool
	decorated [len(levelColors)]string
}

// NewStyles builds the level styles for w. With ColorAuto, colors are
// used only when w is a terminal and the NO_COLOR environment variable
// is empty.
func NewStyles(w io.Writer, mode ColorMode) *Styles {
	if w == nil {
		w = io.Discard
	}
	colored := false
	switch mode {
	case ColorAlways:
		colored = true
	case ColorAuto:
		colored = isTerminal(w) && os.Getenv("NO_COLOR") == ""
	}

	r := lipgloss.NewRenderer(w)
	if colored {
		r.SetColorProfile(termenv.ANSI)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}

	s := &Styles{colored: colored}
	for i, c := range levelColors {
		s.decorated[i] = r.NewStyle().Foreground(c).Render(core.Level(i).String())
	}
	return s
}

// Colored reports whether the decorated tags carry escape sequences.
func (s *Styles) Colored() bool {
	return s.colored
}

// Decorated returns the console rendering of l.
func (s *Styles) Decorated(l core.Level) string {
	if l.Valid() {
		return s.decorated[l]
	}
	return l.String()
}

// Plain returns the file rendering of l, free of escape sequences.
func (s *Styles) Plain(l core.Level) string {
	return l.String()
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
