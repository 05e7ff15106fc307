package output

import (
	"fmt"
	"io"

	"github.com/arthur-debert/unitconv/pkg/config"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Renderer styles text for a single writer
type Renderer struct {
	w       io.Writer
	styles  map[string]lipgloss.Style
	noColor bool
}

// NewRenderer creates a renderer for w using the embedded style sheet.
// ColorAuto styles only when w is a terminal that supports color and
// NO_COLOR is unset.
func NewRenderer(w io.Writer, mode config.ColorMode) *Renderer {
	return NewRendererWithStyles(w, mode, DefaultStyleSheet())
}

// NewRendererWithStyles is NewRenderer with an explicit style sheet
func NewRendererWithStyles(w io.Writer, mode config.ColorMode, sheet *StyleSheet) *Renderer {
	lg := lipgloss.NewRenderer(w)
	noColor := false

	switch mode {
	case config.ColorNever:
		noColor = true
	case config.ColorAlways:
		lg.SetColorProfile(termenv.ANSI256)
	default:
		if termenv.EnvNoColor() || lg.ColorProfile() == termenv.Ascii {
			noColor = true
		}
	}
	if noColor {
		lg.SetColorProfile(termenv.Ascii)
	}

	return &Renderer{
		w:       w,
		styles:  sheet.build(lg),
		noColor: noColor,
	}
}

// NoColor reports whether styling is disabled
func (r *Renderer) NoColor() bool {
	return r.noColor
}

// Writer returns the underlying writer
func (r *Renderer) Writer() io.Writer {
	return r.w
}

// Render applies the named style to text. Unknown styles and disabled color
// return text unchanged.
func (r *Renderer) Render(style, text string) string {
	if r.noColor {
		return text
	}
	s, ok := r.styles[style]
	if !ok {
		return text
	}
	return s.Render(text)
}

// Println writes a styled line
func (r *Renderer) Println(style, text string) {
	_, _ = fmt.Fprintln(r.w, r.Render(style, text))
}

// Printf writes styled formatted text without a trailing newline
func (r *Renderer) Printf(style, format string, args ...interface{}) {
	_, _ = fmt.Fprint(r.w, r.Render(style, fmt.Sprintf(format, args...)))
}
