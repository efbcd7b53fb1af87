// Package output renders CLI output in text, markdown, or JSON form.
//
// The renderer adapts to its environment: on a terminal it emits styled
// text, when piped it falls back to markdown, and JSON is available for
// machine consumption. Commands obtain a renderer from their context and
// never write to stdout directly.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// OutputMode selects how the renderer formats output.
type OutputMode string

// Supported output modes.
const (
	// ModeAuto picks text on a TTY and markdown otherwise.
	ModeAuto OutputMode = "auto"
	// ModeText is styled human-readable output.
	ModeText OutputMode = "text"
	// ModeMarkdown is plain markdown without ANSI codes.
	ModeMarkdown OutputMode = "markdown"
	// ModeJSON is machine-readable JSON.
	ModeJSON OutputMode = "json"
)

// Mode normalizes a mode string. Unknown values fall back to ModeAuto.
func Mode(s string) OutputMode {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "text":
		return ModeText
	case "markdown", "md":
		return ModeMarkdown
	case "json":
		return ModeJSON
	default:
		return ModeAuto
	}
}

// Valid reports whether s names a known output mode (including "auto").
func Valid(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto", "text", "markdown", "md", "json":
		return true
	default:
		return false
	}
}

// Renderer writes command output in the selected mode.
type Renderer struct {
	out    io.Writer
	errOut io.Writer
	mode   OutputMode
	isTTY  bool
	styles *Styles
}

// NewRenderer creates a renderer, detecting whether out is a terminal.
func NewRenderer(out, errOut io.Writer, mode OutputMode) *Renderer {
	isTTY := false
	if f, ok := out.(*os.File); ok {
		isTTY = term.IsTerminal(int(f.Fd()))
	}
	return NewRendererWithTTY(out, errOut, isTTY, mode)
}

// NewRendererWithTTY creates a renderer with an explicit TTY state.
// Tests use this to force or suppress styled output.
func NewRendererWithTTY(out, errOut io.Writer, isTTY bool, mode OutputMode) *Renderer {
	if mode == "" {
		mode = ModeAuto
	}
	r := &Renderer{
		out:    out,
		errOut: errOut,
		mode:   mode,
		isTTY:  isTTY,
	}
	r.styles = newStyles(out, r.colored())
	return r
}

// colored reports whether styled output is appropriate: text on a TTY,
// NO_COLOR unset. Markdown and JSON are always plain.
func (r *Renderer) colored() bool {
	if termenv.EnvNoColor() {
		return false
	}
	return r.isTTY && r.EffectiveMode() == ModeText
}

// DisableColor switches to the plain style palette. The root command calls
// this for --no-color without changing the effective mode.
func (r *Renderer) DisableColor() {
	r.styles = newStyles(r.out, false)
}

// EffectiveMode resolves ModeAuto against the TTY state.
func (r *Renderer) EffectiveMode() OutputMode {
	if r.mode != ModeAuto {
		return r.mode
	}
	if r.isTTY {
		return ModeText
	}
	return ModeMarkdown
}

// Styles returns the style palette for the current mode.
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// Writer returns the underlying output writer.
func (r *Renderer) Writer() io.Writer {
	return r.out
}

// ErrWriter returns the underlying error writer.
func (r *Renderer) ErrWriter() io.Writer {
	return r.errOut
}

// Println writes a line to the output writer.
func (r *Renderer) Println(a ...any) {
	_, _ = fmt.Fprintln(r.out, a...)
}

// Printf writes formatted output to the output writer.
func (r *Renderer) Printf(format string, a ...any) {
	_, _ = fmt.Fprintf(r.out, format, a...)
}

// Success writes a success line with a check mark.
func (r *Renderer) Success(msg string) {
	if r.EffectiveMode() == ModeMarkdown {
		_, _ = fmt.Fprintf(r.out, "**OK** %s\n", msg)
		return
	}
	_, _ = fmt.Fprintf(r.out, "%s %s\n", r.styles.StatusSuccess, msg)
}

// Warning writes a warning line to the error writer.
func (r *Renderer) Warning(msg string) {
	if r.EffectiveMode() == ModeMarkdown {
		_, _ = fmt.Fprintf(r.errOut, "**Warning:** %s\n", msg)
		return
	}
	_, _ = fmt.Fprintf(r.errOut, "%s %s\n", r.styles.Warning.Render("!"), msg)
}

// Error writes an error line to the error writer.
func (r *Renderer) Error(msg string) {
	if r.EffectiveMode() == ModeMarkdown {
		_, _ = fmt.Fprintf(r.errOut, "**Error:** %s\n", msg)
		return
	}
	_, _ = fmt.Fprintf(r.errOut, "%s %s\n", r.styles.StatusFailed, msg)
}

// Header writes a section header. Level 1 and 2 map to the corresponding
// markdown heading or text style.
func (r *Renderer) Header(level int, text string) {
	if r.EffectiveMode() == ModeMarkdown {
		_, _ = fmt.Fprintf(r.out, "%s %s\n", strings.Repeat("#", level), text)
		return
	}
	style := r.styles.Header1
	if level > 1 {
		style = r.styles.Header2
	}
	_, _ = fmt.Fprintln(r.out, style.Render(text))
}

// StatusLine writes one aligned status row: an icon, a name, and an
// optional detail. Status is one of "success", "failed", "warning",
// "skipped".
func (r *Renderer) StatusLine(name, status, detail string) {
	var icon string
	switch status {
	case "success":
		icon = r.styles.StatusSuccess.String()
	case "failed":
		icon = r.styles.StatusFailed.String()
	case "warning":
		icon = r.styles.Warning.Render("!")
	default:
		icon = r.styles.Muted.Render("-")
	}
	if r.EffectiveMode() == ModeMarkdown {
		switch status {
		case "success":
			icon = "[x]"
		case "failed":
			icon = "[!]"
		default:
			icon = "[ ]"
		}
	}
	if detail != "" {
		_, _ = fmt.Fprintf(r.out, "  %s %s  %s\n", icon, name, r.styles.Muted.Render(detail))
		return
	}
	_, _ = fmt.Fprintf(r.out, "  %s %s\n", icon, name)
}

// JSON encodes v to the output writer with indentation.
func (r *Renderer) JSON(v any) error {
	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
