package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/mattn/go-isatty"

	"github.com/abhisek/gitdojo/internal/ui/theme"
)

// printer writes user-facing output. Styles are only applied when w is a
// terminal.
type printer struct {
	w      io.Writer
	styled bool
}

func newPrinter(w io.Writer) *printer {
	p := &printer{w: w}
	if f, ok := w.(*os.File); ok {
		p.styled = isatty.IsTerminal(f.Fd())
	}
	return p
}

func (p *printer) render(style lipgloss.Style, s string) string {
	if !p.styled {
		return s
	}
	return style.Render(s)
}

func (p *printer) line(style lipgloss.Style, format string, args ...any) {
	fmt.Fprintln(p.w, p.render(style, fmt.Sprintf(format, args...)))
}

func (p *printer) title(format string, args ...any)   { p.line(theme.Title, format, args...) }
func (p *printer) success(format string, args ...any) { p.line(theme.Correct, format, args...) }
func (p *printer) failure(format string, args ...any) { p.line(theme.Incorrect, format, args...) }
func (p *printer) hint(format string, args ...any)    { p.line(theme.Hint, format, args...) }
func (p *printer) dim(format string, args ...any)     { p.line(theme.Dim, format, args...) }

func (p *printer) body(s string) {
	for _, l := range strings.Split(strings.TrimRight(s, "\n"), "\n") {
		fmt.Fprintln(p.w, p.render(theme.Body, l))
	}
}

// card prints s framed when styled, as plain body text otherwise.
func (p *printer) card(s string) {
	if !p.styled {
		p.body(s)
		return
	}
	fmt.Fprintln(p.w, theme.Card.Render(theme.Body.Render(strings.TrimRight(s, "\n"))))
}

func (p *printer) field(label, value string) {
	fmt.Fprintf(p.w, "%s %s\n", p.render(theme.Label, label+":"), value)
}

func (p *printer) blank() {
	fmt.Fprintln(p.w)
}

func (p *printer) raw(s string) {
	fmt.Fprintln(p.w, s)
}
