// Package output provides terminal output formatting for the CLI: colored
// status lines and story tables.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// ColorMode represents color output mode.
type ColorMode int

const (
	// ColorAuto enables colors based on environment (default).
	ColorAuto ColorMode = iota
	// ColorAlways forces colors on.
	ColorAlways
	// ColorNever forces colors off.
	ColorNever
)

// ParseColorMode parses a string into a ColorMode.
func ParseColorMode(s string) (ColorMode, error) {
	switch s {
	case "auto", "":
		return ColorAuto, nil
	case "always":
		return ColorAlways, nil
	case "never":
		return ColorNever, nil
	default:
		return ColorAuto, fmt.Errorf("invalid color mode %q: must be auto, always, or never", s)
	}
}

// ResolveColors determines whether to use colors based on mode and environment.
func ResolveColors(mode ColorMode) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		if _, ok := os.LookupEnv("NO_COLOR"); ok {
			return false
		}
		if os.Getenv("TERM") == "dumb" {
			return false
		}
		return true
	}
}

// Printer writes formatted status lines to the terminal.
type Printer struct {
	out       io.Writer
	err       io.Writer
	useColors bool
}

// NewPrinter builds a Printer writing to out/err with the given color setting.
func NewPrinter(out, err io.Writer, useColors bool) *Printer {
	return &Printer{out: out, err: err, useColors: useColors}
}

// Out returns the printer's standard output writer.
func (p *Printer) Out() io.Writer {
	return p.out
}

func (p *Printer) paint(c *color.Color, s string) string {
	if !p.useColors {
		return s
	}
	return c.Sprint(s)
}

// Printf writes a plain formatted line.
func (p *Printer) Printf(format string, args ...any) {
	fmt.Fprintf(p.out, format+"\n", args...)
}

// Successf writes a green success line.
func (p *Printer) Successf(format string, args ...any) {
	fmt.Fprintln(p.out, p.paint(color.New(color.FgGreen), fmt.Sprintf(format, args...)))
}

// Warnf writes a yellow warning line.
func (p *Printer) Warnf(format string, args ...any) {
	fmt.Fprintln(p.out, p.paint(color.New(color.FgYellow), fmt.Sprintf(format, args...)))
}

// Errorf writes a red error line to the error stream.
func (p *Printer) Errorf(format string, args ...any) {
	fmt.Fprintln(p.err, p.paint(color.New(color.FgRed), fmt.Sprintf(format, args...)))
}
