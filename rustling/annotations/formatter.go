package annotations

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// OutputFormatter renders Events as human-readable trace lines, the direct
// analogue of the teacher's annotations.OutputFormatter, colorized with
// fatih/color the same way cmd/datalog's -verbose output is.
type OutputFormatter struct {
	useColor bool
	writer   io.Writer
}

// NewOutputFormatter builds a formatter writing to w (os.Stderr if nil),
// auto-detecting color support the same simplified way the teacher does
// (stdout/stderr file descriptors are assumed to be terminals; a real
// deployment would shell out to golang.org/x/term, which this pack's
// examples don't carry).
func NewOutputFormatter(w io.Writer) *OutputFormatter {
	if w == nil {
		w = os.Stderr
	}
	useColor := false
	if f, ok := w.(*os.File); ok {
		fd := f.Fd()
		useColor = fd == uintptr(1) || fd == uintptr(2)
	}
	return &OutputFormatter{useColor: useColor, writer: w}
}

// Handle implements Handler.
func (f *OutputFormatter) Handle(event Event) {
	fmt.Fprintln(f.writer, f.Format(event))
}

// Format renders one event as a single trace line.
func (f *OutputFormatter) Format(event Event) string {
	label := f.colorize(event.Name, labelColor(event.Name))
	if event.Latency > 0 {
		return fmt.Sprintf("[%s] %s (%s)", label, event.Detail, event.Latency)
	}
	return fmt.Sprintf("[%s] %s", label, event.Detail)
}

func labelColor(name string) color.Attribute {
	switch name {
	case ErrorRuleAction, ErrorConstruction:
		return color.FgRed
	case DisambigSelected, MapperAssigned:
		return color.FgGreen
	case ChartScanBegin, ChartScanDone, ChartCombinePass, ChartFixpoint:
		return color.FgYellow
	default:
		return color.FgCyan
	}
}

func (f *OutputFormatter) colorize(s string, attr color.Attribute) string {
	if !f.useColor {
		return s
	}
	return color.New(attr).Sprint(s)
}
