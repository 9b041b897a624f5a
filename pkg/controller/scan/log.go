package scan

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/legacyscan/legacyscan/pkg/finding"
	"github.com/legacyscan/legacyscan/pkg/rule"
)

type colorFunc func(a ...any) string

type Logger struct {
	stderr io.Writer
	red    colorFunc
	yellow colorFunc
}

func NewLogger(stderr io.Writer) *Logger {
	return &Logger{
		red:    color.New(color.FgRed).SprintFunc(),
		yellow: color.New(color.FgYellow).SprintFunc(),
		stderr: stderr,
	}
}

// Output prints a finding as "LEVEL message" followed by its location.
func (l *Logger) Output(f finding.Finding) {
	if l.stderr == nil {
		return
	}
	level := l.yellow("WARNING")
	if f.Severity == rule.SeverityRisk {
		level = l.red("RISK")
	}
	loc := f.File
	if f.HasLine() {
		loc = fmt.Sprintf("%s:%d", f.File, f.Line)
	}
	fmt.Fprintf(l.stderr, "%s %s %s\n%s\n", level, f.Pattern, f.Message, loc)
}
