package finding

import "github.com/legacyscan/legacyscan/pkg/rule"

// Finding represents a single legacy construct found by the scanner.
// Line is 1-based; zero means the finding refers to the whole file.
type Finding struct {
	RuleID   string
	Pattern  string
	Message  string
	Severity rule.Severity
	File     string
	Line     int
}

func New(r rule.Rule, file string, line int) Finding {
	return Finding{
		RuleID:   r.ID,
		Pattern:  r.Pattern,
		Message:  r.Message,
		Severity: r.Severity,
		File:     file,
		Line:     line,
	}
}

func (f Finding) HasLine() bool {
	return f.Line > 0
}
