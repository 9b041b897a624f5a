// Package report renders findings and class structures.
// Renderers keep the input order and never merge or drop entries.
package report

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/legacyscan/legacyscan/pkg/finding"
	"github.com/legacyscan/legacyscan/pkg/rule"
	"github.com/legacyscan/legacyscan/pkg/structure"
)

const (
	riskHeader = "# Modernization Risk Report\n\n"
	noIssues   = "✅ No legacy issues found.\n"
)

func severityIcon(s rule.Severity) string {
	if s == rule.SeverityRisk {
		return "🔴"
	}
	return "🟡"
}

// FindingLine formats a finding without the leading bullet.
func FindingLine(f finding.Finding) string {
	loc := "File: " + f.File
	if f.HasLine() {
		loc += fmt.Sprintf(", Line: %d", f.Line)
	}
	return fmt.Sprintf("%s Found %s: %s (%s)", severityIcon(f.Severity), f.Pattern, f.Message, loc)
}

func RenderFindings(findings []finding.Finding) []byte {
	buf := &bytes.Buffer{}
	buf.WriteString(riskHeader)
	if len(findings) == 0 {
		buf.WriteString(noIssues)
		return buf.Bytes()
	}
	for _, f := range findings {
		buf.WriteString("- " + FindingLine(f) + "\n")
	}
	return buf.Bytes()
}

func formatMethod(m structure.MethodInfo) string {
	params := make([]string, len(m.Parameters))
	for i, p := range m.Parameters {
		params[i] = p.Type + " " + p.Name
	}
	return m.Name + "(" + strings.Join(params, ", ") + ")"
}

func RenderStructure(classes []structure.ClassStructure) []byte {
	buf := &bytes.Buffer{}
	for _, c := range classes {
		fmt.Fprintf(buf, "## Class: %s\n\n", c.Name)
		if len(c.Fields) > 0 {
			buf.WriteString("### Fields:\n")
			for _, f := range c.Fields {
				fmt.Fprintf(buf, "- %s %s\n", f.Type, f.Name)
			}
			buf.WriteString("\n")
		}
		if len(c.Methods) > 0 {
			buf.WriteString("### Methods:\n")
			for _, m := range c.Methods {
				buf.WriteString("- " + formatMethod(m) + "\n")
			}
			buf.WriteString("\n")
		}
	}
	return buf.Bytes()
}

// RenderResult renders a successful result as a structure document and a
// failed one as its message.
func RenderResult(r *structure.Result) []byte {
	if r.Failed() {
		return []byte(r.Message + "\n")
	}
	return RenderStructure(r.Classes)
}
