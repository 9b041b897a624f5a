package report

import (
	"bytes"
	"fmt"

	"github.com/legacyscan/legacyscan/pkg/finding"
	"github.com/legacyscan/legacyscan/pkg/rule"
	"github.com/owenrumney/go-sarif/v2/sarif"
)

const (
	toolName       = "legacyscan"
	informationURI = "https://github.com/legacyscan/legacyscan"
)

func sarifLevel(s rule.Severity) string {
	if s == rule.SeverityRisk {
		return "error"
	}
	return "warning"
}

// RenderSARIF renders findings as a SARIF 2.1.0 log.
// Every rule of the table is declared even if it has no result.
func RenderSARIF(findings []finding.Finding, rules []rule.Rule) ([]byte, error) {
	log, err := sarif.New(sarif.Version210)
	if err != nil {
		return nil, fmt.Errorf("create a SARIF report: %w", err)
	}
	run := sarif.NewRunWithInformationURI(toolName, informationURI)
	for _, r := range rules {
		run.AddRule(r.ID).
			WithDescription(r.Message).
			WithDefaultConfiguration(sarif.NewReportingConfiguration().WithLevel(sarifLevel(r.Severity)))
	}
	for _, f := range findings {
		loc := sarif.NewPhysicalLocation().
			WithArtifactLocation(sarif.NewArtifactLocation().WithUri(f.File))
		if f.HasLine() {
			loc = loc.WithRegion(sarif.NewRegion().WithStartLine(f.Line))
		}
		result := sarif.NewRuleResult(f.RuleID).
			WithMessage(sarif.NewTextMessage(f.Message)).
			WithLevel(sarifLevel(f.Severity)).
			WithLocations([]*sarif.Location{sarif.NewLocation().WithPhysicalLocation(loc)})
		run.AddResult(result)
	}
	log.AddRun(run)
	buf := &bytes.Buffer{}
	if err := log.PrettyWrite(buf); err != nil {
		return nil, fmt.Errorf("encode a SARIF report: %w", err)
	}
	return buf.Bytes(), nil
}
