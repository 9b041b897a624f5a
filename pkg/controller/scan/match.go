package scan

import (
	"path/filepath"
	"strings"

	"github.com/legacyscan/legacyscan/pkg/finding"
	"github.com/legacyscan/legacyscan/pkg/rule"
)

// matchJava reports every (line, rule) pair where the rule pattern occurs in
// the line. Lines are 1-based.
func matchJava(rules *rule.Table, p, content string) []finding.Finding {
	var findings []finding.Finding
	for i, line := range strings.Split(content, "\n") {
		for _, r := range rules.Annotations() {
			if strings.Contains(line, r.Pattern) {
				findings = append(findings, finding.New(r, p, i+1))
			}
		}
	}
	return findings
}

// matchXML looks at the file name only.
func matchXML(rules *rule.Table, p string) []finding.Finding {
	var findings []finding.Finding
	name := filepath.Base(p)
	for _, r := range rules.Suffixes() {
		if strings.HasSuffix(name, r.Pattern) {
			findings = append(findings, finding.New(r, p, 0))
		}
	}
	return findings
}
