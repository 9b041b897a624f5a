package scan

import (
	"bytes"
	"strings"
	"testing"

	"github.com/legacyscan/legacyscan/pkg/finding"
	"github.com/legacyscan/legacyscan/pkg/rule"
)

func TestNewLogger(t *testing.T) {
	t.Parallel()
	buf := &bytes.Buffer{}
	logger := NewLogger(buf)

	if logger == nil {
		t.Fatal("NewLogger() returned nil")
	}
	if logger.stderr != buf {
		t.Error("NewLogger() stderr not set correctly")
	}
	if logger.red == nil {
		t.Error("NewLogger() red function is nil")
	}
	if logger.yellow == nil {
		t.Error("NewLogger() yellow function is nil")
	}
}

func TestLogger_Output(t *testing.T) {
	t.Parallel()
	rules := rule.Defaults()
	data := []struct {
		name           string
		finding        finding.Finding
		wantContains   []string
		wantNotContain []string
	}{
		{
			name:    "risk with line",
			finding: finding.New(rules[0], "src/Foo.java", 10),
			wantContains: []string{
				"RISK",
				"@Stateless",
				"src/Foo.java:10",
			},
			wantNotContain: []string{"WARNING"},
		},
		{
			name:    "warning without line",
			finding: finding.New(rules[3], "META-INF/beans.xml", 0),
			wantContains: []string{
				"WARNING",
				"CDI descriptor",
				"META-INF/beans.xml\n",
			},
			wantNotContain: []string{"RISK", "beans.xml:"},
		},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			t.Parallel()
			buf := &bytes.Buffer{}
			NewLogger(buf).Output(d.finding)
			output := buf.String()
			for _, want := range d.wantContains {
				if !strings.Contains(output, want) {
					t.Errorf("Output() missing expected content %q in:\n%s", want, output)
				}
			}
			for _, notWant := range d.wantNotContain {
				if strings.Contains(output, notWant) {
					t.Errorf("Output() contains unexpected content %q in:\n%s", notWant, output)
				}
			}
		})
	}
}
