package report_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/legacyscan/legacyscan/pkg/finding"
	"github.com/legacyscan/legacyscan/pkg/report"
	"github.com/legacyscan/legacyscan/pkg/rule"
	"github.com/legacyscan/legacyscan/pkg/structure"
)

func TestRenderFindings(t *testing.T) {
	t.Parallel()
	rules := rule.Defaults()
	data := []struct {
		name     string
		findings []finding.Finding
		exp      string
	}{
		{
			name: "no findings",
			exp:  "# Modernization Risk Report\n\n✅ No legacy issues found.\n",
		},
		{
			name: "findings keep their order and duplicates",
			findings: []finding.Finding{
				finding.New(rules[0], "src/Foo.java", 10),
				finding.New(rules[1], "src/Foo.java", 3),
				finding.New(rules[1], "src/Foo.java", 3),
				finding.New(rules[4], "conf/legacy-ds.xml", 0),
			},
			exp: "# Modernization Risk Report\n\n" +
				"- 🔴 Found @Stateless: Suggest replacing EJB stateless bean with a managed service component (File: src/Foo.java, Line: 10)\n" +
				"- 🟡 Found @Entity: Ensure modern ORM/data-access practice is used (File: src/Foo.java, Line: 3)\n" +
				"- 🟡 Found @Entity: Ensure modern ORM/data-access practice is used (File: src/Foo.java, Line: 3)\n" +
				"- 🔴 Found -ds.xml: Deprecated datasource descriptor; prefer externalized config files (File: conf/legacy-ds.xml)\n",
		},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			t.Parallel()
			if diff := cmp.Diff(d.exp, string(report.RenderFindings(d.findings))); diff != "" {
				t.Fatal(diff)
			}
		})
	}
}

func TestRenderStructure(t *testing.T) {
	t.Parallel()
	data := []struct {
		name    string
		classes []structure.ClassStructure
		exp     string
	}{
		{
			name: "no classes",
			exp:  "",
		},
		{
			name: "fields and methods",
			classes: []structure.ClassStructure{
				{
					Name: "A",
					Fields: []structure.FieldInfo{
						{Type: "int", Name: "x"},
						{Type: "int", Name: "y"},
					},
					Methods: []structure.MethodInfo{
						{Name: "m", Parameters: []structure.Parameter{{Type: "String", Name: "s"}}},
						{Name: "put", Parameters: []structure.Parameter{
							{Type: "String", Name: "key"},
							{Type: "Object", Name: "value"},
						}},
						{Name: "run"},
					},
				},
			},
			exp: "## Class: A\n\n" +
				"### Fields:\n- int x\n- int y\n\n" +
				"### Methods:\n- m(String s)\n- put(String key, Object value)\n- run()\n\n",
		},
		{
			name: "empty sub-lists are omitted",
			classes: []structure.ClassStructure{
				{Name: "Empty"},
				{Name: "OnlyMethods", Methods: []structure.MethodInfo{{Name: "go"}}},
			},
			exp: "## Class: Empty\n\n" +
				"## Class: OnlyMethods\n\n### Methods:\n- go()\n\n",
		},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			t.Parallel()
			if diff := cmp.Diff(d.exp, string(report.RenderStructure(d.classes))); diff != "" {
				t.Fatal(diff)
			}
		})
	}
}

func TestRenderResult_failure(t *testing.T) {
	t.Parallel()
	r := structure.Failure("Broken.java", "Failed to parse Broken.java: syntax error at line 1, column 9")
	exp := "Failed to parse Broken.java: syntax error at line 1, column 9\n"
	if got := string(report.RenderResult(r)); got != exp {
		t.Fatalf("wanted %q, got %q", exp, got)
	}
}
