// Package rule holds the legacy rule table.
// The table is built once and never mutated. Matching is plain substring
// containment, so a pattern inside a string literal or a comment matches too.
package rule

type Severity string

const (
	// SeverityRisk is the high-risk tier.
	SeverityRisk Severity = "risk"
	// SeverityWarning is the advisory tier.
	SeverityWarning Severity = "warning"
)

type MatchKind int

const (
	// AnnotationSubstring rules match any Java line containing the pattern.
	AnnotationSubstring MatchKind = iota
	// FilenameSuffix rules match file names ending with the pattern.
	FilenameSuffix
)

func (k MatchKind) String() string {
	switch k {
	case AnnotationSubstring:
		return "annotation_substring"
	case FilenameSuffix:
		return "filename_suffix"
	default:
		return "unknown"
	}
}

type Rule struct {
	ID       string
	Kind     MatchKind
	Pattern  string
	Message  string
	Severity Severity
}

var defaults = []Rule{ //nolint:gochecknoglobals
	{
		ID:       "ejb-stateless",
		Kind:     AnnotationSubstring,
		Pattern:  "@Stateless",
		Message:  "Suggest replacing EJB stateless bean with a managed service component",
		Severity: SeverityRisk,
	},
	{
		ID:       "jpa-entity",
		Kind:     AnnotationSubstring,
		Pattern:  "@Entity",
		Message:  "Ensure modern ORM/data-access practice is used",
		Severity: SeverityWarning,
	},
	{
		ID:       "servlet-web-xml",
		Kind:     FilenameSuffix,
		Pattern:  "web.xml",
		Message:  "Legacy servlet descriptor; prefer annotation- or framework-based config",
		Severity: SeverityRisk,
	},
	{
		ID:       "cdi-beans-xml",
		Kind:     FilenameSuffix,
		Pattern:  "beans.xml",
		Message:  "CDI descriptor may be unnecessary under modern DI frameworks",
		Severity: SeverityWarning,
	},
	{
		ID:       "datasource-ds-xml",
		Kind:     FilenameSuffix,
		Pattern:  "-ds.xml",
		Message:  "Deprecated datasource descriptor; prefer externalized config files",
		Severity: SeverityRisk,
	},
}

// Defaults returns a copy of the default rule table in declaration order.
func Defaults() []Rule {
	rules := make([]Rule, len(defaults))
	copy(rules, defaults)
	return rules
}

// Table is an ordered, read-only view over a rule set.
// It is safe for concurrent use.
type Table struct {
	annotations []Rule
	suffixes    []Rule
	all         []Rule
}

func NewTable(rules []Rule) *Table {
	t := &Table{
		all: make([]Rule, len(rules)),
	}
	copy(t.all, rules)
	for _, r := range t.all {
		switch r.Kind {
		case AnnotationSubstring:
			t.annotations = append(t.annotations, r)
		case FilenameSuffix:
			t.suffixes = append(t.suffixes, r)
		}
	}
	return t
}

// Default returns a table over Defaults().
func Default() *Table {
	return NewTable(defaults)
}

// Annotations returns the AnnotationSubstring rules in declaration order.
func (t *Table) Annotations() []Rule {
	return t.annotations
}

// Suffixes returns the FilenameSuffix rules in declaration order.
func (t *Table) Suffixes() []Rule {
	return t.suffixes
}

func (t *Table) Rules() []Rule {
	return t.all
}
