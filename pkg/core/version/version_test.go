package version

import (
	"regexp"
	"testing"
)

// semverRegex validates semantic versioning format
var semverRegex = regexp.MustCompile(`^\d+\.\d+\.\d+$`)

func TestVersionConstants(t *testing.T) {
	if !semverRegex.MatchString(App) {
		t.Errorf("App version %q does not match semver format (x.y.z)", App)
	}
	if DiagramFormat == "" {
		t.Error("DiagramFormat version is empty")
	}
	if HistorySchema == "" {
		t.Error("HistorySchema version is empty")
	}
}

func TestComponent(t *testing.T) {
	tests := []struct {
		name      string
		component string
		expected  string
	}{
		{"diagram", "diagram", DiagramFormat},
		{"format alias", "format", DiagramFormat},
		{"history", "history", HistorySchema},
		{"unknown component", "unknown", App},
		{"empty component", "", App},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Component(tt.component); got != tt.expected {
				t.Errorf("Component(%q) = %q, want %q", tt.component, got, tt.expected)
			}
		})
	}
}

func TestString(t *testing.T) {
	want := "muml " + App + " (commit unknown, built unknown, diagram format v" + DiagramFormat + ")"
	if got := String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
