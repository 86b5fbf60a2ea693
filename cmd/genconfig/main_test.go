package main

import (
	"strings"
	"testing"

	"github.com/BurntSushi/toml"
	"tools.zach/dev/colorsets/internal/config"
)

// ///////////////////////////////////////////////
// render Tests
// ///////////////////////////////////////////////

func TestRenderDefault(t *testing.T) {
	got, err := render(config.ExampleConfig(), config.ConfigDocs)
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	for _, want := range []string{
		"# colorgen Configuration",
		"# ///// Output /////",
		"[output]",
		`base_path = "Assets/Colors.xcassets"`,
		`# dark_mode = "mirror"`,
		"# ///// Log /////",
		`# file = ".colorgen-cache/colorgen.log"`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("rendered config missing %q", want)
		}
	}
	if !strings.HasSuffix(got, "\n") || strings.HasSuffix(got, "\n\n") {
		t.Error("rendered config should end with exactly one newline")
	}
}

func TestRenderParsesBack(t *testing.T) {
	got, err := render(config.ExampleConfig(), config.ConfigDocs)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	cfg := config.DefaultConfig()
	if _, err := toml.Decode(got, cfg); err != nil {
		t.Fatalf("rendered config does not parse: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("rendered config does not validate: %v", err)
	}
}

// ///////////////////////////////////////////////
// parseSectionPath Tests
// ///////////////////////////////////////////////

func TestParseSectionPath(t *testing.T) {
	tests := []struct {
		name    string
		section string
		want    []string
	}{
		{"single segment", "output", []string{"output"}},
		{"two segments", "palette.remote", []string{"palette", "remote"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseSectionPath(tt.section)
			if strings.Join(got, "|") != strings.Join(tt.want, "|") {
				t.Errorf("parseSectionPath(%q) = %v, want %v", tt.section, got, tt.want)
			}
		})
	}
}

// ///////////////////////////////////////////////
// sectionName Tests
// ///////////////////////////////////////////////

func TestSectionName(t *testing.T) {
	tests := []struct {
		section string
		want    string
	}{
		{"output", "Output"},
		{"palette.remote", "Remote"},
		{"Log", "Log"},
		{"a", "A"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := sectionName(tt.section); got != tt.want {
			t.Errorf("sectionName(%q) = %q, want %q", tt.section, got, tt.want)
		}
	}
}

// ///////////////////////////////////////////////
// injectOmitted Tests
// ///////////////////////////////////////////////

func TestInjectOmittedNoSection(t *testing.T) {
	var out []string
	injectOmitted(&out, nil, map[string]bool{}, config.ConfigDocs)
	if len(out) != 0 {
		t.Errorf("injectOmitted with nil section produced %d lines, want 0", len(out))
	}
}

func TestInjectOmittedSorted(t *testing.T) {
	docs := map[string]config.FieldDoc{
		"log.zeta":  {Comment: "z"},
		"log.alpha": {Comment: "a"},
		"log.level": {Comment: "emitted"},
		"other.key": {Comment: "elsewhere"},
	}
	var out []string
	injectOmitted(&out, []string{"log"}, map[string]bool{"log.level": true}, docs)

	got := strings.Join(out, "\n")
	want := "\n# a\n\n# z"
	if got != want {
		t.Errorf("injectOmitted output = %q, want %q", got, want)
	}
}
