package config

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/flarebyte/describe-object/internal/registry"
	"github.com/flarebyte/describe-object/internal/render"
	"github.com/flarebyte/describe-object/internal/testutil"
)

func TestLoad_Minimal(t *testing.T) {
	c, err := Load(testutil.WriteFile(t, "min.cue", `configVersion: "1"`+"\n"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.Output.HasFormat || c.HasStrict || c.HasLogLevel || len(c.Shapes) != 0 || len(c.Aliases) != 0 {
		t.Fatalf("unexpected optional values: %+v", c)
	}
}

func TestLoad_AllSections(t *testing.T) {
	content := `configVersion: "1"
output: format: "yaml"
strict: true
logLevel: "debug"
aliases: sq: "square"
shapes: {
	rhombus: {
		description: "A rhombus has a side and a height."
		params: ["side", "height"]
		quantities: ["perimeter", "area"]
		script: "perimeter = 4 * side\narea = side * height"
		timeoutMs: 50
	}
	ellipse: {
		params: ["a", "b"]
		quantities: ["area"]
		script: "area = math.pi * a * b"
	}
}
`
	c, err := Load(testutil.WriteFile(t, "all.cue", content))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.Output.Format != render.FormatYAML || !c.Output.HasFormat {
		t.Fatalf("unexpected output: %+v", c.Output)
	}
	if !c.Strict || !c.HasStrict || c.LogLevel != "debug" {
		t.Fatalf("unexpected flags: %+v", c)
	}
	if diff := cmp.Diff(map[string]string{"sq": "square"}, c.Aliases); diff != "" {
		t.Fatalf("aliases mismatch (-want +got):\n%s", diff)
	}
	want := []ShapeDef{
		{Name: "ellipse", Params: []string{"a", "b"}, Quantities: []string{"area"}, Script: "area = math.pi * a * b"},
		{
			Name:        "rhombus",
			Description: "A rhombus has a side and a height.",
			Params:      []string{"side", "height"},
			Quantities:  []string{"perimeter", "area"},
			Script:      "perimeter = 4 * side\narea = side * height",
			TimeoutMs:   50,
		},
	}
	if diff := cmp.Diff(want, c.Shapes); diff != "" {
		t.Fatalf("shapes mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_Errors(t *testing.T) {
	cases := []struct {
		name    string
		file    string
		content string
		want    string
	}{
		{"extension", "cfg.json", "{}", "unsupported config format: expected .cue"},
		{"syntax", "bad.cue", "configVersion: ", "invalid config:"},
		{"missing version", "nover.cue", "strict: true\n", "missing required field: configVersion"},
		{"version type", "vtype.cue", "configVersion: 1\n", "invalid type for field: configVersion (expected string)"},
		{"format", "fmt.cue", "configVersion: \"1\"\noutput: format: \"xml\"\n", "invalid output format: xml"},
		{"strict type", "strict.cue", "configVersion: \"1\"\nstrict: \"yes\"\n", "invalid type for field: strict (expected bool)"},
		{"aliases type", "al.cue", "configVersion: \"1\"\naliases: \"sq\"\n", "invalid type for field: aliases (expected struct)"},
		{"timeout", "to.cue", "configVersion: \"1\"\nshapes: x: {params: [\"a\"], quantities: [\"b\"], script: \"b = a\", timeoutMs: -1}\n", "invalid value for shapes.x.timeoutMs: -1"},
	}
	for _, tc := range cases {
		_, err := Load(testutil.WriteFile(t, tc.file, tc.content))
		if err == nil {
			t.Fatalf("%s: expected error", tc.name)
		}
		if !strings.Contains(err.Error(), tc.want) {
			t.Fatalf("%s: unexpected error\nwant: %s\n got: %s", tc.name, tc.want, err.Error())
		}
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("does-not-exist.cue")
	if err == nil || !strings.HasPrefix(err.Error(), "failed to read config:") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestApply_RegistersShapesAndAliases(t *testing.T) {
	c, err := Load(testutil.WriteFile(t, "hex.cue", testutil.HexagonConfig))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	r := registry.NewDefault()
	if err := c.Apply(r); err != nil {
		t.Fatalf("apply: %v", err)
	}
	want := []string{"circle", "hex", "hexagon", "rect", "rectangle", "square", "triangle"}
	if diff := cmp.Diff(want, r.Names()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
	s, ok := r.Create("hex")
	if !ok {
		t.Fatalf("hex alias missing")
	}
	res, err := s.Calculate([]float64{1})
	if err != nil {
		t.Fatalf("calculate: %v", err)
	}
	if !strings.Contains(res.String(), "Perimeter: 6.00") {
		t.Fatalf("unexpected result:\n%s", res.String())
	}
}

func TestApply_UnknownAliasTarget(t *testing.T) {
	c := Config{Aliases: map[string]string{"oval": "ellipse"}}
	err := c.Apply(registry.NewDefault())
	if err == nil || err.Error() != "alias oval: unknown shape: ellipse" {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestApply_InvalidScript(t *testing.T) {
	c := Config{Shapes: []ShapeDef{{Name: "bad", Params: []string{"a"}, Quantities: []string{"b"}, Script: "b = = a"}}}
	err := c.Apply(registry.NewDefault())
	if err == nil || !strings.Contains(err.Error(), "shape bad: invalid script") {
		t.Fatalf("unexpected error: %v", err)
	}
}
