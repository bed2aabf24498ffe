package config

import (
	"fmt"
	"sort"

	"cuelang.org/go/cue"

	"github.com/flarebyte/describe-object/internal/render"
)

// parseOutputSection extracts optional output.* fields.
func parseOutputSection(v cue.Value) (Output, error) {
	var o Output
	ov := v.LookupPath(cue.ParsePath("output"))
	if !ov.Exists() {
		return o, nil
	}
	s, ok, err := optionalString(ov, "format")
	if err != nil || !ok {
		return o, err
	}
	f, err := render.ParseFormat(s)
	if err != nil {
		return o, err
	}
	o.Format = f
	o.HasFormat = true
	return o, nil
}

// parseAliasesSection extracts optional aliases: [string]: string.
func parseAliasesSection(v cue.Value) (map[string]string, error) {
	av := v.LookupPath(cue.ParsePath("aliases"))
	if !av.Exists() {
		return nil, nil
	}
	if av.Kind() != cue.StructKind {
		return nil, fmt.Errorf("invalid type for field: aliases (expected struct)")
	}
	var m map[string]string
	if err := av.Decode(&m); err != nil {
		return nil, fmt.Errorf("invalid value for aliases: %v", err)
	}
	return m, nil
}

type shapeFields struct {
	Description string   `json:"description"`
	Params      []string `json:"params"`
	Quantities  []string `json:"quantities"`
	Script      string   `json:"script"`
	TimeoutMs   int      `json:"timeoutMs"`
}

// parseShapesSection extracts optional shapes.<name> definitions, sorted by name.
func parseShapesSection(v cue.Value) ([]ShapeDef, error) {
	sv := v.LookupPath(cue.ParsePath("shapes"))
	if !sv.Exists() {
		return nil, nil
	}
	if sv.Kind() != cue.StructKind {
		return nil, fmt.Errorf("invalid type for field: shapes (expected struct)")
	}
	var raw map[string]shapeFields
	if err := sv.Decode(&raw); err != nil {
		return nil, fmt.Errorf("invalid value for shapes: %v", err)
	}
	names := make([]string, 0, len(raw))
	for name := range raw {
		names = append(names, name)
	}
	sort.Strings(names)
	defs := make([]ShapeDef, 0, len(names))
	for _, name := range names {
		f := raw[name]
		if f.TimeoutMs < 0 {
			return nil, fmt.Errorf("invalid value for shapes.%s.timeoutMs: %d", name, f.TimeoutMs)
		}
		defs = append(defs, ShapeDef{
			Name:        name,
			Description: f.Description,
			Params:      f.Params,
			Quantities:  f.Quantities,
			Script:      f.Script,
			TimeoutMs:   f.TimeoutMs,
		})
	}
	return defs, nil
}
