package shape

import (
	"strings"
	"testing"
	"time"
)

func hexagonDef() ScriptDef {
	return ScriptDef{
		Name:       "hexagon",
		Params:     []string{"side"},
		Quantities: []string{"perimeter", "area"},
		Script:     "perimeter = 6 * side\narea = 3 * math.sqrt(3) / 2 * side * side\n",
	}
}

func TestScripted_Calculate(t *testing.T) {
	s, err := NewScripted(hexagonDef())
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if s.RequiredParams() != 1 {
		t.Fatalf("unexpected required params: %d", s.RequiredParams())
	}
	res := calculate(t, s, 2)
	want := "Hexagon with side 2.00:\n  Perimeter: 12.00\n  Area: 10.39"
	if res.String() != want {
		t.Fatalf("unexpected text\nwant:\n%s\ngot:\n%s", want, res.String())
	}
}

func TestScripted_DefaultDescriptionMentionsParams(t *testing.T) {
	s, err := NewScripted(hexagonDef())
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	assertContains(t, s.Description(), "side", Program+" hexagon <side>", "perimeter, area")
}

func TestScripted_FactoryReturnsIndependentCopies(t *testing.T) {
	s, err := NewScripted(hexagonDef())
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	f := s.Factory()
	a, b := f(), f()
	if a == b {
		t.Fatalf("factory returned the same instance twice")
	}
	if a.RequiredParams() != b.RequiredParams() {
		t.Fatalf("copies disagree on required params")
	}
}

func TestNewScripted_RejectsInvalidDefinitions(t *testing.T) {
	cases := map[string]func(d *ScriptDef){
		"invalid shape name":    func(d *ScriptDef) { d.Name = "my shape" },
		"at least one param":    func(d *ScriptDef) { d.Params = nil },
		"at least one quantity": func(d *ScriptDef) { d.Quantities = nil },
		"duplicate parameter":   func(d *ScriptDef) { d.Params = []string{"side", "side"} },
		"invalid quantity":      func(d *ScriptDef) { d.Quantities = []string{"area-1"} },
		"script is empty":       func(d *ScriptDef) { d.Script = "  " },
		"invalid script":        func(d *ScriptDef) { d.Script = "area = = 1" },
		`reserved name: "math"`: func(d *ScriptDef) { d.Params = []string{"math"} },
		`reserved name: "_G"`:   func(d *ScriptDef) { d.Quantities = []string{"area", "_G"} },
	}
	for want, mutate := range cases {
		d := hexagonDef()
		mutate(&d)
		_, err := NewScripted(d)
		if err == nil {
			t.Fatalf("%s: expected error", want)
		}
		if !strings.Contains(err.Error(), want) {
			t.Fatalf("%s: unexpected error: %v", want, err)
		}
	}
}

func TestScripted_MissingQuantity(t *testing.T) {
	d := hexagonDef()
	d.Script = "perimeter = 6 * side"
	s, err := NewScripted(d)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	_, err = s.Calculate([]float64{1})
	if err == nil || !strings.Contains(err.Error(), "quantity area is not a number (got nil)") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestScripted_RuntimeError(t *testing.T) {
	d := hexagonDef()
	d.Script = "error('boom')"
	s, err := NewScripted(d)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	_, err = s.Calculate([]float64{1})
	if err == nil || !strings.Contains(err.Error(), "script failed") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestScripted_SandboxRemovesUnsafeFunctions(t *testing.T) {
	d := hexagonDef()
	d.Script = "dofile('/etc/passwd')"
	s, err := NewScripted(d)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if _, err := s.Calculate([]float64{1}); err == nil {
		t.Fatalf("expected dofile to be unavailable")
	}
}

func TestNewScripted_RejectsBuiltinGlobalNames(t *testing.T) {
	for _, name := range []string{"math", "type", "pairs", "tostring"} {
		d := hexagonDef()
		d.Params = []string{name}
		if _, err := NewScripted(d); err == nil || !strings.Contains(err.Error(), "reserved name") {
			t.Fatalf("%s: unexpected error: %v", name, err)
		}
	}
}

func TestScripted_SandboxHasNoStdoutWriters(t *testing.T) {
	for _, fn := range []string{"print('x')", "_printregs()", "newproxy()"} {
		d := hexagonDef()
		d.Script = fn + "\nperimeter = 1\narea = 1"
		s, err := NewScripted(d)
		if err != nil {
			t.Fatalf("%s: new: %v", fn, err)
		}
		_, err = s.Calculate([]float64{1})
		if err == nil || !strings.Contains(err.Error(), "script failed") {
			t.Fatalf("%s: expected call to fail, got %v", fn, err)
		}
	}
}

func TestScripted_Timeout(t *testing.T) {
	d := hexagonDef()
	d.Script = "while true do end"
	d.Timeout = 20 * time.Millisecond
	s, err := NewScripted(d)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	_, err = s.Calculate([]float64{1})
	if err == nil || !strings.Contains(err.Error(), "script timeout") {
		t.Fatalf("unexpected error: %v", err)
	}
}
