package shape

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	lua "github.com/yuin/gopher-lua"
	"github.com/yuin/gopher-lua/parse"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const defaultScriptTimeout = time.Second

var identPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// base library functions that reach outside the sandbox or write to the
// process stdout
var unsafeBaseFuncs = []string{
	"dofile", "loadfile", "load", "loadstring", "require", "module",
	"print", "_printregs", "newproxy",
}

// ScriptDef defines a shape whose quantities are computed by a Lua script.
// Each parameter is bound as a global number before the script runs; each
// quantity is read back from the global of the same name afterwards.
type ScriptDef struct {
	Name        string
	Description string
	Params      []string
	Quantities  []string
	Script      string
	Timeout     time.Duration
}

// Scripted is a Shape backed by a precompiled Lua chunk.
type Scripted struct {
	def   ScriptDef
	proto *lua.FunctionProto
}

// NewScripted validates def and compiles its script.
func NewScripted(def ScriptDef) (*Scripted, error) {
	if err := validateScriptDef(def); err != nil {
		return nil, err
	}
	chunk, err := parse.Parse(strings.NewReader(def.Script), def.Name)
	if err != nil {
		return nil, fmt.Errorf("shape %s: invalid script: %v", def.Name, err)
	}
	proto, err := lua.Compile(chunk, def.Name)
	if err != nil {
		return nil, fmt.Errorf("shape %s: invalid script: %v", def.Name, err)
	}
	if def.Timeout <= 0 {
		def.Timeout = defaultScriptTimeout
	}
	return &Scripted{def: def, proto: proto}, nil
}

func validateScriptDef(def ScriptDef) error {
	if !identPattern.MatchString(def.Name) {
		return fmt.Errorf("invalid shape name: %q", def.Name)
	}
	if len(def.Params) == 0 {
		return fmt.Errorf("shape %s: at least one parameter is required", def.Name)
	}
	if len(def.Quantities) == 0 {
		return fmt.Errorf("shape %s: at least one quantity is required", def.Name)
	}
	L := newSandboxState()
	defer L.Close()
	reserved := func(name string) bool { return L.GetGlobal(name) != lua.LNil }

	seen := map[string]bool{}
	for _, p := range def.Params {
		if !identPattern.MatchString(p) {
			return fmt.Errorf("shape %s: invalid parameter name: %q", def.Name, p)
		}
		if reserved(p) {
			return fmt.Errorf("shape %s: reserved name: %q", def.Name, p)
		}
		if seen[p] {
			return fmt.Errorf("shape %s: duplicate parameter: %s", def.Name, p)
		}
		seen[p] = true
	}
	for _, q := range def.Quantities {
		if !identPattern.MatchString(q) {
			return fmt.Errorf("shape %s: invalid quantity name: %q", def.Name, q)
		}
		if reserved(q) {
			return fmt.Errorf("shape %s: reserved name: %q", def.Name, q)
		}
	}
	if strings.TrimSpace(def.Script) == "" {
		return fmt.Errorf("shape %s: script is empty", def.Name)
	}
	return nil
}

// Factory returns a Factory producing copies of s.
func (s *Scripted) Factory() Factory {
	return func() Shape {
		c := *s
		return &c
	}
}

func (s *Scripted) Name() string { return s.def.Name }

func (s *Scripted) Description() string {
	if s.def.Description != "" {
		return s.def.Description
	}
	params := strings.Join(s.def.Params, ", ")
	return "A " + s.def.Name + " is defined by " + params + ".  If the user provides " + params + ":\n\n" +
		usage(s.def.Name, s.def.Params...) + "\n\n" +
		"The program can calculate: " + strings.Join(s.def.Quantities, ", ")
}

func (s *Scripted) RequiredParams() int { return len(s.def.Params) }

func (s *Scripted) Calculate(params []float64) (Result, error) {
	L := newSandboxState()
	defer L.Close()

	ctx, cancel := context.WithTimeout(context.Background(), s.def.Timeout)
	defer cancel()
	L.SetContext(ctx)

	inputs := make([]Quantity, 0, len(s.def.Params))
	parts := make([]string, 0, len(s.def.Params))
	for i, p := range s.def.Params {
		L.SetGlobal(p, lua.LNumber(params[i]))
		inputs = append(inputs, Quantity{Label: p, Value: params[i]})
		parts = append(parts, p+" "+FormatValue(params[i]))
	}

	L.Push(L.NewFunctionFromProto(s.proto))
	if err := L.PCall(0, 0, nil); err != nil {
		if isTimeoutError(ctx, err) {
			return Result{}, fmt.Errorf("shape %s: script timeout after %s", s.def.Name, s.def.Timeout)
		}
		return Result{}, fmt.Errorf("shape %s: script failed: %w", s.def.Name, err)
	}

	title := cases.Title(language.English)
	quantities := make([]Quantity, 0, len(s.def.Quantities))
	for _, q := range s.def.Quantities {
		v := L.GetGlobal(q)
		n, ok := v.(lua.LNumber)
		if !ok {
			return Result{}, fmt.Errorf("shape %s: quantity %s is not a number (got %s)", s.def.Name, q, v.Type())
		}
		quantities = append(quantities, Quantity{Label: title.String(q), Value: float64(n)})
	}

	return Result{
		Shape:      s.def.Name,
		Heading:    title.String(s.def.Name) + " with " + strings.Join(parts, ", "),
		Inputs:     inputs,
		Quantities: quantities,
	}, nil
}

func newSandboxState() *lua.LState {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	openLib := func(name string, f lua.LGFunction) {
		L.Push(L.NewFunction(f))
		L.Push(lua.LString(name))
		L.Call(1, 0)
	}
	openLib(lua.BaseLibName, lua.OpenBase)
	openLib(lua.MathLibName, lua.OpenMath)
	for _, name := range unsafeBaseFuncs {
		L.SetGlobal(name, lua.LNil)
	}
	return L
}

func isTimeoutError(ctx context.Context, err error) bool {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return true
	}
	return strings.Contains(strings.ToLower(err.Error()), "deadline")
}
