package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"

	"github.com/flarebyte/describe-object/internal/shape"
	"gopkg.in/yaml.v3"
)

// Format selects how a result is written.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat validates a format name. The empty string selects text.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case "", FormatText:
		return FormatText, nil
	case FormatJSON, FormatYAML:
		return Format(s), nil
	default:
		return "", fmt.Errorf("invalid output format: %s (expected text, json or yaml)", s)
	}
}

// Write renders res to w in the given format.
func Write(w io.Writer, f Format, res shape.Result) error {
	switch f {
	case FormatJSON:
		return JSON(w, res)
	case FormatYAML:
		return YAML(w, res)
	default:
		return Text(w, res)
	}
}

// Text writes the heading and quantity lines.
func Text(w io.Writer, res shape.Result) error {
	_, err := fmt.Fprintln(w, res.String())
	return err
}

type jsonEntry struct {
	Label string       `json:"label"`
	Value *json.Number `json:"value"`
}

type jsonResult struct {
	Shape      string      `json:"shape"`
	Heading    string      `json:"heading"`
	Inputs     []jsonEntry `json:"inputs"`
	Quantities []jsonEntry `json:"quantities"`
	Degenerate bool        `json:"degenerate"`
}

// JSON writes res as an indented JSON object. Values keep two decimals;
// values that are not finite become null.
func JSON(w io.Writer, res shape.Result) error {
	out := jsonResult{
		Shape:      res.Shape,
		Heading:    res.Heading,
		Inputs:     jsonEntries(res.Inputs),
		Quantities: jsonEntries(res.Quantities),
		Degenerate: res.Degenerate(),
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func jsonEntries(qs []shape.Quantity) []jsonEntry {
	out := make([]jsonEntry, 0, len(qs))
	for _, q := range qs {
		e := jsonEntry{Label: q.Label}
		if shape.IsFinite(q.Value) {
			n := json.Number(shape.FormatValue(q.Value))
			e.Value = &n
		}
		out = append(out, e)
	}
	return out
}

// MarshalYAML returns the YAML document for res with a stable key order.
func MarshalYAML(res shape.Result) ([]byte, error) {
	top := &yaml.Node{Kind: yaml.MappingNode}
	top.Content = append(top.Content, scalarNode("shape"), scalarNode(res.Shape))
	top.Content = append(top.Content, scalarNode("heading"), scalarNode(res.Heading))
	top.Content = append(top.Content, scalarNode("inputs"), quantitiesNode(res.Inputs))
	top.Content = append(top.Content, scalarNode("quantities"), quantitiesNode(res.Quantities))
	top.Content = append(top.Content, scalarNode("degenerate"), boolNode(res.Degenerate()))

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(top); err != nil {
		_ = enc.Close()
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	out := bytes.TrimRight(buf.Bytes(), "\n")
	out = append(out, '\n')
	return out, nil
}

// YAML writes res as a YAML document.
func YAML(w io.Writer, res shape.Result) error {
	b, err := MarshalYAML(res)
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}

func quantitiesNode(qs []shape.Quantity) *yaml.Node {
	n := &yaml.Node{Kind: yaml.SequenceNode}
	for _, q := range qs {
		m := &yaml.Node{Kind: yaml.MappingNode}
		m.Content = append(m.Content, scalarNode("label"), scalarNode(q.Label))
		m.Content = append(m.Content, scalarNode("value"), floatNode(q.Value))
		n.Content = append(n.Content, m)
	}
	return n
}

func scalarNode(v string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v}
}

func boolNode(v bool) *yaml.Node {
	s := "false"
	if v {
		s = "true"
	}
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: s}
}

func floatNode(v float64) *yaml.Node {
	s := shape.FormatValue(v)
	switch {
	case math.IsNaN(v):
		s = ".nan"
	case math.IsInf(v, 1):
		s = ".inf"
	case math.IsInf(v, -1):
		s = "-.inf"
	}
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: s}
}
