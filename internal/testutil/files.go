package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteFile writes content to name under a fresh temp dir and returns the path.
func WriteFile(t testing.TB, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return p
}

// HexagonConfig is a config declaring a scripted hexagon and two aliases.
const HexagonConfig = `configVersion: "1"
output: format: "text"
aliases: {
	rectangle: "rect"
	hex:       "hexagon"
}
shapes: hexagon: {
	params: ["side"]
	quantities: ["perimeter", "area"]
	script: """
		perimeter = 6 * side
		area = 3 * math.sqrt(3) / 2 * side * side
		"""
}
`
