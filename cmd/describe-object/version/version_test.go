package version

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/coder/quartz"

	"github.com/flarebyte/describe-object/internal/buildinfo"
)

func withBuildInfo(t *testing.T, version, commit, date string) {
	t.Helper()
	oldVersion, oldCommit, oldDate := buildinfo.Version, buildinfo.Commit, buildinfo.Date
	t.Cleanup(func() {
		buildinfo.Version, buildinfo.Commit, buildinfo.Date = oldVersion, oldCommit, oldDate
	})
	buildinfo.Version, buildinfo.Commit, buildinfo.Date = version, commit, date
}

func TestVersionDefaultOutputStable(t *testing.T) {
	withBuildInfo(t, "", "", "")
	var stdout, stderr bytes.Buffer
	cmd := NewCmd(&stdout, &stderr, quartz.NewMock(t))
	cmd.SetArgs([]string{})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("run: %v", err)
	}
	if stdout.String() != "describe-object dev\n" {
		t.Fatalf("unexpected output: %q", stdout.String())
	}
}

func TestVersionJSONUsesClock(t *testing.T) {
	withBuildInfo(t, "1.2.3", "0123456789abcdef", "2026-10-18")
	mock := quartz.NewMock(t)
	mock.Set(time.Date(2026, 10, 18, 9, 30, 0, 0, time.UTC))

	var stdout, stderr bytes.Buffer
	cmd := NewCmd(&stdout, &stderr, mock)
	cmd.SetArgs([]string{"--json"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("run: %v", err)
	}
	var got map[string]any
	if err := json.Unmarshal(stdout.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v\n%s", err, stdout.String())
	}
	if got["timestamp"] != "2026-10-18T09:30:00Z" {
		t.Fatalf("unexpected timestamp: %v", got["timestamp"])
	}
	if got["version"] != "1.2.3" || got["commit"] != "0123456789abcdef" {
		t.Fatalf("unexpected version info: %v", got)
	}
	want := "describe-object version: 1.2.3 (commit=0123456, date=2026-10-18)\n"
	if stderr.String() != want {
		t.Fatalf("unexpected stderr: %q", stderr.String())
	}
}
