package collector

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// writeFile creates path (and its parents) with content.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

// powerSupply lays out a /sys/class/power_supply device.
func powerSupply(t *testing.T, root, name string, attrs map[string]string) {
	t.Helper()
	for k, v := range attrs {
		writeFile(t, filepath.Join(root, name, k), v+"\n")
	}
}

// fakeRunner answers pactl queries keyed by the query argument.
type fakeRunner struct {
	out   map[string]string
	err   map[string]error
	calls [][]string
}

func (f *fakeRunner) Output(_ context.Context, name string, args ...string) ([]byte, error) {
	f.calls = append(f.calls, append([]string{name}, args...))
	if len(args) == 0 {
		return nil, errors.New("no args")
	}
	if err := f.err[args[0]]; err != nil {
		return nil, err
	}
	return []byte(f.out[args[0]]), nil
}
