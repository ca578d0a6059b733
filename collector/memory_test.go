package collector

import (
	"errors"
	"path/filepath"
	"testing"
)

const meminfoSample = `MemTotal:       16318480 kB
MemFree:         1024000 kB
MemAvailable:    9821144 kB
Buffers:          412312 kB
Cached:          8412340 kB
HugePages_Total:       0
Hugepagesize:       2048 kB
`

func meminfo(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "meminfo")
	writeFile(t, path, content)
	return path
}

func TestMemory(t *testing.T) {
	mem, err := (&MemoryCollector{Path: meminfo(t, meminfoSample)}).Read()
	if err != nil {
		t.Fatal(err)
	}
	if mem.Total != 16318480 || mem.Free != 1024000 || mem.Available != 9821144 {
		t.Errorf("memory = %+v", mem)
	}
	if mem.Used != mem.Total-mem.Free {
		t.Errorf("Used = %d; want %d", mem.Used, mem.Total-mem.Free)
	}
}

func TestMemoryUsedArithmetic(t *testing.T) {
	pairs := [][2]string{
		{"2000000", "8000000"},
		{"0", "1"},
		{"8000000", "8000000"},
		{"123", "456789"},
	}
	for _, p := range pairs {
		content := "MemTotal: " + p[1] + " kB\nMemFree: " + p[0] + " kB\n"
		mem, err := (&MemoryCollector{Path: meminfo(t, content)}).Read()
		if err != nil {
			t.Fatalf("free=%s total=%s: %v", p[0], p[1], err)
		}
		if mem.Used != mem.Total-mem.Free {
			t.Errorf("free=%s total=%s: Used = %d", p[0], p[1], mem.Used)
		}
	}
}

func TestMemoryAvailableOptional(t *testing.T) {
	content := "MemTotal:  8000000 kB\nMemFree:   2000000 kB\n"
	mem, err := (&MemoryCollector{Path: meminfo(t, content)}).Read()
	if err != nil {
		t.Fatal(err)
	}
	if mem.Available != 0 {
		t.Errorf("Available = %d; want 0 when MemAvailable is absent", mem.Available)
	}
	if mem.Used != 6000000 {
		t.Errorf("Used = %d; want 6000000", mem.Used)
	}
}

func TestMemoryErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    error
	}{
		{"missing MemFree", "MemTotal: 100 kB\n", ErrParse},
		{"missing MemTotal", "MemFree: 100 kB\n", ErrParse},
		{"non-numeric MemFree", "MemTotal: 100 kB\nMemFree: lots kB\n", ErrParse},
		{"non-numeric MemAvailable", "MemTotal: 100 kB\nMemFree: 10 kB\nMemAvailable: ? kB\n", ErrParse},
		{"free exceeds total", "MemTotal: 100 kB\nMemFree: 200 kB\n", ErrParse},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := (&MemoryCollector{Path: meminfo(t, tt.content)}).Read()
			if !errors.Is(err, tt.want) {
				t.Errorf("error = %v; want %v", err, tt.want)
			}
		})
	}

	t.Run("missing file", func(t *testing.T) {
		_, err := (&MemoryCollector{Path: filepath.Join(t.TempDir(), "meminfo")}).Read()
		if !errors.Is(err, ErrRead) {
			t.Errorf("error = %v; want ErrRead", err)
		}
	})
}
