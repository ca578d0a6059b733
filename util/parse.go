package util

import (
	"bufio"
	"os"
	"strings"
)

// ReadFileLines reads a file and returns its lines.
func ReadFileLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines, scanner.Err()
}

// ParseMeminfoLines parses "Label:   value unit" rows into label -> value.
// The value is the first whitespace-separated token after the first colon,
// so units like "kB" are dropped. Rows without a colon or without a value
// (blank trailing lines, headers) are skipped.
func ParseMeminfoLines(lines []string) map[string]string {
	m := make(map[string]string, len(lines))
	for _, line := range lines {
		key, rest, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		val := FieldsAt(rest, 0)
		if key == "" || val == "" {
			continue
		}
		m[key] = val
	}
	return m
}

// FieldsAt returns the field at the given index from a whitespace-split line.
// Returns empty string if index is out of bounds.
func FieldsAt(line string, idx int) string {
	fields := strings.Fields(line)
	if idx < len(fields) {
		return fields[idx]
	}
	return ""
}
