package collector

import (
	"os"
	"strconv"
	"strings"
)

// readValue reads a sysfs/procfs attribute, drops one trailing newline and
// parses the rest. Read and parse failures both come back as *ReadError.
func readValue[T any](path string, parse func(string) (T, error)) (T, error) {
	var zero T
	data, err := os.ReadFile(path)
	if err != nil {
		return zero, &ReadError{Path: path, Err: err}
	}
	v, err := parse(strings.TrimSuffix(string(data), "\n"))
	if err != nil {
		return zero, &ReadError{Path: path, Err: err}
	}
	return v, nil
}

// ReadString returns the contents of path without its trailing newline.
func ReadString(path string) (string, error) {
	return readValue(path, func(s string) (string, error) { return s, nil })
}

// ReadUint reads path as an unsigned decimal integer.
func ReadUint(path string) (uint64, error) {
	return readValue(path, func(s string) (uint64, error) {
		return strconv.ParseUint(s, 10, 64)
	})
}
