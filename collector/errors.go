package collector

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinels for errors.Is. Every error a collector returns matches one.
var (
	ErrRead           = errors.New("read failure")
	ErrParse          = errors.New("parse failure")
	ErrClassification = errors.New("unknown device kind")
	ErrCommand        = errors.New("command failure")
)

// ReadError reports a pseudo-file that could not be read or whose
// contents did not parse as the requested type.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("read %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error        { return e.Err }
func (e *ReadError) Is(target error) bool { return target == ErrRead }

// ParseError reports content that does not have the expected shape.
type ParseError struct {
	Source string // file path or command line
	Detail string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %s", e.Source, e.Detail)
}

func (e *ParseError) Is(target error) bool { return target == ErrParse }

// ClassificationError reports a power-supply device with a type string
// that is neither a battery nor mains.
type ClassificationError struct {
	Path string
	Type string
}

func (e *ClassificationError) Error() string {
	return fmt.Sprintf("%s: unknown power supply type %q", e.Path, e.Type)
}

func (e *ClassificationError) Is(target error) bool { return target == ErrClassification }

// CommandError reports an external command that could not be run, exited
// non-zero, or produced output that is not text.
type CommandError struct {
	Args []string
	Err  error
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("run %s: %v", strings.Join(e.Args, " "), e.Err)
}

func (e *CommandError) Unwrap() error        { return e.Err }
func (e *CommandError) Is(target error) bool { return target == ErrCommand }
