package collector

import (
	"context"
	"fmt"
	"strconv"

	"github.com/ftahirops/xstatus/model"
	"github.com/ftahirops/xstatus/util"
)

// MemoryCollector reads /proc/meminfo.
type MemoryCollector struct {
	Path string
}

func (m *MemoryCollector) Name() string { return "memory" }

func (m *MemoryCollector) Collect(_ context.Context, snap *model.Snapshot) error {
	mem, err := m.Read()
	if err != nil {
		return err
	}
	snap.Memory = &mem
	return nil
}

// Read parses the meminfo table. MemFree and MemTotal are required,
// MemAvailable defaults to 0 on kernels that lack it.
func (m *MemoryCollector) Read() (model.Memory, error) {
	var mem model.Memory

	lines, err := util.ReadFileLines(m.Path)
	if err != nil {
		return mem, &ReadError{Path: m.Path, Err: err}
	}
	kv := util.ParseMeminfoLines(lines)

	if mem.Free, err = m.field(kv, "MemFree", true); err != nil {
		return mem, err
	}
	if mem.Total, err = m.field(kv, "MemTotal", true); err != nil {
		return mem, err
	}
	if mem.Available, err = m.field(kv, "MemAvailable", false); err != nil {
		return mem, err
	}

	if mem.Free > mem.Total {
		return mem, &ParseError{
			Source: m.Path,
			Detail: fmt.Sprintf("MemFree %d exceeds MemTotal %d", mem.Free, mem.Total),
		}
	}
	mem.Used = mem.Total - mem.Free
	return mem, nil
}

func (m *MemoryCollector) field(kv map[string]string, key string, required bool) (uint64, error) {
	raw, ok := kv[key]
	if !ok {
		if required {
			return 0, &ParseError{Source: m.Path, Detail: fmt.Sprintf("missing %s", key)}
		}
		return 0, nil
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, &ParseError{Source: m.Path, Detail: fmt.Sprintf("%s: %q is not a number", key, raw)}
	}
	return v, nil
}
