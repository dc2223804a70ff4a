package export

import (
	"fmt"
	"os"
	"path/filepath"
)

// LocalSink writes export payloads under a base directory on local disk.
type LocalSink struct {
	base string
}

// NewLocalSink returns a Sink rooted at base. base is created on first Put
// if it does not already exist.
func NewLocalSink(base string) *LocalSink {
	return &LocalSink{base: base}
}

func (s *LocalSink) Name() string { return "local" }

func (s *LocalSink) Put(key string, payload []byte) error {
	path := filepath.Join(s.base, key)
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("export: create directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return fmt.Errorf("export: write %s: %w", path, err)
	}
	return nil
}
