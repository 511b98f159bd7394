package reports

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
)

// Sink receives a finished document. A sink either stores all of data or
// returns an error having stored nothing.
type Sink interface {
	WriteDocument(data []byte) error
}

// FileSink writes the document to Path through a temporary file in the same
// directory, renamed into place once fully written.
type FileSink struct {
	Path string
	Perm os.FileMode
}

func (s FileSink) WriteDocument(data []byte) error {
	perm := s.Perm
	if perm == 0 {
		perm = 0o644
	}

	dir := filepath.Dir(s.Path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(s.Path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	cleanup := func() { _ = os.Remove(tmpName) }

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		cleanup()
		return fmt.Errorf("write %s: %w", s.Path, err)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return fmt.Errorf("close %s: %w", s.Path, err)
	}
	if err := os.Chmod(tmpName, perm); err != nil {
		cleanup()
		return fmt.Errorf("chmod %s: %w", s.Path, err)
	}
	if err := os.Rename(tmpName, s.Path); err != nil {
		cleanup()
		return fmt.Errorf("rename into %s: %w", s.Path, err)
	}
	return nil
}

// MemorySink keeps the document in memory.
type MemorySink struct {
	buf bytes.Buffer
}

func (s *MemorySink) WriteDocument(data []byte) error {
	s.buf.Reset()
	_, err := s.buf.Write(data)
	return err
}

// Bytes returns a copy of the stored document.
func (s *MemorySink) Bytes() []byte {
	return bytes.Clone(s.buf.Bytes())
}

// MultiSink hands the same document to every sink in order and stops at the
// first failure.
type MultiSink []Sink

func (m MultiSink) WriteDocument(data []byte) error {
	for _, s := range m {
		if err := s.WriteDocument(data); err != nil {
			return err
		}
	}
	return nil
}
