package render

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Staged is an encoded plot waiting to be published
type Staged interface {
	Commit() error
	Discard() error
}

// Render stages p on every sink and commits only once all of them staged.
// A sink that fails to encode or to prepare its destination leaves every
// output untouched.
func Render(p *Plot, sinks ...Sink) error {
	staged := make([]Staged, 0, len(sinks))

	for _, sink := range sinks {
		st, err := sink.Stage(p)
		if err != nil {
			return errors.Join(err, discard(staged))
		}
		staged = append(staged, st)
	}

	for i, st := range staged {
		if err := st.Commit(); err != nil {
			return errors.Join(err, discard(staged[i+1:]))
		}
	}

	return nil
}

func discard(staged []Staged) error {
	var errs []error
	for _, st := range staged {
		if err := st.Discard(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// stagedFile is a fully written temp file next to its destination,
// renamed into place on commit
type stagedFile struct {
	tmp  string
	path string
}

func stageFile(path string, data []byte) (*stagedFile, error) {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return nil, fmt.Errorf("output path %s is a directory", path)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	f, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp file: %w", err)
	}
	tmp := f.Name()

	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(tmp)
		return nil, fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return nil, fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Chmod(tmp, 0644); err != nil {
		os.Remove(tmp)
		return nil, fmt.Errorf("failed to set file mode: %w", err)
	}

	return &stagedFile{tmp: tmp, path: path}, nil
}

func (f *stagedFile) Commit() error {
	if err := os.Rename(f.tmp, f.path); err != nil {
		os.Remove(f.tmp)
		return fmt.Errorf("failed to write %s: %w", f.path, err)
	}
	return nil
}

func (f *stagedFile) Discard() error {
	if err := os.Remove(f.tmp); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove temp file: %w", err)
	}
	return nil
}

// stagedWrite holds formatted bytes for a stream such as stdout
type stagedWrite struct {
	w    io.Writer
	data []byte
}

func (s *stagedWrite) Commit() error {
	if _, err := s.w.Write(s.data); err != nil {
		return fmt.Errorf("failed to write sample data: %w", err)
	}
	return nil
}

func (s *stagedWrite) Discard() error {
	return nil
}
