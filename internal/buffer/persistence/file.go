// Copyright (c) 2026 Li Jinling. All rights reserved.
// This software may be modified and distributed under the terms
// of the BSD-3 Clause License. See the LICENSE file for details.

package persistence

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// FileStorage persists snapshots as plain text files, one buffer line per
// record, each terminated by a newline. The snapshot for buffer "name" lives
// at <dir>/<name>.tmp.
//
// Save writes to a sibling temp file and renames it over the target, so a
// concurrent Load never observes a half-written snapshot. Two concurrent
// writers still race; the last rename wins.
type FileStorage struct {
	fs  afero.Fs
	dir string
}

// NewFileStorage creates a FileStorage rooted at dir, creating the directory
// (including parents) if it does not exist.
func NewFileStorage(fs afero.Fs, dir string) (*FileStorage, error) {
	if err := fs.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create snapshot directory: %w", err)
	}
	return &FileStorage{fs: fs, dir: dir}, nil
}

// SnapshotPath returns the snapshot file path for a buffer name.
func (s *FileStorage) SnapshotPath(name string) string {
	return filepath.Join(s.dir, name+".tmp")
}

// Load reads the snapshot for name, splitting it into lines.
func (s *FileStorage) Load(name string) ([]string, bool, error) {
	f, err := s.fs.Open(s.SnapshotPath(name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to open snapshot: %w", err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, false, fmt.Errorf("failed to read snapshot: %w", err)
	}
	return lines, true, nil
}

// Save rewrites the snapshot for name via write-to-temp-then-rename.
func (s *FileStorage) Save(name string, lines []string) error {
	target := s.SnapshotPath(name)
	tmp := target + ".partial"

	f, err := s.fs.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("failed to create snapshot temp file: %w", err)
	}

	w := bufio.NewWriter(f)
	for _, line := range lines {
		if _, err := w.WriteString(line); err != nil {
			f.Close()
			s.fs.Remove(tmp)
			return fmt.Errorf("failed to write snapshot: %w", err)
		}
		if err := w.WriteByte('\n'); err != nil {
			f.Close()
			s.fs.Remove(tmp)
			return fmt.Errorf("failed to write snapshot: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		f.Close()
		s.fs.Remove(tmp)
		return fmt.Errorf("failed to flush snapshot: %w", err)
	}
	if err := f.Close(); err != nil {
		s.fs.Remove(tmp)
		return fmt.Errorf("failed to close snapshot temp file: %w", err)
	}

	if err := s.fs.Rename(tmp, target); err != nil {
		s.fs.Remove(tmp)
		return fmt.Errorf("failed to replace snapshot: %w", err)
	}
	return nil
}

// maxLineSize bounds a single buffer line when scanning snapshots.
const maxLineSize = 1024 * 1024
