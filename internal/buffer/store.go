// Copyright (c) 2026 Li Jinling. All rights reserved.
// This software may be modified and distributed under the terms
// of the BSD-3 Clause License. See the LICENSE file for details.

package buffer

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/afero"

	"github.com/ffutop/bff/internal/buffer/persistence"
)

// Store owns the name -> Buffer mapping. Resolving a name transparently
// rehydrates the buffer from its snapshot when one exists, so edits made by
// an earlier invocation are visible to the current one. Every mutation is
// followed by a snapshot write through the injected Storage.
type Store struct {
	fs       afero.Fs
	storage  persistence.Storage
	resident map[string]*Buffer
}

// NewStore creates a Store persisting through storage and reading/writing
// user files through fs.
func NewStore(fs afero.Fs, storage persistence.Storage) *Store {
	return &Store{
		fs:       fs,
		storage:  storage,
		resident: make(map[string]*Buffer),
	}
}

// Resolve returns the buffer for name, rehydrating it from its snapshot or
// creating it empty. It never fails; a snapshot read error degrades to an
// empty buffer.
func (s *Store) Resolve(name string) *Buffer {
	if buf, ok := s.resident[name]; ok {
		return buf
	}

	buf := NewBuffer(name)
	lines, found, err := s.storage.Load(name)
	if err != nil {
		slog.Warn("Failed to load snapshot", "buffer", name, "err", err)
	} else if found {
		buf.Lines = lines
	}
	s.resident[name] = buf
	return buf
}

// Lookup returns the buffer for name only if it is resident or has a
// snapshot. Unlike Resolve it never creates a buffer; print paths use it to
// tell "never seen" apart from "empty".
func (s *Store) Lookup(name string) (*Buffer, bool) {
	if buf, ok := s.resident[name]; ok {
		return buf, true
	}
	lines, found, err := s.storage.Load(name)
	if err != nil {
		slog.Warn("Failed to load snapshot", "buffer", name, "err", err)
		return nil, false
	}
	if !found {
		return nil, false
	}
	buf := NewBuffer(name)
	buf.Lines = lines
	s.resident[name] = buf
	return buf, true
}

// OpenFile replaces the buffer's content with the lines of path. On read
// failure the buffer is left untouched.
func (s *Store) OpenFile(name, path string) error {
	buf := s.Resolve(name)

	f, err := s.fs.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	buf.Lines = lines
	buf.SourcePath = path
	buf.Modified = false
	s.Persist(buf)
	return nil
}

// SaveFile writes the buffer's lines to path, or to the buffer's recorded
// source path when path is empty. Each line is written followed by a
// newline. A supplied path becomes the buffer's new source path.
func (s *Store) SaveFile(name, path string) error {
	buf := s.Resolve(name)

	target := path
	if target == "" {
		target = buf.SourcePath
	}
	if target == "" {
		return ErrNoTargetPath
	}

	f, err := s.fs.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("failed to open %s for writing: %w", target, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, line := range buf.Lines {
		if _, err := w.WriteString(line + "\n"); err != nil {
			return fmt.Errorf("failed to write %s: %w", target, err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to write %s: %w", target, err)
	}

	buf.Modified = false
	if path != "" {
		buf.SourcePath = path
	}
	s.Persist(buf)
	return nil
}

// CreateNew resets the buffer to empty and associates it with path, which
// may be empty.
func (s *Store) CreateNew(name, path string) {
	buf := s.Resolve(name)
	buf.Lines = nil
	buf.SourcePath = path
	buf.Modified = false
	s.Persist(buf)
}

// Persist writes the buffer's snapshot. Snapshot failures never fail the
// triggering operation; the snapshot is a best-effort durability aid, not a
// transaction log.
func (s *Store) Persist(buf *Buffer) {
	if buf == nil {
		return
	}
	if err := s.storage.Save(buf.Name, buf.Lines); err != nil {
		slog.Warn("Failed to persist snapshot", "buffer", buf.Name, "err", err)
	}
}

// Flush persists every resident buffer. Called once before process exit.
func (s *Store) Flush() {
	for _, buf := range s.resident {
		s.Persist(buf)
	}
}
