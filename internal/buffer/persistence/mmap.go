// Copyright (c) 2026 Li Jinling. All rights reserved.
// This software may be modified and distributed under the terms
// of the BSD-3 Clause License. See the LICENSE file for details.

package persistence

import (
	"fmt"
	"os"

	"github.com/edsrzf/mmap-go"
	"github.com/spf13/afero"
)

// MmapStorage reads snapshots through a read-only memory mapping instead of
// buffered reads. The on-disk format is identical to FileStorage, and writes
// delegate to it: a snapshot changes size on every edit, so keeping a
// writable mapping across a one-shot invocation buys nothing.
type MmapStorage struct {
	file *FileStorage
}

// NewMmapStorage creates an MmapStorage over dir. It always maps real OS
// files; mmap has no meaning on a virtual filesystem.
func NewMmapStorage(dir string) (*MmapStorage, error) {
	fs, err := NewFileStorage(afero.NewOsFs(), dir)
	if err != nil {
		return nil, err
	}
	return &MmapStorage{file: fs}, nil
}

// Load memory-maps the snapshot and splits it into lines. The line strings
// are copied out of the mapping before it is unmapped.
func (s *MmapStorage) Load(name string) ([]string, bool, error) {
	f, err := os.Open(s.file.SnapshotPath(name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to open snapshot: %w", err)
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, false, err
	}
	if fi.Size() == 0 {
		// mmap of an empty file fails on most platforms
		return nil, true, nil
	}

	data, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, false, fmt.Errorf("mmap failed: %w", err)
	}
	defer data.Unmap()

	var lines []string
	start := 0
	for i, b := range data {
		if b == '\n' {
			lines = append(lines, string(data[start:i]))
			start = i + 1
		}
	}
	if start < len(data) {
		// Snapshot without a final newline, e.g. written by hand.
		lines = append(lines, string(data[start:]))
	}
	return lines, true, nil
}

// Save rewrites the snapshot through the file adapter.
func (s *MmapStorage) Save(name string, lines []string) error {
	return s.file.Save(name, lines)
}
