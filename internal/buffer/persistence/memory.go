// Copyright (c) 2026 Li Jinling. All rights reserved.
// This software may be modified and distributed under the terms
// of the BSD-3 Clause License. See the LICENSE file for details.

package persistence

// MemoryStorage keeps snapshots in a map. Snapshots do not survive the
// process, so it is useful for tests and for running without a snapshot
// directory.
type MemoryStorage struct {
	snapshots map[string][]string
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{snapshots: make(map[string][]string)}
}

func (s *MemoryStorage) Load(name string) ([]string, bool, error) {
	lines, ok := s.snapshots[name]
	if !ok {
		return nil, false, nil
	}
	out := make([]string, len(lines))
	copy(out, lines)
	return out, true, nil
}

func (s *MemoryStorage) Save(name string, lines []string) error {
	stored := make([]string, len(lines))
	copy(stored, lines)
	s.snapshots[name] = stored
	return nil
}
