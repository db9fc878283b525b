// Copyright (c) 2026 Li Jinling. All rights reserved.
// This software may be modified and distributed under the terms
// of the BSD-3 Clause License. See the LICENSE file for details.

package persistence

// Storage defines the interface for persisting buffer snapshots.
// A snapshot is the full line sequence of one named buffer; Save always
// rewrites the whole snapshot, there is no incremental update.
type Storage interface {
	// Load reads the snapshot for name. found is false when no snapshot
	// exists, which is not an error.
	Load(name string) (lines []string, found bool, err error)

	// Save rewrites the snapshot for name with the given lines.
	Save(name string, lines []string) error
}
