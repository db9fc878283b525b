// Copyright (c) 2026 Li Jinling. All rights reserved.
// This software may be modified and distributed under the terms
// of the BSD-3 Clause License. See the LICENSE file for details.

package persistence

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/afero"
)

func TestFileStorageRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
	}{
		{"Simple", []string{"one", "two", "three"}},
		{"Empty", nil},
		{"BlankLines", []string{"", "a", ""}},
		{"SingleLine", []string{"only"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			s, err := NewFileStorage(fs, "/snapshots")
			if err != nil {
				t.Fatalf("NewFileStorage() error = %v", err)
			}

			if err := s.Save("buf", tt.lines); err != nil {
				t.Fatalf("Save() error = %v", err)
			}
			got, found, err := s.Load("buf")
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if !found {
				t.Fatal("Load() reported not found after Save()")
			}
			if diff := cmp.Diff(tt.lines, got); diff != "" {
				t.Errorf("lines mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFileStorageLoadMissing(t *testing.T) {
	s, err := NewFileStorage(afero.NewMemMapFs(), "/snapshots")
	if err != nil {
		t.Fatal(err)
	}

	lines, found, err := s.Load("never-seen")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if found {
		t.Error("Load() of missing snapshot reported found")
	}
	if lines != nil {
		t.Errorf("Load() of missing snapshot returned lines %v", lines)
	}
}

func TestFileStorageSnapshotFormat(t *testing.T) {
	fs := afero.NewMemMapFs()
	s, err := NewFileStorage(fs, "/snapshots")
	if err != nil {
		t.Fatal(err)
	}

	if err := s.Save("buf", []string{"l1", "l2"}); err != nil {
		t.Fatal(err)
	}

	data, err := afero.ReadFile(fs, "/snapshots/buf.tmp")
	if err != nil {
		t.Fatalf("snapshot file missing: %v", err)
	}
	if string(data) != "l1\nl2\n" {
		t.Errorf("snapshot = %q, want %q", data, "l1\nl2\n")
	}
}

func TestFileStorageSaveLeavesNoTempFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	s, err := NewFileStorage(fs, "/snapshots")
	if err != nil {
		t.Fatal(err)
	}

	if err := s.Save("buf", []string{"a"}); err != nil {
		t.Fatal(err)
	}

	if ok, _ := afero.Exists(fs, "/snapshots/buf.tmp.partial"); ok {
		t.Error("temp file left behind after Save()")
	}
}

func TestFileStorageOverwrite(t *testing.T) {
	s, err := NewFileStorage(afero.NewMemMapFs(), "/snapshots")
	if err != nil {
		t.Fatal(err)
	}

	if err := s.Save("buf", []string{"old", "content", "here"}); err != nil {
		t.Fatal(err)
	}
	if err := s.Save("buf", []string{"new"}); err != nil {
		t.Fatal(err)
	}

	got, _, err := s.Load("buf")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"new"}, got); diff != "" {
		t.Errorf("lines mismatch (-want +got):\n%s", diff)
	}
}
