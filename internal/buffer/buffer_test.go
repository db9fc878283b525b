// Copyright (c) 2026 Li Jinling. All rights reserved.
// This software may be modified and distributed under the terms
// of the BSD-3 Clause License. See the LICENSE file for details.

package buffer

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func newTestBuffer(lines ...string) *Buffer {
	b := NewBuffer("test")
	b.Lines = append([]string{}, lines...)
	return b
}

func TestReplace(t *testing.T) {
	tests := []struct {
		name    string
		lines   []string
		n       int
		content string
		want    []string
		wantErr bool
	}{
		{"First", []string{"a", "b", "c"}, 1, "x", []string{"x", "b", "c"}, false},
		{"Last", []string{"a", "b", "c"}, 3, "x", []string{"a", "b", "x"}, false},
		{"Zero", []string{"a"}, 0, "x", []string{"a"}, true},
		{"Negative", []string{"a"}, -1, "x", []string{"a"}, true},
		{"PastEnd", []string{"a"}, 2, "x", []string{"a"}, true},
		{"EmptyBuffer", nil, 1, "x", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newTestBuffer(tt.lines...)
			err := b.Replace(tt.n, tt.content)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Replace() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && !errors.Is(err, ErrLineOutOfRange) {
				t.Errorf("Replace() error = %v, want ErrLineOutOfRange", err)
			}
			if diff := cmp.Diff(tt.want, b.Lines, cmp.Comparer(equalLines)); diff != "" {
				t.Errorf("lines mismatch (-want +got):\n%s", diff)
			}
			if !tt.wantErr && !b.Modified {
				t.Errorf("Modified = false after successful mutation")
			}
			if tt.wantErr && b.Modified {
				t.Errorf("Modified = true after failed mutation")
			}
		})
	}
}

func TestInsert(t *testing.T) {
	tests := []struct {
		name    string
		lines   []string
		n       int
		content string
		want    []string
		wantErr bool
	}{
		{"Front", []string{"a", "b"}, 1, "x", []string{"x", "a", "b"}, false},
		{"Middle", []string{"a", "b"}, 2, "x", []string{"a", "x", "b"}, false},
		{"OnePastEnd", []string{"a", "b"}, 3, "x", []string{"a", "b", "x"}, false},
		{"FarPastEndAppends", []string{"a", "b"}, 99, "x", []string{"a", "b", "x"}, false},
		{"EmptyBufferAtOne", nil, 1, "x", []string{"x"}, false},
		{"Zero", []string{"a"}, 0, "x", []string{"a"}, true},
		{"Negative", []string{"a"}, -5, "x", []string{"a"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newTestBuffer(tt.lines...)
			err := b.Insert(tt.n, tt.content)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Insert() error = %v, wantErr %v", err, tt.wantErr)
			}
			if diff := cmp.Diff(tt.want, b.Lines, cmp.Comparer(equalLines)); diff != "" {
				t.Errorf("lines mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestInsertAtLenPlusOneEqualsAppend(t *testing.T) {
	for _, size := range []int{0, 1, 2, 5} {
		b := NewBuffer("t")
		for i := 0; i < size; i++ {
			b.Append("line")
		}
		want := append(append([]string{}, b.Lines...), "x")

		if err := b.Insert(b.Len()+1, "x"); err != nil {
			t.Fatalf("Insert(len+1) with len=%d: %v", size, err)
		}
		if diff := cmp.Diff(want, b.Lines); diff != "" {
			t.Errorf("len=%d lines mismatch (-want +got):\n%s", size, diff)
		}
	}
}

func TestDelete(t *testing.T) {
	tests := []struct {
		name    string
		lines   []string
		n       int
		want    []string
		wantErr bool
	}{
		{"First", []string{"a", "b", "c"}, 1, []string{"b", "c"}, false},
		{"Middle", []string{"a", "b", "c"}, 2, []string{"a", "c"}, false},
		{"Last", []string{"a", "b", "c"}, 3, []string{"a", "b"}, false},
		{"Only", []string{"a"}, 1, []string{}, false},
		{"Zero", []string{"a"}, 0, []string{"a"}, true},
		{"PastEnd", []string{"a"}, 2, []string{"a"}, true},
		{"EmptyBuffer", nil, 1, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newTestBuffer(tt.lines...)
			err := b.Delete(tt.n)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Delete() error = %v, wantErr %v", err, tt.wantErr)
			}
			if diff := cmp.Diff(tt.want, b.Lines, cmp.Comparer(equalLines)); diff != "" {
				t.Errorf("lines mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMove(t *testing.T) {
	tests := []struct {
		name    string
		lines   []string
		from    int
		to      int
		want    []string
		wantErr bool
	}{
		// Moving forward lands the line immediately before the one that was
		// originally at the target, so moving one step forward is a no-op.
		{"ForwardByOne", []string{"a", "b", "c"}, 1, 2, []string{"a", "b", "c"}, false},
		{"Forward", []string{"a", "b", "c", "d"}, 1, 3, []string{"b", "a", "c", "d"}, false},
		{"ForwardToEnd", []string{"a", "b", "c"}, 1, 3, []string{"b", "a", "c"}, false},
		{"Backward", []string{"a", "b", "c"}, 3, 1, []string{"c", "a", "b"}, false},
		{"BackwardMiddle", []string{"a", "b", "c", "d"}, 4, 2, []string{"a", "d", "b", "c"}, false},
		{"SamePosition", []string{"a", "b", "c"}, 2, 2, []string{"a", "b", "c"}, false},
		{"FromOutOfRange", []string{"a", "b"}, 3, 1, []string{"a", "b"}, true},
		{"ToOutOfRange", []string{"a", "b"}, 1, 3, []string{"a", "b"}, true},
		{"FromZero", []string{"a", "b"}, 0, 1, []string{"a", "b"}, true},
		{"ToZero", []string{"a", "b"}, 1, 0, []string{"a", "b"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newTestBuffer(tt.lines...)
			err := b.Move(tt.from, tt.to)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Move() error = %v, wantErr %v", err, tt.wantErr)
			}
			if diff := cmp.Diff(tt.want, b.Lines); diff != "" {
				t.Errorf("lines mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMoveSamePositionIsNoOp(t *testing.T) {
	lines := []string{"a", "b", "c", "d", "e"}
	for k := 1; k <= len(lines); k++ {
		b := newTestBuffer(lines...)
		if err := b.Move(k, k); err != nil {
			t.Fatalf("Move(%d, %d): %v", k, k, err)
		}
		if diff := cmp.Diff(lines, b.Lines); diff != "" {
			t.Errorf("Move(%d, %d) changed lines (-want +got):\n%s", k, k, diff)
		}
	}
}

func TestCopy(t *testing.T) {
	tests := []struct {
		name    string
		lines   []string
		from    int
		to      int
		want    []string
		wantErr bool
	}{
		{"ToFront", []string{"a", "b", "c"}, 3, 1, []string{"c", "a", "b", "c"}, false},
		{"ToSelf", []string{"a", "b"}, 1, 1, []string{"a", "a", "b"}, false},
		{"ForwardInsertsBefore", []string{"a", "b", "c"}, 1, 3, []string{"a", "b", "a", "c"}, false},
		{"FromOutOfRange", []string{"a"}, 2, 1, []string{"a"}, true},
		{"ToOutOfRange", []string{"a"}, 1, 2, []string{"a"}, true},
		{"EmptyBuffer", nil, 1, 1, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newTestBuffer(tt.lines...)
			err := b.Copy(tt.from, tt.to)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Copy() error = %v, wantErr %v", err, tt.wantErr)
			}
			if diff := cmp.Diff(tt.want, b.Lines, cmp.Comparer(equalLines)); diff != "" {
				t.Errorf("lines mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCopyGrowsByOneAndKeepsSource(t *testing.T) {
	lines := []string{"a", "b", "c", "d"}
	for from := 1; from <= len(lines); from++ {
		for to := 1; to <= len(lines); to++ {
			b := newTestBuffer(lines...)
			src := b.Lines[from-1]
			if err := b.Copy(from, to); err != nil {
				t.Fatalf("Copy(%d, %d): %v", from, to, err)
			}
			if b.Len() != len(lines)+1 {
				t.Errorf("Copy(%d, %d) length = %d, want %d", from, to, b.Len(), len(lines)+1)
			}
			if got, _ := b.Line(to); got != src {
				t.Errorf("Copy(%d, %d) line %d = %q, want %q", from, to, to, got, src)
			}
		}
	}
}

func TestLine(t *testing.T) {
	b := newTestBuffer("a", "b")

	if got, ok := b.Line(2); !ok || got != "b" {
		t.Errorf("Line(2) = %q, %v, want \"b\", true", got, ok)
	}
	for _, n := range []int{0, -1, 3} {
		if got, ok := b.Line(n); ok || got != "" {
			t.Errorf("Line(%d) = %q, %v, want \"\", false", n, got, ok)
		}
	}
}

// equalLines treats nil and empty slices as equal; callers only care about
// content.
func equalLines(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
