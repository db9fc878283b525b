// Copyright (c) 2026 Li Jinling. All rights reserved.
// This software may be modified and distributed under the terms
// of the BSD-3 Clause License. See the LICENSE file for details.

package buffer

import "errors"

// Errors returned by line operations.
var (
	ErrLineOutOfRange = errors.New("line number out of range")
	ErrNoTargetPath   = errors.New("buffer has no target path")
)

// Buffer is a named, ordered sequence of text lines. Lines are stored
// 0-based but addressed 1-based by every operation; line n means the n-th
// line of the buffer. No line contains an embedded newline.
type Buffer struct {
	Name       string
	Lines      []string
	SourcePath string // last open/save target, "" if never file-backed
	Modified   bool
}

// NewBuffer creates an empty buffer with the given name.
func NewBuffer(name string) *Buffer {
	return &Buffer{Name: name}
}

// Len returns the number of lines.
func (b *Buffer) Len() int {
	return len(b.Lines)
}

// Line returns line n. ok is false when n is outside [1, Len].
func (b *Buffer) Line(n int) (string, bool) {
	if n < 1 || n > len(b.Lines) {
		return "", false
	}
	return b.Lines[n-1], true
}

// Replace overwrites line n with content.
func (b *Buffer) Replace(n int, content string) error {
	if n < 1 || n > len(b.Lines) {
		return ErrLineOutOfRange
	}
	b.Lines[n-1] = content
	b.Modified = true
	return nil
}

// Insert places content immediately before line n, shifting the rest down.
// Any n past the end appends, so Insert(Len+1, x) is the append form.
// Only n < 1 is rejected.
func (b *Buffer) Insert(n int, content string) error {
	if n < 1 {
		return ErrLineOutOfRange
	}
	if n > len(b.Lines) {
		b.Lines = append(b.Lines, content)
	} else {
		b.Lines = append(b.Lines[:n-1], append([]string{content}, b.Lines[n-1:]...)...)
	}
	b.Modified = true
	return nil
}

// Delete removes line n, shifting subsequent lines up.
func (b *Buffer) Delete(n int) error {
	if n < 1 || n > len(b.Lines) {
		return ErrLineOutOfRange
	}
	b.Lines = append(b.Lines[:n-1], b.Lines[n:]...)
	b.Modified = true
	return nil
}

// Move relocates the line at from to position to. Both addresses are
// validated against the current length. When moving forward, the target is
// decremented by one to account for the removal shift, so the line lands
// immediately before what was originally at to; moving backward lands
// exactly at to. Move(k, k) leaves the buffer unchanged apart from the
// dirty flag.
func (b *Buffer) Move(from, to int) error {
	if from < 1 || from > len(b.Lines) || to < 1 || to > len(b.Lines) {
		return ErrLineOutOfRange
	}
	content := b.Lines[from-1]
	b.Lines = append(b.Lines[:from-1], b.Lines[from:]...)
	if to > from {
		to--
	}
	b.Lines = append(b.Lines[:to-1], append([]string{content}, b.Lines[to-1:]...)...)
	b.Modified = true
	return nil
}

// Copy duplicates the line at from and inserts the copy at position to,
// shifting lines at and after to down by one. Both addresses are validated
// against the current length; nothing is removed, so no shift adjustment
// applies.
func (b *Buffer) Copy(from, to int) error {
	if from < 1 || from > len(b.Lines) || to < 1 || to > len(b.Lines) {
		return ErrLineOutOfRange
	}
	content := b.Lines[from-1]
	b.Lines = append(b.Lines[:to-1], append([]string{content}, b.Lines[to-1:]...)...)
	b.Modified = true
	return nil
}

// Append adds content as the new last line.
func (b *Buffer) Append(content string) {
	b.Lines = append(b.Lines, content)
	b.Modified = true
}
