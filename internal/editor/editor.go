// Copyright (c) 2026 Li Jinling. All rights reserved.
// This software may be modified and distributed under the terms
// of the BSD-3 Clause License. See the LICENSE file for details.

package editor

import (
	"fmt"
	"io"

	"github.com/ffutop/bff/internal/buffer"
)

// Editor performs 1-based line operations against buffers resolved through a
// Store. Mutating operations snapshot the buffer on success and leave it
// unchanged on failure; print operations write numbered lines to out and
// diagnostics to errOut.
type Editor struct {
	store  *buffer.Store
	out    io.Writer
	errOut io.Writer
}

// NewEditor creates an Editor writing command output to out and diagnostics
// to errOut.
func NewEditor(store *buffer.Store, out, errOut io.Writer) *Editor {
	return &Editor{store: store, out: out, errOut: errOut}
}

// Replace overwrites line n of the named buffer.
func (e *Editor) Replace(name string, n int, content string) error {
	buf := e.store.Resolve(name)
	if err := buf.Replace(n, content); err != nil {
		return err
	}
	e.store.Persist(buf)
	return nil
}

// Insert places content before line n; past-end addresses append.
func (e *Editor) Insert(name string, n int, content string) error {
	buf := e.store.Resolve(name)
	if err := buf.Insert(n, content); err != nil {
		return err
	}
	e.store.Persist(buf)
	return nil
}

// Delete removes line n.
func (e *Editor) Delete(name string, n int) error {
	buf := e.store.Resolve(name)
	if err := buf.Delete(n); err != nil {
		return err
	}
	e.store.Persist(buf)
	return nil
}

// Move relocates the line at from to position to.
func (e *Editor) Move(name string, from, to int) error {
	buf := e.store.Resolve(name)
	if err := buf.Move(from, to); err != nil {
		return err
	}
	e.store.Persist(buf)
	return nil
}

// Copy duplicates the line at from, inserting the copy at to.
func (e *Editor) Copy(name string, from, to int) error {
	buf := e.store.Resolve(name)
	if err := buf.Copy(from, to); err != nil {
		return err
	}
	e.store.Persist(buf)
	return nil
}

// Append adds content as the buffer's new last line.
func (e *Editor) Append(name, content string) {
	buf := e.store.Resolve(name)
	buf.Append(content)
	e.store.Persist(buf)
}

// Get returns line n, or "" when n is out of range. Reads never fail loudly;
// the empty string is the not-found sentinel.
func (e *Editor) Get(name string, n int) string {
	buf := e.store.Resolve(name)
	line, _ := buf.Line(n)
	return line
}

// PrintLine emits line n with its number, or a diagnostic when n is out of
// range.
func (e *Editor) PrintLine(name string, n int) {
	buf := e.store.Resolve(name)
	line, ok := buf.Line(n)
	if !ok {
		fmt.Fprintf(e.errOut, "Line %d not found in buffer '%s'\n", n, name)
		return
	}
	e.printNumbered(n, line)
}

// PrintRange emits lines [start, end]. start is clamped up to 1 and end down
// to the buffer length; an inverted range after clamping emits nothing. A
// buffer that was never seen gets a diagnostic instead.
func (e *Editor) PrintRange(name string, start, end int) {
	buf, ok := e.store.Lookup(name)
	if !ok {
		fmt.Fprintf(e.errOut, "Buffer '%s' not found.\n", name)
		return
	}

	if start < 1 {
		start = 1
	}
	if end > buf.Len() {
		end = buf.Len()
	}
	for n := start; n <= end; n++ {
		line, _ := buf.Line(n)
		e.printNumbered(n, line)
	}
}

// PrintAll emits every line with its number, or a diagnostic when the buffer
// was never seen or is empty.
func (e *Editor) PrintAll(name string) {
	buf, ok := e.store.Lookup(name)
	if !ok || buf.Len() == 0 {
		fmt.Fprintf(e.errOut, "Buffer '%s' not found or empty.\n", name)
		return
	}
	for n := 1; n <= buf.Len(); n++ {
		line, _ := buf.Line(n)
		e.printNumbered(n, line)
	}
}

// printNumbered writes one display line. The line number is zero-padded to a
// fixed width of 4 so the left margin stays aligned.
func (e *Editor) printNumbered(n int, line string) {
	fmt.Fprintf(e.out, "%04d: %s\n", n, line)
}
