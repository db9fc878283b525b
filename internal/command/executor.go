// Copyright (c) 2026 Li Jinling. All rights reserved.
// This software may be modified and distributed under the terms
// of the BSD-3 Clause License. See the LICENSE file for details.

package command

import (
	"fmt"
	"io"

	"github.com/ffutop/bff/internal/buffer"
	"github.com/ffutop/bff/internal/editor"
)

// Executor runs parsed commands against a buffer store and line editor,
// writing confirmations to out and diagnostics to errOut.
type Executor struct {
	store  *buffer.Store
	editor *editor.Editor
	out    io.Writer
	errOut io.Writer
}

// NewExecutor creates an Executor.
func NewExecutor(store *buffer.Store, ed *editor.Editor, out, errOut io.Writer) *Executor {
	return &Executor{store: store, editor: ed, out: out, errOut: errOut}
}

// Execute performs cmd and returns the process exit code: 0 on success, 1 on
// any operation failure.
func (x *Executor) Execute(cmd Command) int {
	switch cmd.Op {
	case OpOpen:
		if err := x.store.OpenFile(cmd.Buffer, cmd.Arg); err != nil {
			fmt.Fprintf(x.errOut, "Error: Could not open file %s\n", cmd.Arg)
			return 1
		}
		fmt.Fprintf(x.out, "File opened in buffer '%s'\n", cmd.Buffer)

	case OpAppend:
		x.editor.Append(cmd.Buffer, cmd.Arg)
		fmt.Fprintf(x.out, "Content appended to buffer '%s'\n", cmd.Buffer)

	case OpSave:
		if err := x.store.SaveFile(cmd.Buffer, cmd.Arg); err != nil {
			fmt.Fprintf(x.errOut, "Error: Could not save buffer %s\n", cmd.Buffer)
			return 1
		}
		fmt.Fprintf(x.out, "Buffer '%s' saved\n", cmd.Buffer)

	case OpNew:
		x.store.CreateNew(cmd.Buffer, cmd.Arg)
		fmt.Fprintf(x.out, "New buffer '%s' created\n", cmd.Buffer)

	case OpReplace:
		if err := x.editor.Replace(cmd.Buffer, cmd.Line, cmd.Arg); err != nil {
			fmt.Fprintf(x.errOut, "Error: Could not replace line %d\n", cmd.Line)
			return 1
		}
		fmt.Fprintf(x.out, "Line %d replaced in buffer '%s'\n", cmd.Line, cmd.Buffer)

	case OpInsert:
		if err := x.editor.Insert(cmd.Buffer, cmd.Line, cmd.Arg); err != nil {
			fmt.Fprintf(x.errOut, "Error: Could not insert line at %d\n", cmd.Line)
			return 1
		}
		fmt.Fprintf(x.out, "Line inserted at position %d in buffer '%s'\n", cmd.Line, cmd.Buffer)

	case OpDelete:
		if err := x.editor.Delete(cmd.Buffer, cmd.Line); err != nil {
			fmt.Fprintf(x.errOut, "Error: Could not delete line %d\n", cmd.Line)
			return 1
		}
		fmt.Fprintf(x.out, "Line %d deleted from buffer '%s'\n", cmd.Line, cmd.Buffer)

	case OpMove:
		if err := x.editor.Move(cmd.Buffer, cmd.Line, cmd.Line2); err != nil {
			fmt.Fprintln(x.errOut, "Error: Could not move line")
			return 1
		}
		fmt.Fprintf(x.out, "Line %d moved to position %d\n", cmd.Line, cmd.Line2)

	case OpCopy:
		if err := x.editor.Copy(cmd.Buffer, cmd.Line, cmd.Line2); err != nil {
			fmt.Fprintln(x.errOut, "Error: Could not copy line")
			return 1
		}
		fmt.Fprintf(x.out, "Line %d copied to position %d\n", cmd.Line, cmd.Line2)

	case OpGet:
		fmt.Fprintln(x.out, x.editor.Get(cmd.Buffer, cmd.Line))

	case OpPrintLine:
		x.editor.PrintLine(cmd.Buffer, cmd.Line)

	case OpPrintRange:
		x.editor.PrintRange(cmd.Buffer, cmd.Line, cmd.Line2)

	case OpPrint:
		x.editor.PrintAll(cmd.Buffer)
	}
	return 0
}
