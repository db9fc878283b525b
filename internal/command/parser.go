// Copyright (c) 2026 Li Jinling. All rights reserved.
// This software may be modified and distributed under the terms
// of the BSD-3 Clause License. See the LICENSE file for details.

package command

import (
	"errors"
	"fmt"
	"strconv"
)

// Parse failure kinds. Both end in usage text and a non-zero exit, but the
// command layer reports them differently.
var (
	ErrMalformed      = errors.New("malformed command")
	ErrUnknownCommand = errors.New("unknown command")
)

// Op identifies one buffer or line operation.
type Op int

const (
	OpPrint Op = iota // default when no command follows the buffer name
	OpOpen
	OpAppend
	OpSave
	OpNew
	OpReplace
	OpInsert
	OpDelete
	OpMove
	OpCopy
	OpGet
	OpPrintLine
	OpPrintRange
)

// Command is one fully parsed invocation: a buffer name plus a single
// operation with its arguments.
type Command struct {
	Buffer string
	Op     Op
	Arg    string // file path or line content, depending on Op
	Line   int    // primary 1-based line address
	Line2  int    // move/copy target or range end
}

// Parse maps the buffer name and the positional arguments after flag
// processing onto a Command. With no arguments the buffer is printed.
func Parse(bufferName string, args []string) (Command, error) {
	cmd := Command{Buffer: bufferName}

	if bufferName == "" {
		return cmd, fmt.Errorf("%w: buffer name is required", ErrMalformed)
	}
	if len(args) == 0 {
		cmd.Op = OpPrint
		return cmd, nil
	}

	switch args[0] {
	case "open":
		if len(args) < 2 {
			return cmd, fmt.Errorf("%w: open requires a file path", ErrMalformed)
		}
		cmd.Op = OpOpen
		cmd.Arg = args[1]
	case "print":
		cmd.Op = OpPrint
	case "append":
		if len(args) < 2 {
			return cmd, fmt.Errorf("%w: append requires content", ErrMalformed)
		}
		cmd.Op = OpAppend
		cmd.Arg = args[1]
	case "save":
		cmd.Op = OpSave
		if len(args) > 1 {
			cmd.Arg = args[1]
		}
	case "new":
		cmd.Op = OpNew
		if len(args) > 1 {
			cmd.Arg = args[1]
		}
	case "line":
		return parseLine(cmd, args[1:])
	default:
		return cmd, fmt.Errorf("%w: %s", ErrUnknownCommand, args[0])
	}
	return cmd, nil
}

// parseLine handles the `line <n> <operation> [arg]` forms.
func parseLine(cmd Command, args []string) (Command, error) {
	if len(args) < 2 {
		return cmd, fmt.Errorf("%w: line requires a number and an operation", ErrMalformed)
	}

	n, err := strconv.Atoi(args[0])
	if err != nil {
		return cmd, fmt.Errorf("%w: invalid line number %q", ErrMalformed, args[0])
	}
	if n < 1 {
		return cmd, fmt.Errorf("%w: line number must be positive", ErrMalformed)
	}
	cmd.Line = n

	op := args[1]
	switch op {
	case "replace", "insert":
		if len(args) < 3 {
			return cmd, fmt.Errorf("%w: %s requires content", ErrMalformed, op)
		}
		cmd.Arg = args[2]
		if op == "replace" {
			cmd.Op = OpReplace
		} else {
			cmd.Op = OpInsert
		}
	case "delete":
		cmd.Op = OpDelete
	case "move", "copy", "range":
		if len(args) < 3 {
			return cmd, fmt.Errorf("%w: %s requires a second line number", ErrMalformed, op)
		}
		n2, err := strconv.Atoi(args[2])
		if err != nil {
			return cmd, fmt.Errorf("%w: invalid line number %q", ErrMalformed, args[2])
		}
		cmd.Line2 = n2
		switch op {
		case "move":
			cmd.Op = OpMove
		case "copy":
			cmd.Op = OpCopy
		default:
			cmd.Op = OpPrintRange
		}
	case "get":
		cmd.Op = OpGet
	case "print":
		cmd.Op = OpPrintLine
	default:
		return cmd, fmt.Errorf("%w: line operation %s", ErrUnknownCommand, op)
	}
	return cmd, nil
}
