// Copyright (c) 2026 Li Jinling. All rights reserved.
// This software may be modified and distributed under the terms
// of the BSD-3 Clause License. See the LICENSE file for details.

package command

import (
	"fmt"
	"io"
)

// Usage writes the command reference.
func Usage(w io.Writer, version string) {
	fmt.Fprintf(w, "bff: %s\n\n", version)

	fmt.Fprintln(w, "Usage: bff -b [BUFFER NAME] [BUFFER COMMAND|LINE COMMAND] [COMMAND ARGUMENT 1] [COMMAND ARGUMENT 2]")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Buffer commands:")
	fmt.Fprintln(w, `  bff -b "test" open "/path/to/file.txt"`)
	fmt.Fprintln(w, `  bff -b "test" print`)
	fmt.Fprintln(w, `  bff -b "test" append "new content"`)
	fmt.Fprintln(w, `  bff -b "test" save "/new/path/file.txt"`)
	fmt.Fprintln(w, `  bff -b "test" new "/path/to/newfile.txt"`)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Line commands:")
	fmt.Fprintln(w, `  bff -b "test" line 10 replace "return 0;"`)
	fmt.Fprintln(w, `  bff -b "test" line 5 insert "// New comment"`)
	fmt.Fprintln(w, `  bff -b "test" line 3 delete`)
	fmt.Fprintln(w, `  bff -b "test" line 7 move 2`)
	fmt.Fprintln(w, `  bff -b "test" line 4 copy 8`)
	fmt.Fprintln(w, `  bff -b "test" line 6 get`)
	fmt.Fprintln(w, `  bff -b "test" line 2 print`)
	fmt.Fprintln(w, `  bff -b "test" line 1 range 10`)
}
