// Package repl implements an interactive read-print loop over the oxlang
// front end.  Input is read, parsed into forms, and printed back; evaluation
// belongs to a consumer built on top of the front end.
package repl

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"

	"github.com/oxlang/oxlang/parser/rdparser"
	"github.com/oxlang/oxlang/printer"
)

// Run reads forms from the terminal and prints them until EOF.
func Run(prompt string) {
	rl, err := readline.New(prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()
	contPrompt := strings.Repeat(" ", len(prompt)) // prompt had better be ascii...

	var buf []byte
	lineno := 0
	for {
		var line []byte
		line, err = rl.ReadSlice()
		if err != nil && err != readline.ErrInterrupt {
			break
		}
		if err == readline.ErrInterrupt {
			line = nil
			buf = nil
			rl.SetPrompt(prompt)
		}
		if len(buf) != 0 {
			buf = append(buf, '\n')
			line = append(buf, line...)
			buf = nil
			rl.SetPrompt(prompt)
		}
		if len(line) == 0 {
			continue
		}
		lineno++
		name := fmt.Sprintf("line %d", lineno)
		forms, rerr := rdparser.ReadString(name, string(line))
		if rdparser.IsIncomplete(rerr) {
			buf = line
			rl.SetPrompt(contPrompt)
			continue
		}
		if rerr != nil {
			errln(rerr)
			continue
		}
		for _, form := range forms {
			s, perr := printer.Default.Sprint(form)
			if perr != nil {
				errln(perr)
				continue
			}
			fmt.Println(s)
		}
	}
	if err != io.EOF {
		errln(err)
	}
}

func errln(v ...interface{}) {
	fmt.Fprintln(os.Stderr, v...)
}
