package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"gotac/pkg/compiler"
)

const banner = `gotac console: enter a program, finish it with an empty line.
:reset clears temporaries, labels and the listing; :quit exits.`

func main() {
	callResults := len(os.Args) > 1 && os.Args[1] == "--call-results"

	var opts []compiler.Option
	if callResults {
		opts = append(opts, compiler.WithCallResults())
	}
	session := compiler.NewSession(opts...)

	fmt.Println(banner)
	if err := repl(os.Stdin, os.Stdout, session); err != nil {
		log.Fatalf("console: %v", err)
	}
}

// repl reads programs from in, one per blank-line-terminated chunk, and
// compiles each into session. The listing printed after each chunk is the
// whole session log, so numbering carries over until :reset.
func repl(in io.Reader, out io.Writer, session *compiler.Session) error {
	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 0, 1<<16), 1<<20)

	var chunk []string
	flush := func() {
		if len(chunk) == 0 {
			return
		}
		res := session.Compile(strings.Join(chunk, "\n"))
		chunk = chunk[:0]
		for _, ins := range res.Instructions {
			fmt.Fprintln(out, ins)
		}
		for _, d := range res.Diagnostics {
			fmt.Fprintf(out, "error: line %d: %v\n", compiler.DiagnosticLine(d), d)
		}
	}

	for sc.Scan() {
		line := sc.Text()
		switch strings.TrimSpace(line) {
		case ":quit":
			flush()
			return nil
		case ":reset":
			chunk = chunk[:0]
			session.Reset()
			fmt.Fprintln(out, "state reset")
		case "":
			flush()
		default:
			chunk = append(chunk, line)
		}
	}
	flush()
	return sc.Err()
}
