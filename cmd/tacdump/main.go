package main

import (
	"fmt"
	"io"
	"os"

	"gotac/pkg/compiler"
	"gotac/pkg/utils"
)

const testSource = `int square(int x) {
	return x * x;
}

int main() {
	int a = 3;
	int b;
	b = square(a) + 2 * (a - 1);
	printf(b);
	return b;
}
`

func main() {
	src := testSource
	if len(os.Args) > 1 {
		_, data, err := utils.ReadSource(os.Args[1])
		if err != nil {
			fmt.Fprintln(os.Stderr, "read error:", err)
			os.Exit(1)
		}
		src = data
	}
	if !dump(os.Stdout, src) {
		os.Exit(1)
	}
}

// dump prints every stage of the pipeline for src and reports whether it
// compiled cleanly.
func dump(w io.Writer, src string) bool {
	fmt.Fprintf(w, "Source:\n%s\n", src)

	tokens, lexErrs := compiler.Lex(src)
	fmt.Fprintf(w, "Tokens (%d)\n", len(tokens))
	for _, tok := range tokens {
		fmt.Fprintln(w, " ", tok)
	}
	for _, err := range lexErrs {
		fmt.Fprintf(w, "  line %d: %v\n", compiler.DiagnosticLine(err), err)
	}
	fmt.Fprintln(w)

	info := compiler.Automaton()
	fmt.Fprintf(w, "Grammar (%d productions, %d states, %d conflicts resolved by precedence)\n",
		info.Productions, info.States, info.Resolved)
	for _, p := range compiler.Grammar() {
		fmt.Fprintln(w, " ", p)
	}
	fmt.Fprintln(w)

	res := compiler.Compile(src)
	fmt.Fprintln(w, "Three-Address Code")
	for _, in := range res.Instructions {
		fmt.Fprintln(w, " ", in)
	}
	fmt.Fprintln(w)

	if res.OK() {
		return true
	}
	fmt.Fprintln(w, "Diagnostics")
	for _, d := range res.Diagnostics {
		fmt.Fprintf(w, "  line %d: %v\n", compiler.DiagnosticLine(d), d)
	}
	return false
}
