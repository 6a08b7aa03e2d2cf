package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gotac/pkg/compiler"
)

func main() {
	inPath := flag.String("in", "", "input source file path (default: read stdin)")
	outPath := flag.String("out", "", "output TAC file path (default: stdout, or input with .tac extension when -write is set)")
	write := flag.Bool("write", false, "write the listing next to the input file")
	callResults := flag.Bool("call-results", false, "assign call results to their temporaries")
	flag.Parse()

	if *write && *inPath == "" {
		fmt.Fprintln(os.Stderr, "-write requires -in")
		os.Exit(2)
	}

	source, err := readInput(*inPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read input: %v\n", err)
		os.Exit(1)
	}

	var opts []compiler.Option
	if *callResults {
		opts = append(opts, compiler.WithCallResults())
	}
	res := compiler.Compile(source, opts...)

	for _, d := range res.Diagnostics {
		if line := compiler.DiagnosticLine(d); line > 0 {
			fmt.Fprintf(os.Stderr, "%s:%d: %v\n", displayName(*inPath), line, d)
		} else {
			fmt.Fprintf(os.Stderr, "%s: %v\n", displayName(*inPath), d)
		}
	}

	output := *outPath
	if output == "" && *write {
		output = defaultOutputPath(*inPath)
	}
	if output == "" {
		if err := writeListing(os.Stdout, res.Instructions); err != nil {
			fmt.Fprintf(os.Stderr, "failed to write listing: %v\n", err)
			os.Exit(1)
		}
	} else {
		if err := writeListingFile(output, res.Instructions); err != nil {
			fmt.Fprintf(os.Stderr, "failed to write TAC file %q: %v\n", output, err)
			os.Exit(1)
		}
		fmt.Printf("wrote %d instructions -> %s\n", len(res.Instructions), output)
	}

	if !res.OK() {
		os.Exit(1)
	}
}

func readInput(path string) (string, error) {
	if path == "" {
		data, err := io.ReadAll(os.Stdin)
		return string(data), err
	}
	data, err := os.ReadFile(path)
	return string(data), err
}

func displayName(path string) string {
	if path == "" {
		return "<stdin>"
	}
	return path
}

func defaultOutputPath(inPath string) string {
	ext := filepath.Ext(inPath)
	if ext == "" {
		return inPath + ".tac"
	}
	return strings.TrimSuffix(inPath, ext) + ".tac"
}

func writeListing(w io.Writer, instructions []string) error {
	for _, in := range instructions {
		if _, err := fmt.Fprintln(w, in); err != nil {
			return err
		}
	}
	return nil
}

func writeListingFile(path string, instructions []string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := writeListing(f, instructions); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
