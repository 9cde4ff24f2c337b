// Package main implements the Mini compiler front end entry point.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/mini-lang/mini/internal/syntax"
)

// Compiler flags
var (
	emitTokens = flag.Bool("emit-tokens", false, "Output token stream")
	emitAST    = flag.Bool("emit-ast", false, "Output AST")
	astFormat  = flag.String("ast-format", "text", "AST output format (text or json)")
	output     = flag.String("o", "", "Output file (default stdout)")
	version    = flag.Bool("version", false, "Print version")
)

// Version information
const Version = "0.1.0-dev"

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Mini Compiler %s\n\n", Version)
		fmt.Fprintf(os.Stderr, "Usage: minic [options] <file.mini>\n\n")
		fmt.Fprintf(os.Stderr, "By default minic parses the input and writes the unparsed\n")
		fmt.Fprintf(os.Stderr, "program back out, fully parenthesized.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if *version {
		fmt.Printf("minic version %s\n", Version)
		fmt.Printf("go version %s\n", runtime.Version())
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "error: no input file")
		fmt.Fprintln(os.Stderr, "usage: minic [options] <file.mini>")
		os.Exit(1)
	}

	filename := args[0]

	if *emitTokens {
		os.Exit(runEmitTokens(filename))
	}

	if *emitAST {
		os.Exit(runEmitAST(filename))
	}

	os.Exit(runUnparse(filename))
}

// parseFile parses filename and returns the AST, or nil after reporting
// the syntax error to stderr.
func parseFile(filename string) *syntax.Program {
	f, err := os.Open(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return nil
	}
	defer f.Close()

	p := syntax.NewParser(filename, f)
	prog, err := p.Parse()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return nil
	}
	return prog
}

// outputFile returns the sink for generated output.
func outputFile() (*os.File, func(), error) {
	if *output == "" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(*output)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { f.Close() }, nil
}

// runUnparse parses the input file and writes it back as source text.
func runUnparse(filename string) int {
	prog := parseFile(filename)
	if prog == nil {
		return 1
	}

	out, done, err := outputFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	defer done()

	if err := syntax.Fprint(out, prog); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

// runEmitAST parses the input file and outputs the AST.
func runEmitAST(filename string) int {
	prog := parseFile(filename)
	if prog == nil {
		return 1
	}

	out, done, err := outputFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	defer done()

	switch *astFormat {
	case "json":
		if err := syntax.FprintJSON(out, prog); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return 1
		}
	default:
		syntax.Fdump(out, prog)
	}
	return 0
}

// runEmitTokens scans the input file and prints all tokens with positions.
func runEmitTokens(filename string) int {
	f, err := os.Open(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	defer f.Close()

	var errors []string
	errh := func(line, col uint32, msg string) {
		errors = append(errors, fmt.Sprintf("%s:%d:%d: %s", filename, line, col, msg))
	}

	s := syntax.NewScanner(filename, f, errh)

	fmt.Printf("%-20s %-12s %s\n", "POSITION", "TOKEN", "LITERAL")
	fmt.Printf("%-20s %-12s %s\n", strings.Repeat("-", 20), strings.Repeat("-", 12), strings.Repeat("-", 20))

	for {
		s.Next()
		tok := s.Token()
		fmt.Printf("%-20s %-12s %s\n", s.Pos().String(), tok.String(), formatLiteral(s.Literal()))
		if tok.IsEOF() {
			break
		}
	}

	if len(errors) > 0 {
		fmt.Println()
		fmt.Println("Errors:")
		for _, e := range errors {
			fmt.Printf("  %s\n", e)
		}
		return 1
	}

	return 0
}

// formatLiteral formats a literal for display, escaping special characters.
func formatLiteral(lit string) string {
	if lit == "" {
		return "\"\""
	}

	var b strings.Builder
	b.WriteRune('"')
	for _, r := range lit {
		switch r {
		case '\n':
			b.WriteString("\\n")
		case '\t':
			b.WriteString("\\t")
		case '\r':
			b.WriteString("\\r")
		case '\\':
			b.WriteString("\\\\")
		case '"':
			b.WriteString("\\\"")
		default:
			b.WriteRune(r)
		}
	}
	b.WriteRune('"')
	return b.String()
}
