/*
File    : lci/cmd/lci/main.go
*/

// Command lci is the entry point for the expression-language interpreter.
// It provides three modes: `run <file> [flags]` to execute a source file,
// a bare REPL when invoked with no arguments, and `server <port>` to serve
// one REPL session per TCP connection.
package main

import (
	"fmt"
	"net"
	"os"

	"github.com/fatih/color"

	"github.com/lci-lang/lci/ctx"
	"github.com/lci-lang/lci/eval"
	"github.com/lci-lang/lci/expr"
	"github.com/lci-lang/lci/file"
	"github.com/lci-lang/lci/lexer"
	"github.com/lci-lang/lci/parser"
	"github.com/lci-lang/lci/repl"
)

const (
	version = "v1.0.0"
	author  = "lci contributors"
	license = "MIT"
	prompt  = "lci >>> "
	line    = "----------------------------------------------------------------"
	banner  = `  _            _
 | |          (_)
 | | ___ _   _ _
 | |/ __| | | | |
 | | (__| |_| | |
 |_|\___|\__,_|_|
`
)

var (
	redColor    = color.New(color.FgRed)
	yellowColor = color.New(color.FgYellow)
	cyanColor   = color.New(color.FgCyan)
)

// UsageError reports a CLI invocation mistake: an unknown or repeated flag,
// or a missing required argument.
type UsageError struct {
	Message string
}

func (e *UsageError) Error() string { return e.Message }

// runOptions collects the flags accepted by `run`.
type runOptions struct {
	outputRaw      bool
	noForceEval    bool
	noEvalOps      bool
	evalStep       bool
	allowMultiArgs bool
}

func main() {
	if len(os.Args) < 2 {
		repl.New(banner, version, author, line, license, prompt).Start(os.Stdin, os.Stdout)
		return
	}

	switch os.Args[1] {
	case "--help", "-h":
		showHelp()
	case "--version", "-v":
		showVersion()
	case "run":
		if len(os.Args) < 3 {
			fatalUsage(&UsageError{Message: "run requires a file argument"})
		}
		opts, err := parseRunFlags(os.Args[3:])
		if err != nil {
			fatalUsage(err)
		}
		runFile(os.Args[2], opts)
	case "server":
		if len(os.Args) < 3 {
			fatalUsage(&UsageError{Message: "server requires a port argument"})
		}
		startServer(os.Args[2])
	default:
		// Bare invocation with a path: `lci path/to/source.lci`.
		opts, err := parseRunFlags(os.Args[2:])
		if err != nil {
			fatalUsage(err)
		}
		runFile(os.Args[1], opts)
	}
}

func fatalUsage(err error) {
	redColor.Fprintf(os.Stderr, "[USAGE ERROR] %s\n", err)
	os.Exit(1)
}

func showHelp() {
	cyanColor.Println("lci - an untyped lambda calculus interpreter")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	yellowColor.Println("  lci                          start the interactive REPL")
	yellowColor.Println("  lci run <file> [flags]       execute a source file")
	yellowColor.Println("  lci server <port>            serve one REPL session per connection")
	yellowColor.Println("  lci --help                   show this message")
	yellowColor.Println("  lci --version                show version information")
	cyanColor.Println("")
	cyanColor.Println("FLAGS (run):")
	yellowColor.Println("  --output-raw          print the parsed form before each result")
	yellowColor.Println("  --no-force-eval       return unreducible terms instead of erroring")
	yellowColor.Println("  --no-eval-ops         skip arithmetic/operator reduction")
	yellowColor.Println("  --eval-step           print every reduction step, not just the result")
	yellowColor.Println("  --allow-multi-args    allow `\\a b c. body` lambda sugar")
}

func showVersion() {
	cyanColor.Printf("lci %s (%s)\n", version, license)
}

// parseRunFlags accepts the five documented `run` flags. Any unrecognized
// or repeated flag is a UsageError.
func parseRunFlags(args []string) (runOptions, error) {
	var opts runOptions
	seen := make(map[string]bool)

	for _, arg := range args {
		if seen[arg] {
			return opts, &UsageError{Message: fmt.Sprintf("repeated flag %q", arg)}
		}
		seen[arg] = true

		switch arg {
		case "--output-raw":
			opts.outputRaw = true
		case "--no-force-eval":
			opts.noForceEval = true
		case "--no-eval-ops":
			opts.noEvalOps = true
		case "--eval-step":
			opts.evalStep = true
		case "--allow-multi-args":
			opts.allowMultiArgs = true
		default:
			return opts, &UsageError{Message: fmt.Sprintf("unknown flag %q", arg)}
		}
	}
	return opts, nil
}

func runFile(path string, opts runOptions) {
	source, err := file.ReadSource(path)
	if err != nil {
		redColor.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}

	statements, err := lexer.Lex(source)
	if err != nil {
		redColor.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}

	evalCtx := ctx.New()
	evalCtx.ForceEval = !opts.noForceEval
	evalCtx.EvalOps = !opts.noEvalOps
	evalCtx.EvalStep = opts.evalStep

	p := parser.New()
	p.MultiArgs = opts.allowMultiArgs

	statementNumber := 0
	for _, tokens := range statements {
		statementNumber++

		parsed, err := p.Parse(tokens, evalCtx)
		if err != nil {
			redColor.Fprintf(os.Stderr, "%s\n", err)
			os.Exit(1)
		}
		if parsed == nil {
			continue // binding statement: nothing to print
		}

		if len(statements) > 1 {
			yellowColor.Printf("*** Statement #%d\n", statementNumber)
		}

		if err := runStatement(parsed, evalCtx, opts); err != nil {
			redColor.Fprintf(os.Stderr, "%s\n", err)
			os.Exit(1)
		}
	}
}

// runStatement drives a single statement to its printed form. Under
// --eval-step, it prints the initial expression verbatim, then one line per
// reduction step prefixed with "-> ", until the expression is atomic.
// Otherwise it prints only the fully-reduced result, preceded by the parsed
// form verbatim on its own line under --output-raw. Only the evaluated
// forms get a single enclosing pair of parentheses stripped — the initial
// parsed/raw line is printed as-is.
func runStatement(parsed expr.Expression, evalCtx *ctx.EvalContext, opts runOptions) error {
	if evalCtx.EvalStep {
		return runStepwise(parsed, evalCtx)
	}

	if opts.outputRaw {
		yellowColor.Printf("%s\n", parsed.String())
		fmt.Print("-> ")
	}

	result, err := eval.Evaluate(parsed, evalCtx)
	if err != nil {
		return err
	}
	yellowColor.Printf("%s\n", stripOuterParens(result.String()))
	return nil
}

func runStepwise(e expr.Expression, evalCtx *ctx.EvalContext) error {
	yellowColor.Printf("%s\n", e.String())

	for !eval.IsAtomic(e, evalCtx) {
		next, err := eval.Evaluate(e, evalCtx)
		if err != nil {
			return err
		}
		yellowColor.Printf("-> %s\n", stripOuterParens(next.String()))
		e = next
	}
	return nil
}

// stripOuterParens removes a single enclosing pair of parentheses, per the
// printing contract's outer-paren-stripping rule.
func stripOuterParens(s string) string {
	if len(s) < 2 || s[0] != '(' || s[len(s)-1] != ')' {
		return s
	}
	depth := 0
	for i := 0; i < len(s)-1; i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
		}
		if depth == 0 {
			return s // the first '(' closes before the end: no enclosing pair
		}
	}
	return s[1 : len(s)-1]
}

func startServer(port string) {
	listener, err := net.Listen("tcp", ":"+port)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[SERVER ERROR] failed to listen on port %s: %v\n", port, err)
		os.Exit(1)
	}
	defer listener.Close()
	cyanColor.Printf("lci REPL server listening on :%s\n", port)

	for {
		conn, err := listener.Accept()
		if err != nil {
			redColor.Fprintf(os.Stderr, "[SERVER ERROR] failed to accept connection: %v\n", err)
			continue
		}
		go handleClient(conn)
	}
}

func handleClient(conn net.Conn) {
	defer conn.Close()
	cyanColor.Printf("client connected from %s\n", conn.RemoteAddr())
	repl.New(banner, version, author, line, license, prompt).Start(conn, conn)
	cyanColor.Printf("client disconnected from %s\n", conn.RemoteAddr())
}
