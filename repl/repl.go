/*
File    : lci/repl/repl.go
*/

// Package repl implements the interactive Read-Eval-Print Loop for the
// expression language. A Repl instance keeps one EvalContext/ParseContext
// pair alive for the whole session, so bindings made on one line are
// visible to every line after it, and offers colored feedback for results
// versus errors.
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/lci-lang/lci/ctx"
	"github.com/lci-lang/lci/eval"
	"github.com/lci-lang/lci/lexer"
	"github.com/lci-lang/lci/parser"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl holds the cosmetic configuration for an interactive session.
type Repl struct {
	Banner    string
	Version   string
	Author    string
	Line      string
	License   string
	Prompt    string
	MultiArgs bool
}

// New creates a Repl with the given banner configuration.
func New(banner, version, author, line, license, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

// PrintBannerInfo writes the startup banner and a short usage reminder.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Type an expression or a `name <- expr` binding and press enter")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the REPL loop over reader/writer until the user exits, EOF is
// reached, or readline itself errors.
func (r *Repl) Start(reader io.Reader, writer io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          r.Prompt,
		Stdin:           io.NopCloser(reader),
		Stdout:          writer,
		HistoryFile:     "",
		InterruptPrompt: "^C",
		EOFPrompt:       ".exit",
	})
	if err != nil {
		redColor.Fprintf(writer, "[REPL ERROR] %v\n", err)
		return
	}
	defer rl.Close()

	evalCtx := ctx.New()
	p := parser.New()
	p.MultiArgs = r.MultiArgs

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good bye!\n"))
			return
		}

		line = strings.Trim(line, " \t\r\n")
		if line == "" {
			continue
		}
		if line == ".exit" {
			writer.Write([]byte("Good bye!\n"))
			return
		}

		rl.SaveHistory(line)
		r.executeWithRecovery(writer, line, evalCtx, p)
	}
}

// executeWithRecovery lexes, parses and evaluates one line. Unlike file
// execution, a failing line never ends the session: the error is printed
// and the loop continues.
func (r *Repl) executeWithRecovery(writer io.Writer, line string, evalCtx *ctx.EvalContext, p *parser.ParseContext) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(writer, "[RUNTIME ERROR] %v\n", recovered)
		}
	}()

	statements, err := lexer.Lex(line)
	if err != nil {
		redColor.Fprintf(writer, "%s\n", err)
		return
	}

	for _, tokens := range statements {
		parsed, err := p.Parse(tokens, evalCtx)
		if err != nil {
			redColor.Fprintf(writer, "%s\n", err)
			return
		}
		if parsed == nil {
			continue // binding statement, nothing to print
		}

		result, err := eval.Evaluate(parsed, evalCtx)
		if err != nil {
			redColor.Fprintf(writer, "%s\n", err)
			return
		}
		yellowColor.Fprintf(writer, "%s\n", stripOuterParens(result.String()))
	}
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
