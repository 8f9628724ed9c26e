// Package repl implements the interactive Read-Eval-Print Loop of the
// terminus CLI. Each line is parsed and evaluated against a persistent
// root scope, so functions installed with def stay available across
// lines. The loop uses the readline library for history and line
// editing and colors its output for readability.
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/mlaass/terminus/eval"
	"github.com/mlaass/terminus/parser"
)

// Color definitions for REPL output
var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl is one interactive session and its configuration.
type Repl struct {
	Banner  string // banner displayed at startup
	Version string // version string shown under the banner
	Prompt  string // prompt shown to the user (e.g., "tm> ")
	Line    string // separator line for visual formatting
}

// NewRepl creates a REPL with the given banner, version, and prompt.
func NewRepl(banner, version, prompt string) *Repl {
	return &Repl{
		Banner:  banner,
		Version: version,
		Prompt:  prompt,
		Line:    strings.Repeat("-", 56),
	}
}

// printBannerInfo displays the welcome banner and usage instructions.
func (r *Repl) printBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintf(writer, "Version: %s\n", r.Version)
	cyanColor.Fprintln(writer, "Enter an expression, :help for help, :quit to leave.")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// printHelp lists the REPL commands.
func (r *Repl) printHelp(writer io.Writer) {
	cyanColor.Fprintln(writer, "Commands:")
	cyanColor.Fprintln(writer, "  :help   show this help")
	cyanColor.Fprintln(writer, "  :quit   leave the REPL")
	cyanColor.Fprintln(writer, "Anything else is evaluated as an expression.")
	cyanColor.Fprintln(writer, "def('name', ['params'], 'body') installs a function for later lines.")
}

// Run drives the interactive loop until :quit, EOF, or a read error.
// The same evaluator serves every line, so scope contents persist.
func (r *Repl) Run(writer io.Writer) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          r.Prompt,
		InterruptPrompt: "^C",
		EOFPrompt:       ":quit",
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	r.printBannerInfo(writer)
	evaluator := eval.NewEvaluator()

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		line = strings.TrimSpace(line)
		switch {
		case line == "":
			continue
		case line == ":quit" || line == ":exit":
			cyanColor.Fprintln(writer, "bye")
			return nil
		case line == ":help":
			r.printHelp(writer)
			continue
		}

		r.evalLine(writer, evaluator, line)
	}
}

// evalLine parses and evaluates one input line, printing the result or
// the error.
func (r *Repl) evalLine(writer io.Writer, evaluator *eval.Evaluator, line string) {
	tree, err := parser.Parse(line)
	if err != nil {
		redColor.Fprintf(writer, "%v\n", err)
		return
	}
	result, err := evaluator.Evaluate(tree)
	if err != nil {
		redColor.Fprintf(writer, "%v\n", err)
		return
	}
	yellowColor.Fprintln(writer, result.ToString())
}
