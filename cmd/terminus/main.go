// Command terminus evaluates a terminus expression from the command
// line, optionally printing the intermediate pipeline stages.
//
// Usage:
//
//	terminus [--parse] [--rpn] [--tree] "<expression>"
//	terminus repl
//
// --parse prints the numbered token list, --rpn the RPN node stream,
// --tree the parse tree indented by depth. The evaluation result is
// always printed on the last line prefixed with "Result: ". Exit code 0
// on success, 1 on a missing expression or any pipeline error.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/mlaass/terminus/eval"
	"github.com/mlaass/terminus/lexer"
	"github.com/mlaass/terminus/parser"
	"github.com/mlaass/terminus/repl"
)

const version = "0.3.0"

const banner = `
 _                      _
| |_ ___ _ __ _ __ ___ (_)_ __  _   _ ___
| __/ _ \ '__| '_ ' _ \| | '_ \| | | / __|
| ||  __/ |  | | | | | | | | | | |_| \__ \
 \__\___|_|  |_| |_| |_|_|_| |_|\__,_|___/`

var (
	showParse bool
	showRPN   bool
	showTree  bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:           `terminus [flags] "<expression>"`,
		Short:         "Evaluate a terminus expression",
		Long:          "terminus parses an expression into a tree and evaluates it,\noptionally printing the tokens, the RPN stream, and the tree.",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runExpression,
	}
	rootCmd.Flags().BoolVar(&showParse, "parse", false, "print the numbered token list")
	rootCmd.Flags().BoolVar(&showRPN, "rpn", false, "print the RPN node stream")
	rootCmd.Flags().BoolVar(&showTree, "tree", false, "print the parse tree indented by depth")
	rootCmd.AddCommand(replCommand())

	if err := rootCmd.Execute(); err != nil {
		color.New(color.FgRed).Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// runExpression drives the pipeline stage by stage so each requested
// intermediate form can be printed before the next stage runs.
func runExpression(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("expected exactly one expression argument, got %d", len(args))
	}
	src := args[0]

	tokens, err := lexer.Tokenize(src)
	if err != nil {
		return err
	}
	if showParse {
		for i, tok := range tokens {
			fmt.Printf("%d: %s %s\n", i, tok.Type, tok.Literal)
		}
	}

	rpn, err := parser.ShuntingYard(tokens)
	if err != nil {
		return err
	}
	if showRPN {
		for _, n := range rpn {
			fmt.Println(n.Label())
		}
	}

	tree, err := parser.BuildTree(rpn)
	if err != nil {
		return err
	}
	if showTree {
		fmt.Println(tree.String())
	}

	result, err := eval.NewEvaluator().Evaluate(tree)
	if err != nil {
		return err
	}
	fmt.Printf("Result: %s\n", result.ToString())
	return nil
}

// replCommand wires the interactive loop as a subcommand.
func replCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive session",
		RunE: func(cmd *cobra.Command, args []string) error {
			return repl.NewRepl(banner, version, "tm> ").Run(os.Stdout)
		},
	}
}
