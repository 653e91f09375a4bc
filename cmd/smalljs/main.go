package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"smalljs/internal/ast"
	"smalljs/internal/interp"
	"smalljs/internal/suite"

	"github.com/alexflint/go-arg"
	"github.com/labstack/gommon/color"
)

type stdPrinter struct{}

func (s stdPrinter) Println(a ...interface{}) (n int, err error) {
	return fmt.Println(a...)
}

// Fprintf is only used to report failures, which are shown in red.
func (s stdPrinter) Fprintf(w io.Writer, format string, a ...interface{}) (n int, err error) {
	return fmt.Fprint(w, color.Red(fmt.Sprintf(format, a...)))
}

func (s stdPrinter) Fprintln(w io.Writer, a ...interface{}) (n int, err error) {
	return fmt.Fprintln(w, color.Red(fmt.Sprint(a...)))
}

type runCmd struct {
	File string `arg:"positional,required" help:"program document, YAML or JSON"`
}

type treeCmd struct {
	File string `arg:"positional,required" help:"program document, YAML or JSON"`
}

type testCmd struct {
	Dir string `arg:"positional" default:"." help:"directory of fixture documents"`
	suite.Args
}

type cli struct {
	Run  *runCmd  `arg:"subcommand:run" help:"evaluate a program"`
	Tree *treeCmd `arg:"subcommand:tree" help:"print the syntax tree of a program"`
	Test *testCmd `arg:"subcommand:test" help:"run fixture programs and compare their output"`

	interp.Args
	NoColor bool `arg:"--no-color" help:"print failures without color, also set by NO_COLOR"`
}

func (cli) Description() string {
	return "smalljs evaluates programs given as syntax tree documents\n"
}

func main() {
	var args cli
	p := arg.MustParse(&args)
	if _, set := os.LookupEnv("NO_COLOR"); set || args.NoColor {
		color.Disable()
	}

	opts, err := args.Options()
	if err != nil {
		p.Fail(err.Error())
	}

	var ok bool
	switch {
	case args.Run != nil:
		ok = runFile(args.Run.File, opts)
	case args.Tree != nil:
		ok = printTree(args.Tree.File)
	case args.Test != nil:
		ok = runSuite(args.Test, opts)
	default:
		p.Fail("missing subcommand: run, tree or test")
	}
	if !ok {
		os.Exit(1)
	}
}

func runFile(path string, opts []interp.Option) bool {
	program, err := ast.LoadFile(path)
	if err != nil {
		stdPrinter{}.Fprintln(os.Stderr, err)
		return false
	}
	return interp.RunProgramWithPrinter(program, stdPrinter{}, opts...)
}

func printTree(path string) bool {
	program, err := ast.LoadFile(path)
	if err != nil {
		stdPrinter{}.Fprintln(os.Stderr, err)
		return false
	}
	fmt.Print(ast.PrintProgram(program))
	return true
}

func runSuite(cmd *testCmd, opts []interp.Option) bool {
	cases, err := suite.Load(cmd.Dir)
	if err != nil {
		stdPrinter{}.Fprintln(os.Stderr, err)
		return false
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	results, err := suite.Run(ctx, cases, cmd.Args, opts...)
	if err != nil {
		stdPrinter{}.Fprintln(os.Stderr, err)
		return false
	}

	for _, result := range results {
		if result.Passed() {
			fmt.Printf("%s %s\n", color.Green("PASS"), result.Case.Name)
			continue
		}
		fmt.Printf("%s %s (%s)\n\t%s\n", color.Red("FAIL"), result.Case.Name, result.Case.Path, result.Problem())
	}
	failed := len(suite.Failed(results))
	fmt.Printf("%d passed, %d failed\n", len(results)-failed, failed)
	return failed == 0
}
