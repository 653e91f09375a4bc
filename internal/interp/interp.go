package interp

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"smalljs/internal/ast"
	"smalljs/internal/runtime"

	"github.com/sirupsen/logrus"
)

// IPrinter printer interface
type IPrinter interface {
	Println(a ...interface{}) (n int, err error)
	Fprintf(w io.Writer, format string, a ...interface{}) (n int, err error)
	Fprintln(w io.Writer, a ...interface{}) (n int, err error)
}

// DefaultMaxDepth bounds nested invocations unless configured otherwise.
const DefaultMaxDepth = 10000

// Args configures an interpreter from flags or the environment.
type Args struct {
	LogLevel string `arg:"--log-level,env:SMALLJS_LOG_LEVEL" default:"warning" help:"log level: trace, debug, info, warning, error"`
	MaxDepth int    `arg:"--max-depth,env:SMALLJS_MAX_DEPTH" default:"10000" help:"maximum call depth, 0 for unlimited"`
}

// Options turns parsed arguments into interpreter options.
func (a Args) Options() ([]Option, error) {
	levelName := a.LogLevel
	if levelName == "" {
		levelName = "warning"
	}
	level, err := logrus.ParseLevel(levelName)
	if err != nil {
		return nil, err
	}
	logger := logrus.New()
	logger.SetLevel(level)
	return []Option{WithLogger(logger), WithMaxDepth(a.MaxDepth)}, nil
}

type Option func(*Interpreter)

func WithLogger(log logrus.FieldLogger) Option {
	return func(i *Interpreter) {
		i.log = log
	}
}

// WithMaxDepth sets the call depth guard, 0 disables it.
func WithMaxDepth(depth int) Option {
	return func(i *Interpreter) {
		i.maxDepth = depth
	}
}

// Interpreter evaluates programs. Each Run gets a fresh global environment, so
// one Interpreter may run many programs, one at a time.
type Interpreter struct {
	printer  IPrinter
	log      logrus.FieldLogger
	maxDepth int
}

func New(p IPrinter, opts ...Option) *Interpreter {
	i := &Interpreter{
		printer:  p,
		log:      logrus.StandardLogger(),
		maxDepth: DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Run evaluates program against a fresh global environment. Any failure is
// returned as is, a *runtime.Failure for evaluation errors.
func (i *Interpreter) Run(program *ast.Program) error {
	log := i.log
	if program.Path != "" {
		log = log.WithField("path", program.Path)
	}
	globals := runtime.NewEnv(nil)
	defineGlobals(globals, i.printer, log)
	e := &exec{
		log:      log,
		maxDepth: i.maxDepth,
	}

	start := time.Now()
	log.Debug("run started")
	c, err := e.visitBlock(program.Body, globals)
	if err == nil && c.returning {
		err = runtime.Failf(c.line, runtime.ErrReturnOutsideFunction, "%s", c.value)
	}
	if err != nil {
		entry := log.WithError(err)
		var failure *runtime.Failure
		if errors.As(err, &failure) {
			entry = entry.WithField("line", failure.Line)
		}
		entry.Debug("run failed")
		return err
	}
	log.WithField("elapsed", time.Since(start)).Debug("run finished")
	return nil
}

// Run evaluates program on a fresh interpreter writing print output to p.
func Run(program *ast.Program, p IPrinter, opts ...Option) error {
	return New(p, opts...).Run(program)
}

// RunProgramWithPrinter runs program and reports a failure through p.
// It returns true when the program ran to completion.
func RunProgramWithPrinter(program *ast.Program, p IPrinter, opts ...Option) bool {
	err := Run(program, p, opts...)
	if err == nil {
		return true
	}
	var failure *runtime.Failure
	if errors.As(err, &failure) {
		p.Fprintf(os.Stderr, "Runtime Error on line %d\n\t%s\n", failure.Line, failure.Message())
	} else {
		p.Fprintln(os.Stderr, err)
	}
	return false
}

// NewWriterPrinter returns a printer sending program output to out.
func NewWriterPrinter(out io.Writer) IPrinter {
	return writerPrinter{out: out}
}

type writerPrinter struct {
	out io.Writer
}

func (p writerPrinter) Println(a ...interface{}) (n int, err error) {
	return fmt.Fprintln(p.out, a...)
}

func (p writerPrinter) Fprintf(w io.Writer, format string, a ...interface{}) (n int, err error) {
	return fmt.Fprintf(w, format, a...)
}

func (p writerPrinter) Fprintln(w io.Writer, a ...interface{}) (n int, err error) {
	return fmt.Fprintln(w, a...)
}
