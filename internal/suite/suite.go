// Package suite runs fixture programs and checks what they print.
//
// A fixture is a YAML or JSON document:
//
//	name: counter
//	output: |
//	  1
//	  2
//	failure: not a function   # optional, must occur in the failure message
//	program: {type: Block, line: 1, instrs: [...]}
package suite

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"smalljs/internal/ast"
	"smalljs/internal/interp"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

var extensions = []string{".yaml", ".yml", ".json"}

type Args struct {
	Parallel int `arg:"--parallel,env:SMALLJS_PARALLEL" default:"4" help:"number of fixtures evaluated at once"`
}

// Case is one fixture document.
type Case struct {
	Name    string       `yaml:"name"`
	Output  string       `yaml:"output"`
	Failure string       `yaml:"failure"`
	Program *ast.Program `yaml:"program"`

	Path string `yaml:"-"`
}

// Load reads every fixture in dir, ordered by file name.
func Load(dir string) ([]*Case, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "read fixtures %s", dir)
	}
	entries = lo.Filter(entries, func(entry os.DirEntry, _ int) bool {
		return !entry.IsDir() && lo.Contains(extensions, filepath.Ext(entry.Name()))
	})

	cases := make([]*Case, 0, len(entries))
	for _, entry := range entries {
		c, err := LoadCase(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		cases = append(cases, c)
	}
	return cases, nil
}

// LoadCase reads a single fixture. A fixture without a name is named after its file.
func LoadCase(path string) (*Case, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)
	var c Case
	if err := decoder.Decode(&c); err != nil {
		return nil, errors.Wrapf(err, "load fixture %s", path)
	}
	if c.Program == nil {
		return nil, errors.Errorf("load fixture %s: missing program", path)
	}
	if c.Name == "" {
		c.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	c.Path = path
	c.Program.Path = path
	return &c, nil
}

// Result is the outcome of running one Case.
type Result struct {
	Case   *Case
	Output string
	Err    error
}

func (r Result) Passed() bool {
	return r.Problem() == ""
}

// Problem describes how the run diverged from its fixture, empty when it did not.
func (r Result) Problem() string {
	switch {
	case r.Case.Failure == "" && r.Err != nil:
		return fmt.Sprintf("unexpected failure: %v", r.Err)
	case r.Case.Failure != "" && r.Err == nil:
		return fmt.Sprintf("expected a failure containing %q", r.Case.Failure)
	case r.Case.Failure != "" && !strings.Contains(r.Err.Error(), r.Case.Failure):
		return fmt.Sprintf("failure %q does not contain %q", r.Err.Error(), r.Case.Failure)
	}
	if diff := cmp.Diff(r.Case.Output, r.Output); diff != "" {
		return "output mismatch (-want +got):\n" + diff
	}
	return ""
}

// Failed filters the results that did not pass.
func Failed(results []Result) []Result {
	return lo.Filter(results, func(r Result, _ int) bool {
		return !r.Passed()
	})
}

// Run evaluates every case on its own interpreter, at most args.Parallel at a
// time. Results keep the order of cases. Cancelling ctx stops handing out cases
// and Run returns the context error.
func Run(ctx context.Context, cases []*Case, args Args, opts ...interp.Option) ([]Result, error) {
	workers := args.Parallel
	if workers < 1 {
		workers = 1
	}

	g, ctx := errgroup.WithContext(ctx)
	indexes := make(chan int)
	g.Go(func() error {
		defer close(indexes)
		for i := range cases {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case indexes <- i:
			}
		}
		return nil
	})

	results := make([]Result, len(cases))
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			for i := range indexes {
				if err := ctx.Err(); err != nil {
					return err
				}
				results[i] = runCase(cases[i], opts)
			}
			return nil
		})
	}
	return results, g.Wait()
}

func runCase(c *Case, opts []interp.Option) Result {
	var out bytes.Buffer
	err := interp.Run(c.Program, interp.NewWriterPrinter(&out), opts...)
	return Result{
		Case:   c,
		Output: out.String(),
		Err:    err,
	}
}
