package interp

import (
	"bytes"
	"testing"

	"smalljs/internal/ast"
	"smalljs/internal/runtime"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArgsOptions(t *testing.T) {
	opts, err := Args{LogLevel: "debug", MaxDepth: 3}.Options()
	require.NoError(t, err)

	i := New(&testPrinter{}, opts...)
	assert.Equal(t, 3, i.maxDepth)
	logger, ok := i.log.(*logrus.Logger)
	require.True(t, ok)
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())

	opts, err = Args{}.Options()
	require.NoError(t, err)
	logger = New(&testPrinter{}, opts...).log.(*logrus.Logger)
	assert.Equal(t, logrus.WarnLevel, logger.GetLevel())

	_, err = Args{LogLevel: "loud"}.Options()
	assert.Error(t, err)
}

func TestDefaults(t *testing.T) {
	i := New(&testPrinter{})
	assert.Equal(t, DefaultMaxDepth, i.maxDepth)
	assert.Equal(t, logrus.StandardLogger(), i.log)
}

func TestDebugLogging(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	program := ast.MakeProgram(ast.MakeBlock(1,
		ast.MakeFun(1, "f", []string{"a"}, ast.MakeBlock(1, printCall(2, ast.MakeVar(2, "a")))),
		ast.MakeCall(4, ast.MakeVar(4, "f"), ast.MakeString(4, "hello")),
	))
	program.Path = "/tmp/hello.yaml"
	require.NoError(t, Run(program, &testPrinter{}, WithLogger(logger)))

	messages := lo.Map(hook.AllEntries(), func(e *logrus.Entry, _ int) string {
		return e.Message
	})
	assert.Equal(t, []string{"run started", "invoke", "invoke", "print called", "run finished"}, messages)

	invoke := hook.AllEntries()[1]
	assert.Equal(t, "f", invoke.Data["fn"])
	assert.Equal(t, 4, invoke.Data["line"])
	assert.Equal(t, 1, invoke.Data["args"])
	assert.Equal(t, "/tmp/hello.yaml", invoke.Data["path"])

	printed := hook.AllEntries()[3]
	assert.Equal(t, "hello", printed.Data["args"])
}

func TestDebugLoggingOnFailure(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	err := Run(ast.MakeProgram(ast.MakeBlock(1, ast.MakeCall(3, ast.MakeVar(3, "nothing")))), &testPrinter{}, WithLogger(logger))
	require.ErrorIs(t, err, runtime.ErrNotAFunction)

	last := hook.LastEntry()
	require.NotNil(t, last)
	assert.Equal(t, "run failed", last.Message)
	assert.Equal(t, err, last.Data[logrus.ErrorKey])
	assert.Equal(t, 3, last.Data["line"])
}

func TestLoggingAboveDebugIsQuiet(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.WarnLevel)

	require.NoError(t, Run(ast.MakeProgram(ast.MakeBlock(1, printCall(1, ast.MakeInt(1, 1)))), &testPrinter{}, WithLogger(logger)))
	assert.Empty(t, hook.AllEntries())
}

func TestWriterPrinter(t *testing.T) {
	var out bytes.Buffer
	program := ast.MakeProgram(ast.MakeBlock(1,
		printCall(1, ast.MakeString(1, "a"), ast.MakeInt(1, 1)),
		printCall(2, ast.MakeString(2, "b")),
	))
	assert.True(t, RunProgramWithPrinter(program, NewWriterPrinter(&out)))
	assert.Equal(t, "a 1\nb\n", out.String())
}
