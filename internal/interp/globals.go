package interp

import (
	"strings"

	"smalljs/internal/runtime"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
)

func defineGlobals(e *runtime.Env, p IPrinter, log logrus.FieldLogger) {
	e.Assign("global", e)
	defineIo(e, p, log)
	defineArithmetic(e)
	defineComparison(e)
}

func defineIo(e *runtime.Env, p IPrinter, log logrus.FieldLogger) {
	e.Assign("print", runtime.NewNative("print", runtime.Variadic, func(_ runtime.Value, arguments []runtime.Value) (runtime.Value, error) {
		text := strings.Join(lo.Map(arguments, func(v runtime.Value, _ int) string {
			return v.String()
		}), " ")
		log.WithField("args", text).Debug("print called")
		if _, err := p.Println(text); err != nil {
			return nil, err
		}
		return runtime.Undefined, nil
	}))
}

var arithmetic = map[string]func(a, b runtime.Int) (runtime.Int, error){
	"+": func(a, b runtime.Int) (runtime.Int, error) { return a + b, nil },
	"-": func(a, b runtime.Int) (runtime.Int, error) { return a - b, nil },
	"*": func(a, b runtime.Int) (runtime.Int, error) { return a * b, nil },
	"/": func(a, b runtime.Int) (runtime.Int, error) {
		if b == 0 {
			return 0, runtime.Failf(0, runtime.ErrDivisionByZero, "%d / 0", a)
		}
		return a / b, nil
	},
	"%": func(a, b runtime.Int) (runtime.Int, error) {
		if b == 0 {
			return 0, runtime.Failf(0, runtime.ErrDivisionByZero, "%d %% 0", a)
		}
		return a % b, nil
	},
}

func defineArithmetic(e *runtime.Env) {
	for op, apply := range arithmetic {
		e.Assign(op, runtime.NewNative(op, 2, func(_ runtime.Value, arguments []runtime.Value) (runtime.Value, error) {
			a, b, err := intOperands(op, arguments)
			if err != nil {
				return nil, err
			}
			result, err := apply(a, b)
			if err != nil {
				return nil, err
			}
			return result, nil
		}))
	}
}

func intOperands(op string, arguments []runtime.Value) (runtime.Int, runtime.Int, error) {
	a, ok := arguments[0].(runtime.Int)
	if !ok {
		return 0, 0, runtime.Failf(0, runtime.ErrType, "%s expects int operands, got %s", op, arguments[0].Kind())
	}
	b, ok := arguments[1].(runtime.Int)
	if !ok {
		return 0, 0, runtime.Failf(0, runtime.ErrType, "%s expects int operands, got %s", op, arguments[1].Kind())
	}
	return a, b, nil
}

var comparison = map[string]func(c int) bool{
	"<":  func(c int) bool { return c < 0 },
	"<=": func(c int) bool { return c <= 0 },
	">":  func(c int) bool { return c > 0 },
	">=": func(c int) bool { return c >= 0 },
}

func defineComparison(e *runtime.Env) {
	e.Assign("==", runtime.NewNative("==", 2, func(_ runtime.Value, arguments []runtime.Value) (runtime.Value, error) {
		return runtime.Bool(runtime.Equal(arguments[0], arguments[1])), nil
	}))
	e.Assign("!=", runtime.NewNative("!=", 2, func(_ runtime.Value, arguments []runtime.Value) (runtime.Value, error) {
		return runtime.Bool(!runtime.Equal(arguments[0], arguments[1])), nil
	}))
	for op, test := range comparison {
		e.Assign(op, runtime.NewNative(op, 2, func(_ runtime.Value, arguments []runtime.Value) (runtime.Value, error) {
			c, err := runtime.Compare(arguments[0], arguments[1])
			if err != nil {
				return nil, err
			}
			return runtime.Bool(test(c)), nil
		}))
	}
}
