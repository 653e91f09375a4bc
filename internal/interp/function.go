package interp

import (
	"smalljs/internal/ast"
	"smalljs/internal/runtime"
)

// function is a user-defined closure over the environment it was created in.
type function struct {
	exec        *exec
	declaration *ast.Fun
	closure     *runtime.Env
}

func (f *function) Call(receiver runtime.Value, arguments []runtime.Value) (runtime.Value, error) {
	params := f.declaration.Params
	if len(arguments) != len(params) {
		return nil, runtime.Failf(0, runtime.ErrArity, "%s expects %d, got %d",
			f.declaration.Name.OrElse("lambda"), len(params), len(arguments))
	}

	env := runtime.NewEnv(f.closure)
	env.Assign("this", receiver)
	for i, param := range params {
		env.Assign(param, arguments[i])
	}

	c, err := f.exec.visitBlock(f.declaration.Body, env)
	if err != nil {
		return nil, err
	}
	if c.returning {
		return c.value, nil
	}
	return runtime.Undefined, nil
}
