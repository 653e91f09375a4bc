package interp

import (
	"smalljs/internal/ast"
	"smalljs/internal/runtime"

	"github.com/sirupsen/logrus"
)

type exec struct {
	log logrus.FieldLogger

	depth    int
	maxDepth int
}

func (e *exec) evaluate(expr ast.Expr, env *runtime.Env) (completion, error) {
	switch expr := expr.(type) {
	case *ast.Block:
		return e.visitBlock(expr, env)
	case *ast.Literal:
		return e.visitLiteral(expr)
	case *ast.FunCall:
		return e.visitFunCall(expr, env)
	case *ast.LocalVarAccess:
		return normal(env.Lookup(expr.Name)), nil
	case *ast.LocalVarAssignment:
		return e.visitLocalVarAssignment(expr, env)
	case *ast.Fun:
		return e.visitFun(expr, env)
	case *ast.Return:
		return e.visitReturn(expr, env)
	case *ast.If:
		return e.visitIf(expr, env)
	case *ast.New:
		return e.visitNew(expr, env)
	case *ast.FieldAccess:
		return e.visitFieldAccess(expr, env)
	case *ast.FieldAssignment:
		return e.visitFieldAssignment(expr, env)
	case *ast.MethodCall:
		return e.visitMethodCall(expr, env)
	case nil:
		return completion{}, runtime.Failf(0, runtime.ErrUnknownNode, "nil expression")
	}
	return completion{}, runtime.Failf(expr.Line(), runtime.ErrUnknownNode, "%T", expr)
}

// visitBlock runs each instruction in env itself; blocks open no scope.
func (e *exec) visitBlock(block *ast.Block, env *runtime.Env) (completion, error) {
	if block == nil {
		return normal(runtime.Undefined), nil
	}
	for _, instr := range block.Instrs {
		c, err := e.evaluate(instr, env)
		if err != nil || c.returning {
			return c, err
		}
	}
	return normal(runtime.Undefined), nil
}

func (e *exec) visitLiteral(expr *ast.Literal) (completion, error) {
	if expr.Value == nil {
		return normal(runtime.Undefined), nil
	}
	return normal(expr.Value), nil
}

func (e *exec) visitFunCall(expr *ast.FunCall, env *runtime.Env) (completion, error) {
	callee, err := e.evaluate(expr.Callee, env)
	if err != nil || callee.returning {
		return callee, err
	}
	fn, isFn := callee.value.(*runtime.Function)
	if !isFn {
		return completion{}, runtime.Failf(expr.Line(), runtime.ErrNotAFunction, "%s", callee.value)
	}
	arguments, c, err := e.arguments(expr.Args, env)
	if err != nil || c.returning {
		return c, err
	}
	return e.invoke(fn, runtime.Undefined, arguments, expr.Line())
}

// arguments evaluates exprs left to right. A returning completion stops the
// evaluation and is handed back to the caller.
func (e *exec) arguments(exprs []ast.Expr, env *runtime.Env) ([]runtime.Value, completion, error) {
	values := make([]runtime.Value, len(exprs))
	for i, arg := range exprs {
		c, err := e.evaluate(arg, env)
		if err != nil || c.returning {
			return nil, c, err
		}
		values[i] = c.value
	}
	return values, completion{}, nil
}

func (e *exec) invoke(fn *runtime.Function, receiver runtime.Value, arguments []runtime.Value, line int) (completion, error) {
	if e.maxDepth > 0 && e.depth >= e.maxDepth {
		return completion{}, runtime.Failf(line, runtime.ErrStackExhausted, "%s, depth %d", fn.Name, e.depth)
	}
	e.depth++
	defer func() {
		e.depth--
	}()

	e.log.WithFields(logrus.Fields{
		"fn":    fn.Name,
		"line":  line,
		"args":  len(arguments),
		"depth": e.depth,
	}).Debug("invoke")

	value, err := fn.Invoke(receiver, arguments)
	if err != nil {
		return completion{}, runtime.AtLine(err, line)
	}
	return normal(value), nil
}

func (e *exec) visitLocalVarAssignment(expr *ast.LocalVarAssignment, env *runtime.Env) (completion, error) {
	c, err := e.evaluate(expr.Expr, env)
	if err != nil || c.returning {
		return c, err
	}
	if expr.Declaration {
		if err := env.Declare(expr.Name, c.value); err != nil {
			return completion{}, runtime.AtLine(err, expr.Line())
		}
	} else {
		env.Assign(expr.Name, c.value)
	}
	return normal(c.value), nil
}

func (e *exec) visitFun(expr *ast.Fun, env *runtime.Env) (completion, error) {
	fn := runtime.NewFunction(expr.Name.OrElse("lambda"), &function{
		exec:        e,
		declaration: expr,
		closure:     env,
	})
	if name, ok := expr.Name.Get(); ok {
		env.Assign(name, fn)
	}
	return normal(fn), nil
}

func (e *exec) visitReturn(expr *ast.Return, env *runtime.Env) (completion, error) {
	c, err := e.evaluate(expr.Expr, env)
	if err != nil || c.returning {
		return c, err
	}
	return returning(c.value, expr.Line()), nil
}

func (e *exec) visitIf(expr *ast.If, env *runtime.Env) (completion, error) {
	condition, err := e.evaluate(expr.Condition, env)
	if err != nil || condition.returning {
		return condition, err
	}
	branch := expr.Else
	if runtime.Truthy(condition.value) {
		branch = expr.Then
	}
	c, err := e.visitBlock(branch, env)
	if err != nil || c.returning {
		return c, err
	}
	return normal(runtime.Undefined), nil
}

func (e *exec) visitNew(expr *ast.New, env *runtime.Env) (completion, error) {
	object := runtime.NewObject()
	for _, field := range expr.Fields {
		c, err := e.evaluate(field.Expr, env)
		if err != nil || c.returning {
			return c, err
		}
		object.SetField(field.Name, c.value)
	}
	return normal(object), nil
}

func (e *exec) visitFieldAccess(expr *ast.FieldAccess, env *runtime.Env) (completion, error) {
	receiver, err := e.evaluate(expr.Receiver, env)
	if err != nil || receiver.returning {
		return receiver, err
	}
	holder, err := asFieldHolder(receiver.value, expr.Name, expr.Line())
	if err != nil {
		return completion{}, err
	}
	return normal(holder.Field(expr.Name)), nil
}

func (e *exec) visitFieldAssignment(expr *ast.FieldAssignment, env *runtime.Env) (completion, error) {
	receiver, err := e.evaluate(expr.Receiver, env)
	if err != nil || receiver.returning {
		return receiver, err
	}
	holder, err := asFieldHolder(receiver.value, expr.Name, expr.Line())
	if err != nil {
		return completion{}, err
	}
	c, err := e.evaluate(expr.Expr, env)
	if err != nil || c.returning {
		return c, err
	}
	holder.SetField(expr.Name, c.value)
	return normal(c.value), nil
}

func (e *exec) visitMethodCall(expr *ast.MethodCall, env *runtime.Env) (completion, error) {
	receiver, err := e.evaluate(expr.Receiver, env)
	if err != nil || receiver.returning {
		return receiver, err
	}
	holder, err := asFieldHolder(receiver.value, expr.Name, expr.Line())
	if err != nil {
		return completion{}, err
	}
	method, isFn := holder.Field(expr.Name).(*runtime.Function)
	if !isFn {
		return completion{}, runtime.Failf(expr.Line(), runtime.ErrNotAFunction, "%s.%s", receiver.value, expr.Name)
	}
	arguments, c, err := e.arguments(expr.Args, env)
	if err != nil || c.returning {
		return c, err
	}
	return e.invoke(method, receiver.value, arguments, expr.Line())
}

func asFieldHolder(value runtime.Value, name string, line int) (runtime.FieldHolder, error) {
	holder, ok := value.(runtime.FieldHolder)
	if !ok {
		return nil, runtime.Failf(line, runtime.ErrNotAnObject, "%s has no field %s", value, name)
	}
	return holder, nil
}
