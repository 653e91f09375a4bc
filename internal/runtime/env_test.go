package runtime

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnv_Declare_Lookup(t *testing.T) {
	env := NewEnv(nil)
	assert.Equal(t, Undefined, env.Lookup("var"))

	var val Value = Int(1)
	require.NoError(t, env.Declare("var", val))
	assert.Equal(t, val, env.Lookup("var"))

	err := env.Declare("var", String("again"))
	assert.Error(t, err)
	assert.True(t, errors.Is(err, ErrAlreadyDefined))
	assert.Equal(t, val, env.Lookup("var"))
}

func TestEnv_Declare_VisibleInAncestor(t *testing.T) {
	global := NewEnv(nil)
	require.NoError(t, global.Declare("x", Int(1)))
	middle := NewEnv(global)
	inner := NewEnv(middle)

	// x is not local to inner, but it is visible, so declaring it fails
	err := inner.Declare("x", Int(2))
	assert.True(t, errors.Is(err, ErrAlreadyDefined))
	assert.Equal(t, Int(1), inner.Lookup("x"))
	assert.Equal(t, Int(1), global.Lookup("x"))
}

func TestEnv_Declare_OverUndefined(t *testing.T) {
	env := NewEnv(nil)
	env.Assign("u", Undefined)
	// a name bound to Undefined is indistinguishable from an unbound one
	assert.NoError(t, env.Declare("u", Int(3)))
	assert.Equal(t, Int(3), env.Lookup("u"))
}

func TestEnv_Assign_Local(t *testing.T) {
	global := NewEnv(nil)
	global.Assign("x", Int(1))
	child := NewEnv(global)

	child.Assign("x", Int(2))
	assert.Equal(t, Int(2), child.Lookup("x"))
	assert.Equal(t, Int(1), global.Lookup("x"))
	assert.Equal(t, global, child.Parent())
	assert.Nil(t, global.Parent())
}

func TestEnv_Aliasing(t *testing.T) {
	global := NewEnv(nil)
	child := NewEnv(global)
	global.Assign("late", String("seen"))
	assert.Equal(t, String("seen"), child.Lookup("late"))

	var holder FieldHolder = global
	holder.SetField("y", Int(7))
	assert.Equal(t, Int(7), global.Lookup("y"))
	assert.Equal(t, Int(7), child.Field("y"))
}
