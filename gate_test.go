// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicsim_test

import (
	"testing"
	"testing/quick"

	hw "github.com/db47h/logicsim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	L = hw.Low
	H = hw.High
	X = hw.Unknown
)

func TestSignal(t *testing.T) {
	assert.Equal(t, X, hw.Signal(0), "zero value")
	assert.Equal(t, H, hw.FromBool(true))
	assert.Equal(t, L, hw.FromBool(false))

	for _, td := range []struct {
		s      hw.Signal
		not    hw.Signal
		toggle hw.Signal
		str    string
		known  bool
	}{
		{L, H, H, "0", true},
		{H, L, L, "1", true},
		{X, X, H, "X", false},
	} {
		assert.Equal(t, td.not, td.s.Not(), "Not(%v)", td.s)
		assert.Equal(t, td.toggle, td.s.Toggle(), "Toggle(%v)", td.s)
		assert.Equal(t, td.str, td.s.String())
		assert.Equal(t, td.known, td.s.Known())
		v, ok := td.s.Bool()
		assert.Equal(t, td.known, ok)
		assert.Equal(t, td.s == H, v)
	}
	assert.Equal(t, "?", hw.Signal(42).String())
}

// truth tables, indexed by [a][b] in Low, High, Unknown order.
var truth = map[hw.Kind][3][3]hw.Signal{
	hw.AND: {
		{L, L, L},
		{L, H, X},
		{L, X, X},
	},
	hw.NAND: {
		{H, H, H},
		{H, L, X},
		{H, X, X},
	},
	hw.OR: {
		{L, H, X},
		{H, H, H},
		{X, H, X},
	},
	hw.NOR: {
		{H, L, X},
		{L, L, L},
		{X, L, X},
	},
	hw.XOR: {
		{L, H, X},
		{H, L, X},
		{X, X, X},
	},
	hw.XNOR: {
		{H, L, X},
		{L, H, X},
		{X, X, X},
	},
}

var sigs = [...]hw.Signal{L, H, X}

func TestKind_Eval(t *testing.T) {
	for k, tt := range truth {
		for i, a := range sigs {
			for j, b := range sigs {
				assert.Equal(t, tt[i][j], k.Eval(a, b), "%v(%v, %v)", k, a, b)
			}
		}
	}
	for _, b := range sigs {
		assert.Equal(t, H, hw.NOT.Eval(L, b))
		assert.Equal(t, L, hw.NOT.Eval(H, b))
		assert.Equal(t, X, hw.NOT.Eval(X, b))
		assert.Equal(t, L, hw.BUF.Eval(L, b))
		assert.Equal(t, H, hw.BUF.Eval(H, b))
		assert.Equal(t, X, hw.BUF.Eval(X, b))
	}
	assert.Equal(t, X, hw.Kind(200).Eval(H, H))
}

// Known inputs must behave like plain boolean logic.
//
func TestKind_Eval_bool(t *testing.T) {
	fns := map[hw.Kind]func(a, b bool) bool{
		hw.AND:  func(a, b bool) bool { return a && b },
		hw.OR:   func(a, b bool) bool { return a || b },
		hw.XOR:  func(a, b bool) bool { return a != b },
		hw.NAND: func(a, b bool) bool { return !(a && b) },
		hw.NOR:  func(a, b bool) bool { return !(a || b) },
		hw.XNOR: func(a, b bool) bool { return a == b },
	}
	for k, fn := range fns {
		k, fn := k, fn
		f := func(a, b bool) bool {
			return k.Eval(hw.FromBool(a), hw.FromBool(b)) == hw.FromBool(fn(a, b))
		}
		if err := quick.Check(f, nil); err != nil {
			t.Errorf("%v: %v", k, err)
		}
	}
}

func TestKind_Eval_commutative(t *testing.T) {
	for _, k := range hw.Kinds() {
		if k.Arity() != 2 {
			continue
		}
		for _, a := range sigs {
			for _, b := range sigs {
				assert.Equal(t, k.Eval(a, b), k.Eval(b, a), "%v(%v, %v)", k, a, b)
			}
		}
	}
}

func TestParseKind(t *testing.T) {
	for _, k := range hw.Kinds() {
		p, err := hw.ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, p)
		assert.True(t, k.Valid())
	}
	k, err := hw.ParseKind(" nand ")
	require.NoError(t, err)
	assert.Equal(t, hw.NAND, k)

	_, err = hw.ParseKind("MAYBE")
	assert.Error(t, err)

	assert.False(t, hw.Kind(100).Valid())
	assert.Equal(t, "Kind(100)", hw.Kind(100).String())
	assert.Equal(t, 1, hw.NOT.Arity())
	assert.Equal(t, 1, hw.BUF.Arity())
	assert.Equal(t, 2, hw.XOR.Arity())
}
