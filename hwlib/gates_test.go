// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib_test

import (
	"testing"

	hw "github.com/db47h/logicsim"
	hl "github.com/db47h/logicsim/hwlib"
	"github.com/db47h/logicsim/hwtest"
	"github.com/stretchr/testify/require"
)

func inputs(t *testing.T, c *hw.Circuit, spec string) []hw.NodeID {
	t.Helper()
	ins, err := c.AddInputs(spec)
	require.NoError(t, err)
	return ins
}

func name(t *testing.T, c *hw.Circuit, n string, id hw.NodeID, err error) {
	t.Helper()
	require.NoError(t, err)
	require.NoError(t, c.NameOutput(n, id))
}

// gateChip builds a circuit with inputs a, b and a single gate of kind k
// driving out.
//
func gateChip(t *testing.T, k hw.Kind) *hw.Circuit {
	c := hw.New(hw.WithName(k.String()))
	in := inputs(t, c, "a, b")
	_, out, err := c.AddGate(k, in...)
	name(t, c, "out", out, err)
	return c
}

func TestNand_based(t *testing.T) {
	td := map[hw.Kind]func(c *hw.Circuit, a, b hw.NodeID) (hw.NodeID, error){
		hw.AND: func(c *hw.Circuit, a, b hw.NodeID) (hw.NodeID, error) {
			n, err := hl.Nand(c, a, b)
			if err != nil {
				return n, err
			}
			return hl.Nand(c, n, n)
		},
		hw.OR: func(c *hw.Circuit, a, b hw.NodeID) (hw.NodeID, error) {
			na, _ := hl.Nand(c, a, a)
			nb, _ := hl.Nand(c, b, b)
			return hl.Nand(c, na, nb)
		},
		hw.XOR: func(c *hw.Circuit, a, b hw.NodeID) (hw.NodeID, error) {
			n, _ := hl.Nand(c, a, b)
			w0, _ := hl.Nand(c, a, n)
			w1, _ := hl.Nand(c, b, n)
			return hl.Nand(c, w0, w1)
		},
		hw.XNOR: func(c *hw.Circuit, a, b hw.NodeID) (hw.NodeID, error) {
			x, _ := hl.Xor(c, a, b)
			return hl.Not(c, x)
		},
		hw.NOR: func(c *hw.Circuit, a, b hw.NodeID) (hw.NodeID, error) {
			o, _ := hl.Or(c, a, b)
			return hl.Not(c, o)
		},
	}
	for k, build := range td {
		k, build := k, build
		t.Run(k.String(), func(t *testing.T) {
			c := hw.New()
			in := inputs(t, c, "a, b")
			out, err := build(c, in[0], in[1])
			name(t, c, "out", out, err)
			hwtest.CompareCircuits(t, gateChip(t, k), c, "out")
		})
	}
}

func TestBuf(t *testing.T) {
	c := hw.New()
	in := inputs(t, c, "a, b")
	n, err := hl.Not(c, in[0])
	require.NoError(t, err)
	n, err = hl.Not(c, n)
	require.NoError(t, err)
	out, err := hl.And(c, n, in[1])
	name(t, c, "out", out, err)

	ref := hw.New()
	in = inputs(t, ref, "a, b")
	n, err = hl.Buf(ref, in[0])
	require.NoError(t, err)
	out, err = hl.And(ref, n, in[1])
	name(t, ref, "out", out, err)

	hwtest.CompareCircuits(t, ref, c, "out")
}

func TestNWay(t *testing.T) {
	for _, k := range []hw.Kind{hw.AND, hw.OR} {
		c := hw.New()
		in := inputs(t, c, "in[5]")
		var (
			out hw.NodeID
			err error
		)
		if k == hw.AND {
			out, err = hl.AndNWay(c, in...)
		} else {
			out, err = hl.OrNWay(c, in...)
		}
		name(t, c, "out", out, err)

		// balanced tree reference
		ref := hw.New()
		in = inputs(t, ref, "in[5]")
		w0, err := hl.GateN(ref, k, in[0:2], in[2:4])
		require.NoError(t, err)
		_, w1, err := ref.AddGate(k, w0[0], w0[1])
		require.NoError(t, err)
		_, o, err := ref.AddGate(k, w1, in[4])
		name(t, ref, "out", o, err)

		hwtest.CompareCircuits(t, ref, c, "out")
	}

	c := hw.New()
	in := inputs(t, c, "a")
	out, err := hl.AndNWay(c, in...)
	require.NoError(t, err)
	require.Equal(t, in[0], out, "single input")
	require.Equal(t, 0, c.GateCount())
	_, err = hl.OrNWay(c)
	require.Error(t, err)
}

func TestGateN(t *testing.T) {
	c := hw.New()
	in := inputs(t, c, "a[3], b[2]")
	_, err := hl.GateN(c, hw.XOR, in[:3], in[3:])
	require.Error(t, err)
	_, err = hl.GateN(c, hw.NOT, in[:2], in[3:])
	require.Error(t, err, "NOT is not a two input gate")
	out, err := hl.GateN(c, hw.XOR, in[:2], in[3:])
	require.NoError(t, err)
	require.Len(t, out, 2)
}
