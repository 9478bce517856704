// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package hwlib provides a library of reusable parts for logicsim.
//
// Every part is added to an existing circuit: it takes the nodes to read and
// returns the nodes it drives.
//
// Copyright 2018 Denis Bernard <db047h@gmail.com>
//
// This package is licensed under the MIT license. See license text in the LICENSE file.
//
package hwlib

import (
	"github.com/db47h/logicsim"
	"github.com/pkg/errors"
)

func gate(c *logicsim.Circuit, k logicsim.Kind, in ...logicsim.NodeID) (logicsim.NodeID, error) {
	_, out, err := c.AddGate(k, in...)
	return out, err
}

// Not adds a NOT gate.
//
//	Function: out = !in
//
func Not(c *logicsim.Circuit, in logicsim.NodeID) (logicsim.NodeID, error) {
	return gate(c, logicsim.NOT, in)
}

// Buf adds a buffer.
//
//	Function: out = in
//
func Buf(c *logicsim.Circuit, in logicsim.NodeID) (logicsim.NodeID, error) {
	return gate(c, logicsim.BUF, in)
}

// And adds an AND gate.
//
//	Function: out = a && b
//
func And(c *logicsim.Circuit, a, b logicsim.NodeID) (logicsim.NodeID, error) {
	return gate(c, logicsim.AND, a, b)
}

// Nand adds a NAND gate.
//
//	Function: out = !(a && b)
//
func Nand(c *logicsim.Circuit, a, b logicsim.NodeID) (logicsim.NodeID, error) {
	return gate(c, logicsim.NAND, a, b)
}

// Or adds an OR gate.
//
//	Function: out = a || b
//
func Or(c *logicsim.Circuit, a, b logicsim.NodeID) (logicsim.NodeID, error) {
	return gate(c, logicsim.OR, a, b)
}

// Nor adds a NOR gate.
//
//	Function: out = !(a || b)
//
func Nor(c *logicsim.Circuit, a, b logicsim.NodeID) (logicsim.NodeID, error) {
	return gate(c, logicsim.NOR, a, b)
}

// Xor adds a XOR gate.
//
//	Function: out = a != b
//
func Xor(c *logicsim.Circuit, a, b logicsim.NodeID) (logicsim.NodeID, error) {
	return gate(c, logicsim.XOR, a, b)
}

// Xnor adds a XNOR gate.
//
//	Function: out = a == b
//
func Xnor(c *logicsim.Circuit, a, b logicsim.NodeID) (logicsim.NodeID, error) {
	return gate(c, logicsim.XNOR, a, b)
}

// GateN applies a two input gate bitwise over two buses of the same size.
//
//	Function: for i := range out { out[i] = k(a[i], b[i]) }
//
func GateN(c *logicsim.Circuit, k logicsim.Kind, a, b []logicsim.NodeID) ([]logicsim.NodeID, error) {
	if len(a) != len(b) {
		return nil, errors.Errorf("bus size mismatch: %d != %d", len(a), len(b))
	}
	out := make([]logicsim.NodeID, len(a))
	for i := range a {
		var err error
		if out[i], err = gate(c, k, a[i], b[i]); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// chain folds in with a chain of two input gates of kind k.
//
func chain(c *logicsim.Circuit, k logicsim.Kind, in []logicsim.NodeID) (logicsim.NodeID, error) {
	if len(in) == 0 {
		return logicsim.NoNode, errors.Errorf("%s with no inputs", k)
	}
	out := in[0]
	for _, n := range in[1:] {
		var err error
		if out, err = gate(c, k, out, n); err != nil {
			return logicsim.NoNode, err
		}
	}
	return out, nil
}

// AndNWay adds a N-Way AND gate. With a single input, that input is returned
// as is.
//
//	Function: out = in[0] && in[1] && in[2] && ... && in[n-1]
//
func AndNWay(c *logicsim.Circuit, in ...logicsim.NodeID) (logicsim.NodeID, error) {
	return chain(c, logicsim.AND, in)
}

// OrNWay adds a N-Way OR gate. With a single input, that input is returned as
// is.
//
//	Function: out = in[0] || in[1] || in[2] || ... || in[n-1]
//
func OrNWay(c *logicsim.Circuit, in ...logicsim.NodeID) (logicsim.NodeID, error) {
	return chain(c, logicsim.OR, in)
}
