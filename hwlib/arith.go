// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import (
	"strconv"

	"github.com/db47h/logicsim"
	"github.com/pkg/errors"
)

// HalfAdder adds a half adder.
//
//	Inputs: a, b
//	Outputs: s, c
//	Function: s = lsb(a + b)
//	          c = msb(a + b)
//
func HalfAdder(c *logicsim.Circuit, a, b logicsim.NodeID) (s, carry logicsim.NodeID, err error) {
	if s, err = Xor(c, a, b); err != nil {
		return logicsim.NoNode, logicsim.NoNode, err
	}
	if carry, err = And(c, a, b); err != nil {
		return logicsim.NoNode, logicsim.NoNode, err
	}
	return s, carry, nil
}

// FullAdder adds a full adder made of two half adders.
//
//	Inputs: a, b, cin
//	Outputs: s, cout
//	Function: s = lsb(a + b + cin)
//	          cout = msb(a + b + cin)
//
func FullAdder(c *logicsim.Circuit, a, b, cin logicsim.NodeID) (s, cout logicsim.NodeID, err error) {
	s0, c0, err := HalfAdder(c, a, b)
	if err != nil {
		return logicsim.NoNode, logicsim.NoNode, err
	}
	s, c1, err := HalfAdder(c, s0, cin)
	if err != nil {
		return logicsim.NoNode, logicsim.NoNode, err
	}
	if cout, err = Or(c, c0, c1); err != nil {
		return logicsim.NoNode, logicsim.NoNode, err
	}
	return s, cout, nil
}

func checkOperands(a, b []logicsim.NodeID) error {
	if len(a) == 0 {
		return errors.New("empty operands")
	}
	if len(a) != len(b) {
		return errors.Errorf("operand size mismatch: %d != %d", len(a), len(b))
	}
	return nil
}

// RippleCarry adds a ripple-carry adder: a chain of full adders where the
// carry out of bit i feeds the carry in of bit i+1. Buses are ordered lsb
// first.
//
// If cin is logicsim.NoNode, the carry in is hardwired to Low and bit 0 is a
// half adder.
//
//	Inputs: a[n], b[n], cin
//	Outputs: s[n], cout
//	Function: s = a + b + cin mod 2^n
//	          cout = (a + b + cin) >> n
//
func RippleCarry(c *logicsim.Circuit, a, b []logicsim.NodeID, cin logicsim.NodeID) (s []logicsim.NodeID, cout logicsim.NodeID, err error) {
	if err = checkOperands(a, b); err != nil {
		return nil, logicsim.NoNode, err
	}
	s = make([]logicsim.NodeID, len(a))
	i := 0
	cout = cin
	if cin == logicsim.NoNode {
		if s[0], cout, err = HalfAdder(c, a[0], b[0]); err != nil {
			return nil, logicsim.NoNode, err
		}
		i++
	}
	for ; i < len(a); i++ {
		if s[i], cout, err = FullAdder(c, a[i], b[i], cout); err != nil {
			return nil, logicsim.NoNode, errors.Wrap(err, "bit "+strconv.Itoa(i))
		}
	}
	return s, cout, nil
}

// LookaheadCarry adds a carry-lookahead adder with the same function as
// RippleCarry. Each carry is computed directly from the generate (a&b) and
// propagate (a^b) terms of the lower bits:
//
//	c[i+1] = g[i] || p[i]&&g[i-1] || ... || p[i]&&...&&p[0]&&cin
//
// The gate count grows with the square of the bus size.
//
func LookaheadCarry(c *logicsim.Circuit, a, b []logicsim.NodeID, cin logicsim.NodeID) (s []logicsim.NodeID, cout logicsim.NodeID, err error) {
	if err = checkOperands(a, b); err != nil {
		return nil, logicsim.NoNode, err
	}
	n := len(a)
	p, err := GateN(c, logicsim.XOR, a, b)
	if err != nil {
		return nil, logicsim.NoNode, err
	}
	g, err := GateN(c, logicsim.AND, a, b)
	if err != nil {
		return nil, logicsim.NoNode, err
	}

	carry := make([]logicsim.NodeID, n+1)
	carry[0] = cin
	for i := 1; i <= n; i++ {
		// terms of c[i]: g[j] && p[j+1] && ... && p[i-1] for j < i, then cin && p[0..i-1].
		terms := make([]logicsim.NodeID, 0, i+1)
		for j := i - 1; j >= 0; j-- {
			t, err := AndNWay(c, append([]logicsim.NodeID{g[j]}, p[j+1:i]...)...)
			if err != nil {
				return nil, logicsim.NoNode, err
			}
			terms = append(terms, t)
		}
		if cin != logicsim.NoNode {
			t, err := AndNWay(c, append([]logicsim.NodeID{cin}, p[:i]...)...)
			if err != nil {
				return nil, logicsim.NoNode, err
			}
			terms = append(terms, t)
		}
		if carry[i], err = OrNWay(c, terms...); err != nil {
			return nil, logicsim.NoNode, err
		}
	}

	s = make([]logicsim.NodeID, n)
	for i := range s {
		if carry[i] == logicsim.NoNode {
			s[i] = p[i]
			continue
		}
		if s[i], err = Xor(c, p[i], carry[i]); err != nil {
			return nil, logicsim.NoNode, err
		}
	}
	return s, carry[n], nil
}

// Pin names used by NewAdder.
//
const (
	PinA    = "A"
	PinB    = "B"
	PinS    = "S"
	PinCin  = "Cin"
	PinCout = "Cout"
)

// Adder is a circuit adding two unsigned integers.
//
// Its input pins are named A[i], B[i] and Cin, its outputs S[i] and Cout.
// Bit 0 is the lsb.
//
type Adder struct {
	*logicsim.Circuit
	Bits int
	A    []logicsim.NodeID
	B    []logicsim.NodeID
	S    []logicsim.NodeID
	Cin  logicsim.NodeID // NoNode when built WithoutCarryIn
	Cout logicsim.NodeID
}

type adderConfig struct {
	carryIn   bool
	lookahead bool
	opts      []logicsim.Option
}

// An AdderOption configures NewAdder.
//
type AdderOption func(*adderConfig)

// WithoutCarryIn builds an adder with no Cin pin: the carry in is hardwired to
// Low.
//
func WithoutCarryIn() AdderOption {
	return func(cfg *adderConfig) { cfg.carryIn = false }
}

// WithLookahead builds a carry-lookahead adder instead of a ripple-carry one.
//
func WithLookahead() AdderOption {
	return func(cfg *adderConfig) { cfg.lookahead = true }
}

// WithCircuitOptions passes options to logicsim.New.
//
func WithCircuitOptions(opts ...logicsim.Option) AdderOption {
	return func(cfg *adderConfig) { cfg.opts = append(cfg.opts, opts...) }
}

// NewAdder builds a new circuit with a bits wide adder. By default this is a
// ripple-carry adder with a Cin pin.
//
func NewAdder(bits int, opts ...AdderOption) (*Adder, error) {
	if bits < 1 || bits > 64 {
		return nil, errors.Errorf("invalid adder size %d", bits)
	}
	cfg := adderConfig{carryIn: true}
	for _, o := range opts {
		o(&cfg)
	}
	c := logicsim.New(cfg.opts...)
	bs := strconv.Itoa(bits)
	spec := PinA + "[" + bs + "], " + PinB + "[" + bs + "]"
	if cfg.carryIn {
		spec += ", " + PinCin
	}
	in, err := c.AddInputs(spec)
	if err != nil {
		return nil, err
	}
	add := &Adder{
		Circuit: c,
		Bits:    bits,
		A:       in[:bits],
		B:       in[bits : 2*bits],
		Cin:     logicsim.NoNode,
	}
	if cfg.carryIn {
		add.Cin = in[2*bits]
	}
	build := RippleCarry
	if cfg.lookahead {
		build = LookaheadCarry
	}
	if add.S, add.Cout, err = build(c, add.A, add.B, add.Cin); err != nil {
		return nil, err
	}
	for i, s := range add.S {
		if err = c.NameOutput(logicsim.BusPinName(PinS, i), s); err != nil {
			return nil, err
		}
	}
	if err = c.NameOutput(PinCout, add.Cout); err != nil {
		return nil, err
	}
	return add, nil
}

// Set drives the A and B buses to x and y and Cin to cin in a single
// propagation pass. It returns the nodes that changed.
//
func (a *Adder) Set(x, y uint64, cin bool) ([]logicsim.NodeID, error) {
	as := append(Assign(a.A, x), Assign(a.B, y)...)
	if a.Cin != logicsim.NoNode {
		as = append(as, logicsim.Assignment{Node: a.Cin, Value: logicsim.FromBool(cin)})
	} else if cin {
		return nil, errors.New("adder has no carry in")
	}
	return a.SetInputs(as...)
}

// Sum returns the value on the S bus and the carry out.
//
func (a *Adder) Sum() (sum uint64, carry bool, err error) {
	if sum, err = Uint(a.Circuit, a.S); err != nil {
		return 0, false, err
	}
	cs, err := a.Get(a.Cout)
	if err != nil {
		return 0, false, err
	}
	carry, ok := cs.Bool()
	if !ok {
		return 0, false, errors.Wrap(ErrUnknownSignal, PinCout)
	}
	return sum, carry, nil
}
