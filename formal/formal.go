// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package formal checks properties of logicsim circuits with a SAT solver.
//
// Circuits are encoded as and-inverter graphs (logic.C from the gini
// package), which only model the Low/High behavior of a circuit: Unknown is a
// simulation state, not a value an input can take here.
//
package formal

import (
	"sort"

	"github.com/db47h/logicsim"
	"github.com/go-air/gini"
	"github.com/go-air/gini/logic"
	"github.com/go-air/gini/z"
	"github.com/pkg/errors"
)

// Encoding maps the nodes of a circuit to literals of a logic.C.
//
type Encoding struct {
	C    *logic.C
	lits []z.Lit
}

// Lit returns the literal for node id.
//
func (e *Encoding) Lit(id logicsim.NodeID) z.Lit {
	if id < 0 || int(id) >= len(e.lits) {
		return z.LitNull
	}
	return e.lits[id]
}

// Encode adds circuit c to lc. Every input pin becomes a new input literal of
// lc, except named pins found in shared which reuse the literal found there.
// Named pins that are not in shared are added to it, so that encoding two
// circuits with the same shared map connects their inputs by name.
//
// shared may be nil.
//
func Encode(lc *logic.C, c *logicsim.Circuit, shared map[string]z.Lit) (*Encoding, error) {
	e := &Encoding{C: lc, lits: make([]z.Lit, c.NodeCount())}
	for _, in := range c.Inputs() {
		name := c.PinName(in)
		if m, ok := shared[name]; ok && name != "" {
			e.lits[in] = m
			continue
		}
		e.lits[in] = lc.Lit()
		if shared != nil && name != "" {
			shared[name] = e.lits[in]
		}
	}
	for _, g := range c.Order() {
		gi, err := c.Gate(g)
		if err != nil {
			return nil, err
		}
		a := e.lits[gi.Inputs[0]]
		var b z.Lit
		if len(gi.Inputs) > 1 {
			b = e.lits[gi.Inputs[1]]
		}
		var m z.Lit
		switch gi.Kind {
		case logicsim.NOT:
			m = a.Not()
		case logicsim.BUF:
			m = a
		case logicsim.AND:
			m = lc.And(a, b)
		case logicsim.NAND:
			m = lc.And(a, b).Not()
		case logicsim.OR:
			m = lc.Or(a, b)
		case logicsim.NOR:
			m = lc.Or(a, b).Not()
		case logicsim.XOR:
			m = lc.Xor(a, b)
		case logicsim.XNOR:
			m = lc.Xor(a, b).Not()
		default:
			return nil, errors.Wrap(logicsim.ErrInvalidKind, gi.Kind.String())
		}
		e.lits[gi.Output] = m
	}
	return e, nil
}

// Counterexample is an input assignment for which two circuits disagree.
//
type Counterexample struct {
	Inputs  map[string]bool // named input pins
	Outputs []string        // outputs that differ
}

// Names returns the input names of the counterexample, sorted.
//
func (cx *Counterexample) Names() []string {
	ns := make([]string, 0, len(cx.Inputs))
	for n := range cx.Inputs {
		ns = append(ns, n)
	}
	sort.Strings(ns)
	return ns
}

// Equivalent checks that the named outputs of circuits a and b agree for every
// Low/High assignment of their inputs. Input pins are matched by name; unnamed
// inputs are free in each circuit.
//
// It returns a nil Counterexample if the circuits are equivalent.
//
func Equivalent(a, b *logicsim.Circuit, outputs ...string) (*Counterexample, error) {
	if len(outputs) == 0 {
		return nil, errors.New("no outputs to compare")
	}
	lc := logic.NewC()
	shared := make(map[string]z.Lit)
	ea, err := Encode(lc, a, shared)
	if err != nil {
		return nil, errors.Wrap(err, "encode first circuit")
	}
	eb, err := Encode(lc, b, shared)
	if err != nil {
		return nil, errors.Wrap(err, "encode second circuit")
	}

	diffs := make([]z.Lit, len(outputs))
	for i, o := range outputs {
		na, err := a.Lookup(o)
		if err != nil {
			return nil, err
		}
		nb, err := b.Lookup(o)
		if err != nil {
			return nil, err
		}
		diffs[i] = lc.Xor(ea.Lit(na), eb.Lit(nb))
	}
	miter := lc.F
	for _, d := range diffs {
		miter = lc.Or(miter, d)
	}
	if miter == lc.F {
		return nil, nil
	}

	g := gini.New()
	lc.ToCnf(g)
	// inputs that no output depends on appear in no clause: declare them so
	// that the model covers them.
	for _, m := range shared {
		g.Add(m)
		g.Add(m.Not())
		g.Add(z.LitNull)
	}
	g.Assume(miter)
	switch g.Solve() {
	case -1:
		return nil, nil
	case 1:
	default:
		return nil, errors.New("solver gave up")
	}

	cx := &Counterexample{Inputs: make(map[string]bool, len(shared))}
	for n, m := range shared {
		cx.Inputs[n] = g.Value(m)
	}
	for i, d := range diffs {
		if g.Value(d) {
			cx.Outputs = append(cx.Outputs, outputs[i])
		}
	}
	return cx, nil
}
