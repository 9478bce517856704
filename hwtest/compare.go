// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package hwtest provides utility functions for testing circuits.
//
package hwtest

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/db47h/logicsim"
	"github.com/db47h/logicsim/formal"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

// maxExhaustive is the input count up to which CompareCircuits tries every
// input combination.
const maxExhaustive = 12

// maxErrors caps the number of mismatches reported by CompareCircuits.
const maxErrors = 16

type pin struct {
	name      string
	want, got logicsim.NodeID
}

func inputPins(t testing.TB, want, got *logicsim.Circuit) []pin {
	t.Helper()
	var pins []pin
	for _, w := range want.Inputs() {
		name := want.PinName(w)
		if name == "" {
			t.Fatalf("input node %d has no name", w)
		}
		g, err := got.Lookup(name)
		if err != nil {
			t.Fatal(err)
		}
		if !got.IsInput(g) {
			t.Fatalf("pin %s is not an input", name)
		}
		pins = append(pins, pin{name, w, g})
	}
	if n := len(got.Inputs()); n != len(pins) {
		t.Fatalf("input count mismatch: %d != %d", len(pins), n)
	}
	return pins
}

func outputPins(t testing.TB, want, got *logicsim.Circuit, names []string) []pin {
	t.Helper()
	pins := make([]pin, len(names))
	for i, n := range names {
		w, err := want.Lookup(n)
		if err != nil {
			t.Fatal(err)
		}
		g, err := got.Lookup(n)
		if err != nil {
			t.Fatal(err)
		}
		pins[i] = pin{n, w, g}
	}
	return pins
}

func assignment(ins []pin, vals []bool) string {
	var b strings.Builder
	for i, p := range ins {
		if b.Len() > 0 {
			b.WriteString(", ")
		}
		b.WriteString(p.name)
		b.WriteRune('=')
		b.WriteString(logicsim.FromBool(vals[i]).String())
	}
	return b.String()
}

// CompareCircuits checks that circuits want and got compute the same values
// on the named outputs. Both circuits must have the same named input pins.
//
// Inputs are driven exhaustively for up to 12 inputs, randomly otherwise.
// Once simulation agrees, the outputs are proved equivalent for all inputs
// with formal.Equivalent.
//
func CompareCircuits(t testing.TB, want, got *logicsim.Circuit, outputs ...string) {
	t.Helper()

	ins := inputPins(t, want, got)
	outs := outputPins(t, want, got, outputs)

	seed := time.Now().UnixNano()
	rnd := rand.New(rand.NewSource(seed))
	exhaustive := len(ins) <= maxExhaustive
	iter := 1 << uint(len(ins))
	if !exhaustive {
		iter = 1 << maxExhaustive
	}

	vals := make([]bool, len(ins))
	aw := make([]logicsim.Assignment, len(ins))
	ag := make([]logicsim.Assignment, len(ins))
	var errs *multierror.Error
	nerr := 0
	start := time.Now()

	run := func() {
		for i, p := range ins {
			s := logicsim.FromBool(vals[i])
			aw[i] = logicsim.Assignment{Node: p.want, Value: s}
			ag[i] = logicsim.Assignment{Node: p.got, Value: s}
		}
		if _, err := want.SetInputs(aw...); err != nil {
			t.Fatal(err)
		}
		if _, err := got.SetInputs(ag...); err != nil {
			t.Fatal(err)
		}
		for _, o := range outs {
			ws, _ := want.Get(o.want)
			gs, _ := got.Get(o.got)
			if ws != gs {
				errs = multierror.Append(errs, errors.Errorf("%s => %s: expected %v, got %v", assignment(ins, vals), o.name, ws, gs))
				nerr++
			}
		}
	}

	// all 1, then all 0
	for i := range vals {
		vals[i] = true
	}
	run()
	for i := range vals {
		vals[i] = false
	}
	run()

	for n := 0; n < iter && nerr < maxErrors; n++ {
		for i := range vals {
			if exhaustive {
				vals[i] = n&(1<<uint(i)) != 0
			} else {
				vals[i] = rnd.Int63()&(1<<62) != 0
			}
		}
		run()
	}
	if err := errs.ErrorOrNil(); err != nil {
		if !exhaustive {
			t.Logf("random seed: %d", seed)
		}
		t.Fatal(err)
	}
	t.Logf("%d inputs, %d+%d gates, %d vectors in %v", len(ins), want.GateCount(), got.GateCount(), iter+2, time.Since(start))

	cx, err := formal.Equivalent(want, got, outputs...)
	if err != nil {
		t.Fatal(err)
	}
	if cx != nil {
		var b strings.Builder
		for _, n := range cx.Names() {
			if b.Len() > 0 {
				b.WriteString(", ")
			}
			b.WriteString(n)
			b.WriteRune('=')
			b.WriteString(logicsim.FromBool(cx.Inputs[n]).String())
		}
		t.Fatalf("circuits differ on %v for %s", cx.Outputs, b.String())
	}
}
