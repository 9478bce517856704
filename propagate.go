// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicsim

import (
	"github.com/pkg/errors"
)

// An Assignment drives an input pin to a given value.
//
type Assignment struct {
	Node  NodeID
	Value Signal
}

func (c *Circuit) checkInput(id NodeID) error {
	if err := c.checkNode(id); err != nil {
		return err
	}
	if c.nodes[id].driver != NoGate {
		return errors.Wrapf(ErrNotAnInputPin, "node %d", id)
	}
	return nil
}

// SetInput drives input pin id to v and propagates the change through the
// circuit. It returns the nodes whose signal changed, starting with id itself
// if it did change, followed by gate outputs in evaluation order.
//
// Setting a pin to its current value is a no-op and returns no nodes.
//
func (c *Circuit) SetInput(id NodeID, v Signal) ([]NodeID, error) {
	return c.SetInputs(Assignment{id, v})
}

// SetInputs drives several input pins at once and propagates the changes in a
// single pass. If a pin is assigned more than once, the last assignment wins.
//
// All assignments are checked before any of them is applied. On error, the
// circuit is left unchanged.
//
func (c *Circuit) SetInputs(as ...Assignment) ([]NodeID, error) {
	for _, a := range as {
		if err := c.checkInput(a.Node); err != nil {
			return nil, err
		}
		if a.Value > High {
			return nil, errors.Wrapf(ErrInvalidSignal, "node %d: %d", a.Node, a.Value)
		}
	}
	c.schedule()

	type prev struct {
		id  NodeID
		sig Signal
	}
	var touched []prev
	for _, a := range as {
		n := &c.nodes[a.Node]
		if !c.dirty[a.Node] {
			c.dirty[a.Node] = true
			touched = append(touched, prev{a.Node, n.sig})
		}
		n.sig = a.Value
	}

	var changed []NodeID
	start := len(c.order)
	for _, p := range touched {
		c.dirty[p.id] = false
		if c.nodes[p.id].sig == p.sig {
			continue
		}
		changed = append(changed, p.id)
		for _, g := range c.nodes[p.id].fanout {
			if c.pos[g] < start {
				start = c.pos[g]
			}
		}
	}
	if len(changed) == 0 {
		return nil, nil
	}
	return c.propagate(start, changed), nil
}

// Toggle flips input pin id: Low and High are swapped and Unknown becomes
// High.
//
func (c *Circuit) Toggle(id NodeID) ([]NodeID, error) {
	if err := c.checkInput(id); err != nil {
		return nil, err
	}
	return c.SetInput(id, c.nodes[id].sig.Toggle())
}

// propagate walks the evaluation order from index from and re-evaluates every
// gate with at least one input in changed. Gate outputs whose value changes
// are appended to changed, which is returned.
//
// Since the circuit is acyclic, every gate is visited at most once and the
// signals reach their fixed point in a single pass.
//
func (c *Circuit) propagate(from int, changed []NodeID) []NodeID {
	for _, id := range changed {
		c.dirty[id] = true
	}
	evaluated := 0
	for _, g := range c.order[from:] {
		gt := &c.gates[g]
		if !c.dirty[gt.in[0]] && (gt.in[1] == NoNode || !c.dirty[gt.in[1]]) {
			continue
		}
		evaluated++
		v := gt.kind.Eval(c.signal(gt.in[0]), c.signal(gt.in[1]))
		if out := &c.nodes[gt.out]; out.sig != v {
			out.sig = v
			c.dirty[gt.out] = true
			changed = append(changed, gt.out)
		}
	}
	for _, id := range changed {
		c.dirty[id] = false
	}
	c.log.Trace("propagated", "from", from, "evaluated", evaluated, "changed", len(changed))
	return changed
}
