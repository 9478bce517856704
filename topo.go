// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicsim

// sort computes the evaluation order of gates with Kahn's algorithm: a gate
// is scheduled once every gate driving one of its inputs has been scheduled.
// Ties are broken by gate id so that the order only depends on the sequence
// of construction calls.
//
// If some gates cannot be scheduled, the circuit has a loop. sort then returns
// a *CycleError naming the first of them and leaves the previous order in
// place.
//
func (c *Circuit) sort() error {
	indeg := make([]int, len(c.gates))
	queue := make([]GateID, 0, len(c.gates))
	for g := range c.gates {
		for _, src := range c.gates[g].sources() {
			if c.nodes[src].driver != NoGate {
				indeg[g]++
			}
		}
		if indeg[g] == 0 {
			queue = append(queue, GateID(g))
		}
	}
	for i := 0; i < len(queue); i++ {
		for _, h := range c.nodes[c.gates[queue[i]].out].fanout {
			indeg[h]--
			if indeg[h] == 0 {
				queue = append(queue, h)
			}
		}
	}
	if len(queue) < len(c.gates) {
		for g, d := range indeg {
			if d > 0 {
				return &CycleError{Gate: GateID(g)}
			}
		}
	}
	pos := make([]int, len(c.gates))
	for i, g := range queue {
		pos[g] = i
	}
	c.order, c.pos = queue, pos
	return nil
}

// schedule makes sure that the evaluation order is up to date.
//
func (c *Circuit) schedule() {
	if c.order != nil {
		return
	}
	if err := c.sort(); err != nil {
		// Connect never leaves a loop behind.
		panic(err)
	}
}

// path returns the nodes on a path from node from to node to, following gate
// outputs. It returns nil if to cannot be reached from from.
//
func (c *Circuit) path(from, to NodeID) []NodeID {
	parent := map[NodeID]NodeID{from: NoNode}
	queue := []NodeID{from}
	for i := 0; i < len(queue); i++ {
		n := queue[i]
		if n == to {
			var p []NodeID
			for ; n != NoNode; n = parent[n] {
				p = append(p, n)
			}
			for i, j := 0, len(p)-1; i < j; i, j = i+1, j-1 {
				p[i], p[j] = p[j], p[i]
			}
			return p
		}
		for _, g := range c.nodes[n].fanout {
			out := c.gates[g].out
			if _, ok := parent[out]; !ok {
				parent[out] = n
				queue = append(queue, out)
			}
		}
	}
	return nil
}

// Order returns the gates in evaluation order: every gate comes after the
// gates driving its inputs.
//
func (c *Circuit) Order() []GateID {
	c.schedule()
	return append([]GateID(nil), c.order...)
}

// Levels returns the logic depth of every node, indexed by NodeID. Input pins
// are at level 0 and a gate output is one level above its deepest input.
//
func (c *Circuit) Levels() []int {
	c.schedule()
	lv := make([]int, len(c.nodes))
	for _, g := range c.order {
		gt := &c.gates[g]
		max := 0
		for _, src := range gt.sources() {
			if lv[src] > max {
				max = lv[src]
			}
		}
		lv[gt.out] = max + 1
	}
	return lv
}

// Depth returns the highest level in the circuit.
//
func (c *Circuit) Depth() int {
	d := 0
	for _, l := range c.Levels() {
		if l > d {
			d = l
		}
	}
	return d
}
