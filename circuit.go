// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicsim

import (
	"sort"

	"github.com/hashicorp/go-hclog"
	"github.com/pkg/errors"
)

// NodeID identifies a node (a wire) in a circuit. Ids are stable for the
// lifetime of the circuit.
//
type NodeID int

// GateID identifies a gate in a circuit.
//
type GateID int

// Invalid ids.
//
const (
	NoNode NodeID = -1
	NoGate GateID = -1
)

type node struct {
	name   string
	sig    Signal
	driver GateID   // NoGate for input pins
	fanout []GateID // gates reading this node, each listed once
}

type gate struct {
	kind Kind
	in   [2]NodeID // in[1] is NoNode for single input gates
	out  NodeID
}

// sources returns the distinct nodes read by g.
//
func (g *gate) sources() []NodeID {
	if g.in[1] == NoNode || g.in[1] == g.in[0] {
		return g.in[:1]
	}
	return g.in[:]
}

// GateInfo describes a gate.
//
type GateInfo struct {
	ID     GateID
	Kind   Kind
	Inputs []NodeID
	Output NodeID
}

// Circuit is a combinational circuit: a directed acyclic graph of gates
// connected by nodes.
//
// Nodes are either input pins, driven by the caller with SetInput, or gate
// outputs, computed by the circuit. Every node holds a Signal which starts
// Unknown.
//
// A Circuit is not safe for concurrent use.
//
type Circuit struct {
	name   string
	nodes  []node
	gates  []gate
	names  map[string]NodeID
	inputs []NodeID

	order []GateID // topological order of gates. nil when stale.
	pos   []int    // pos[g] is the index of gate g in order.
	dirty []bool   // propagation scratch, one per node.

	log hclog.Logger
}

// New returns a new empty circuit.
//
func New(opts ...Option) *Circuit {
	c := &Circuit{
		names: make(map[string]NodeID),
		log:   hclog.NewNullLogger(),
	}
	for _, o := range opts {
		o(c)
	}
	if c.name != "" {
		c.log = c.log.With("circuit", c.name)
	}
	return c
}

// Name returns the circuit name set with WithName.
//
func (c *Circuit) Name() string { return c.name }

func (c *Circuit) newNode(name string, driver GateID) NodeID {
	id := NodeID(len(c.nodes))
	c.nodes = append(c.nodes, node{name: name, driver: driver})
	c.dirty = append(c.dirty, false)
	if name != "" {
		c.names[name] = id
	}
	return id
}

func (c *Circuit) valid(id NodeID) bool {
	return id >= 0 && int(id) < len(c.nodes)
}

func (c *Circuit) checkNode(id NodeID) error {
	if !c.valid(id) {
		return errors.Wrapf(ErrUnknownNode, "node %d", id)
	}
	return nil
}

func (c *Circuit) checkName(name string) error {
	if _, ok := c.names[name]; ok {
		return errors.Wrap(ErrDuplicateName, name)
	}
	return nil
}

// signal returns the signal on node id, Unknown for NoNode.
//
func (c *Circuit) signal(id NodeID) Signal {
	if id < 0 {
		return Unknown
	}
	return c.nodes[id].sig
}

// AddInput creates a new input pin. If name is not empty, the pin is
// registered under that name.
//
func (c *Circuit) AddInput(name string) (NodeID, error) {
	if name != "" {
		if err := c.checkName(name); err != nil {
			return NoNode, err
		}
	}
	id := c.newNode(name, NoGate)
	c.inputs = append(c.inputs, id)
	c.log.Debug("input added", "node", id, "name", name)
	return id, nil
}

// AddInputs creates input pins for each pin name in spec. See IO for the
// syntax of spec. Either all pins are created or none.
//
func (c *Circuit) AddInputs(spec string) ([]NodeID, error) {
	names, err := IO(spec)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{}, len(names))
	for _, n := range names {
		if _, ok := seen[n]; ok {
			return nil, errors.Wrap(ErrDuplicateName, n)
		}
		seen[n] = struct{}{}
		if err = c.checkName(n); err != nil {
			return nil, err
		}
	}
	ids := make([]NodeID, len(names))
	for i, n := range names {
		if ids[i], err = c.AddInput(n); err != nil {
			return nil, err
		}
	}
	return ids, nil
}

// AddGate adds a gate of the given kind reading the given input nodes. It
// returns the new gate's id and its output node. The output node is computed
// right away from the current input signals.
//
// Since inputs must already exist, AddGate never creates a cycle.
//
func (c *Circuit) AddGate(kind Kind, inputs ...NodeID) (GateID, NodeID, error) {
	if !kind.Valid() {
		return NoGate, NoNode, errors.Wrap(ErrInvalidKind, kind.String())
	}
	if len(inputs) != kind.Arity() {
		return NoGate, NoNode, errors.Wrapf(ErrArity, "%s takes %d inputs, got %d", kind, kind.Arity(), len(inputs))
	}
	for _, in := range inputs {
		if err := c.checkNode(in); err != nil {
			return NoGate, NoNode, err
		}
	}

	id := GateID(len(c.gates))
	g := gate{kind: kind, in: [2]NodeID{inputs[0], NoNode}}
	if len(inputs) > 1 {
		g.in[1] = inputs[1]
	}
	g.out = c.newNode("", id)
	c.gates = append(c.gates, g)
	for _, src := range g.sources() {
		c.nodes[src].fanout = append(c.nodes[src].fanout, id)
	}
	c.nodes[g.out].sig = kind.Eval(c.signal(g.in[0]), c.signal(g.in[1]))

	// the evaluation order is rebuilt on the next propagation.
	c.order = nil
	c.log.Debug("gate added", "gate", id, "kind", kind, "inputs", inputs, "output", g.out)
	return id, g.out, nil
}

// Connect rewires input port of gate g to node src and re-evaluates the
// gates depending on it. It returns the nodes whose signal changed.
//
// If the new connection would create a combinational loop, Connect returns a
// *CycleError and leaves the circuit unchanged.
//
func (c *Circuit) Connect(g GateID, port int, src NodeID) ([]NodeID, error) {
	if g < 0 || int(g) >= len(c.gates) {
		return nil, errors.Errorf("gate %d does not exist", g)
	}
	if err := c.checkNode(src); err != nil {
		return nil, err
	}
	gt := &c.gates[g]
	if port < 0 || port >= gt.kind.Arity() {
		return nil, errors.Wrapf(ErrArity, "%s gate %d has no input %d", gt.kind, g, port)
	}
	old := gt.in[port]
	if old == src {
		return nil, nil
	}

	c.unlink(g)
	gt.in[port] = src
	c.link(g)
	if err := c.sort(); err != nil {
		path := c.path(gt.out, src)
		c.unlink(g)
		gt.in[port] = old
		c.link(g)
		if err := c.sort(); err != nil {
			panic("circuit was cyclic before rewiring")
		}
		return nil, &CycleError{Gate: g, Path: path}
	}
	c.log.Debug("gate rewired", "gate", g, "port", port, "from", old, "to", src)

	v := gt.kind.Eval(c.signal(gt.in[0]), c.signal(gt.in[1]))
	out := &c.nodes[gt.out]
	if v == out.sig {
		return nil, nil
	}
	out.sig = v
	return c.propagate(c.pos[g]+1, []NodeID{gt.out}), nil
}

func (c *Circuit) unlink(g GateID) {
	for _, src := range c.gates[g].sources() {
		fo := c.nodes[src].fanout
		for i, h := range fo {
			if h == g {
				c.nodes[src].fanout = append(fo[:i], fo[i+1:]...)
				break
			}
		}
	}
}

func (c *Circuit) link(g GateID) {
	for _, src := range c.gates[g].sources() {
		c.nodes[src].fanout = append(c.nodes[src].fanout, g)
	}
}

// NameOutput registers name as an alias for node id. Registering the same
// name twice for the same node is a no-op.
//
func (c *Circuit) NameOutput(name string, id NodeID) error {
	if err := c.checkNode(id); err != nil {
		return err
	}
	if name == "" {
		return errors.New("empty pin name")
	}
	if n, ok := c.names[name]; ok {
		if n == id {
			return nil
		}
		return errors.Wrap(ErrDuplicateName, name)
	}
	c.names[name] = id
	if c.nodes[id].name == "" {
		c.nodes[id].name = name
	}
	c.log.Debug("output named", "node", id, "name", name)
	return nil
}

// Lookup returns the node registered under name.
//
func (c *Circuit) Lookup(name string) (NodeID, error) {
	id, ok := c.names[name]
	if !ok {
		return NoNode, errors.Wrap(ErrUnknownNode, name)
	}
	return id, nil
}

// Bus returns the nodes registered under BusPinName(name, 0),
// BusPinName(name, 1), ... up to the first missing index.
//
func (c *Circuit) Bus(name string) ([]NodeID, error) {
	var out []NodeID
	for i := 0; ; i++ {
		id, ok := c.names[BusPinName(name, i)]
		if !ok {
			break
		}
		out = append(out, id)
	}
	if len(out) == 0 {
		return nil, errors.Wrapf(ErrUnknownNode, "bus %s", name)
	}
	return out, nil
}

// Get returns the current signal of node id.
//
func (c *Circuit) Get(id NodeID) (Signal, error) {
	if err := c.checkNode(id); err != nil {
		return Unknown, err
	}
	return c.nodes[id].sig, nil
}

// Value returns the current signal of the node registered under name.
//
func (c *Circuit) Value(name string) (Signal, error) {
	id, err := c.Lookup(name)
	if err != nil {
		return Unknown, err
	}
	return c.nodes[id].sig, nil
}

// PinName returns the first name registered for node id, or an empty string.
//
func (c *Circuit) PinName(id NodeID) string {
	if !c.valid(id) {
		return ""
	}
	return c.nodes[id].name
}

// Names returns all registered pin names, sorted.
//
func (c *Circuit) Names() []string {
	ns := make([]string, 0, len(c.names))
	for n := range c.names {
		ns = append(ns, n)
	}
	sort.Strings(ns)
	return ns
}

// IsInput returns true if id is an input pin.
//
func (c *Circuit) IsInput(id NodeID) bool {
	return c.valid(id) && c.nodes[id].driver == NoGate
}

// Inputs returns all input pins in creation order.
//
func (c *Circuit) Inputs() []NodeID {
	return append([]NodeID(nil), c.inputs...)
}

// Driver returns the gate driving node id, or NoGate for an input pin.
//
func (c *Circuit) Driver(id NodeID) (GateID, error) {
	if err := c.checkNode(id); err != nil {
		return NoGate, err
	}
	return c.nodes[id].driver, nil
}

// Fanout returns the gates reading node id.
//
func (c *Circuit) Fanout(id NodeID) ([]GateID, error) {
	if err := c.checkNode(id); err != nil {
		return nil, err
	}
	return append([]GateID(nil), c.nodes[id].fanout...), nil
}

// Gate returns a description of gate g.
//
func (c *Circuit) Gate(g GateID) (GateInfo, error) {
	if g < 0 || int(g) >= len(c.gates) {
		return GateInfo{}, errors.Errorf("gate %d does not exist", g)
	}
	gt := &c.gates[g]
	return GateInfo{
		ID:     g,
		Kind:   gt.kind,
		Inputs: append([]NodeID(nil), gt.in[:gt.kind.Arity()]...),
		Output: gt.out,
	}, nil
}

// NodeCount returns the number of nodes in the circuit.
//
func (c *Circuit) NodeCount() int { return len(c.nodes) }

// GateCount returns the number of gates in the circuit.
//
func (c *Circuit) GateCount() int { return len(c.gates) }

// Signals returns a snapshot of all node signals, indexed by NodeID.
//
func (c *Circuit) Signals() []Signal {
	s := make([]Signal, len(c.nodes))
	for i := range c.nodes {
		s[i] = c.nodes[i].sig
	}
	return s
}

// Reset sets every node back to Unknown.
//
func (c *Circuit) Reset() {
	for i := range c.nodes {
		c.nodes[i].sig = Unknown
	}
	c.log.Debug("circuit reset")
}
