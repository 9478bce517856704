/*
Package logicsim simulates combinational logic circuits.

A Circuit is built from input pins and gates (NOT, BUF, AND, OR, XOR, NAND,
NOR, XNOR). Gates reference the nodes they read by id, and each gate owns one
output node. Wires are not stored: fan-out is several gates reading the same
node.

Every node carries a three-valued Signal: Low, High or Unknown. Pins that have
never been driven are Unknown, and Unknown propagates through gates unless a
controlling value decides the output (a Low input to an AND gate, a High input
to an OR gate).

Driving an input with SetInput re-evaluates the affected gates in topological
order, in a single pass. The circuit is kept acyclic at construction time, so
this pass always reaches the settled state:

	c := logicsim.New()
	a, _ := c.AddInput("a")
	b, _ := c.AddInput("b")
	_, out, _ := c.AddGate(logicsim.XOR, a, b)
	_ = c.NameOutput("out", out)

	c.SetInput(a, logicsim.High)
	c.SetInput(b, logicsim.Low)
	v, _ := c.Value("out") // High

Package hwlib builds larger parts, like adders, on top of this API.
*/
package logicsim
