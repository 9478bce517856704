// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package main

import (
	"flag"
	"fmt"
	"io"
	"math/rand"
	"strconv"
	"strings"

	"github.com/db47h/logicsim"
	"github.com/db47h/logicsim/formal"
	"github.com/db47h/logicsim/hwlib"
	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"
)

func flagSet(name string) *flag.FlagSet {
	f := flag.NewFlagSet(name, flag.ContinueOnError)
	f.SetOutput(io.Discard)
	return f
}

func mask(bits int) uint64 {
	if bits >= 64 {
		return ^uint64(0)
	}
	return 1<<uint(bits) - 1
}

// AddCommand adds two integers with a ripple-carry adder circuit.
//
type AddCommand struct {
	Ui  cli.Ui
	Log hclog.Logger
}

func (c *AddCommand) Run(args []string) int {
	f := flagSet("add")
	bits := f.Int("bits", 8, "adder width")
	cin := f.Bool("cin", false, "carry in")
	if err := f.Parse(args); err != nil {
		c.Ui.Error(err.Error())
		return cli.RunResultHelp
	}
	if f.NArg() != 2 {
		c.Ui.Error("add takes exactly two operands")
		return cli.RunResultHelp
	}
	var ops [2]uint64
	for i, s := range f.Args() {
		v, err := strconv.ParseUint(s, 0, 64)
		if err != nil {
			c.Ui.Error(fmt.Sprintf("invalid operand %q: %v", s, err))
			return 1
		}
		if v&^mask(*bits) != 0 {
			c.Ui.Error(fmt.Sprintf("operand %s does not fit in %d bits", s, *bits))
			return 1
		}
		ops[i] = v
	}

	add, err := hwlib.NewAdder(*bits, hwlib.WithCircuitOptions(
		logicsim.WithLogger(c.Log),
		logicsim.WithName("ripple"+strconv.Itoa(*bits))))
	if err != nil {
		c.Ui.Error(err.Error())
		return 1
	}
	changed, err := add.Set(ops[0], ops[1], *cin)
	if err != nil {
		c.Ui.Error(err.Error())
		return 1
	}
	sum, carry, err := add.Sum()
	if err != nil {
		c.Ui.Error(err.Error())
		return 1
	}
	c.Log.Debug("settled", "changed", len(changed), "gates", add.GateCount(), "depth", add.Depth())

	w := *bits
	c.Ui.Output(fmt.Sprintf("  %0*b\n+ %0*b\n= %0*b  %s=%v", w, ops[0], w, ops[1], w, sum, hwlib.PinCout, logicsim.FromBool(carry)))
	total := sum
	if carry && w < 64 {
		total |= 1 << uint(w)
	}
	if *cin {
		c.Ui.Output(fmt.Sprintf("%d + %d + 1 = %d", ops[0], ops[1], total))
	} else {
		c.Ui.Output(fmt.Sprintf("%d + %d = %d", ops[0], ops[1], total))
	}
	return 0
}

func (c *AddCommand) Help() string {
	return strings.TrimSpace(`
Usage: adder add [options] A B

  Builds a ripple-carry adder circuit, drives its A and B buses and prints the
  S bus and the carry out. Operands accept Go integer literals (0b, 0x, 0o).

Options:

  -bits=n    Adder width, 1 to 64. Defaults to 8.
  -cin       Drive the carry in High.
`)
}

func (c *AddCommand) Synopsis() string {
	return "Add two integers with a simulated ripple-carry adder"
}

// TableCommand prints the truth table of a gate kind.
//
type TableCommand struct {
	Ui cli.Ui
}

var tableSignals = []logicsim.Signal{logicsim.Low, logicsim.High, logicsim.Unknown}

func (c *TableCommand) Run(args []string) int {
	if len(args) != 1 {
		c.Ui.Error("table takes exactly one gate kind")
		return cli.RunResultHelp
	}
	k, err := logicsim.ParseKind(args[0])
	if err != nil {
		c.Ui.Error(err.Error())
		return 1
	}
	var b strings.Builder
	if k.Arity() == 1 {
		b.WriteString("in | out\n")
		for _, a := range tableSignals {
			fmt.Fprintf(&b, " %v |  %v\n", a, k.Eval(a, logicsim.Unknown))
		}
	} else {
		b.WriteString("a b | out\n")
		for _, a := range tableSignals {
			for _, x := range tableSignals {
				fmt.Fprintf(&b, "%v %v |  %v\n", a, x, k.Eval(a, x))
			}
		}
	}
	c.Ui.Output(strings.TrimRight(b.String(), "\n"))
	return 0
}

func (c *TableCommand) Help() string {
	kinds := make([]string, 0, len(logicsim.Kinds()))
	for _, k := range logicsim.Kinds() {
		kinds = append(kinds, k.String())
	}
	return strings.TrimSpace(`
Usage: adder table KIND

  Prints the three-valued truth table of a gate. X is Unknown.

  KIND is one of ` + strings.Join(kinds, ", ") + `.
`)
}

func (c *TableCommand) Synopsis() string {
	return "Print the truth table of a gate"
}

// VerifyCommand checks ripple-carry adders against integer addition and
// proves them equivalent to carry-lookahead adders.
//
type VerifyCommand struct {
	Ui  cli.Ui
	Log hclog.Logger
}

// samples is the number of random operand pairs checked when the adder is too
// wide for an exhaustive check.
const samples = 4096

func (c *VerifyCommand) Run(args []string) int {
	f := flagSet("verify")
	bits := f.Int("bits", 8, "adder width")
	if err := f.Parse(args); err != nil {
		c.Ui.Error(err.Error())
		return cli.RunResultHelp
	}

	ripple, err := hwlib.NewAdder(*bits, hwlib.WithCircuitOptions(logicsim.WithLogger(c.Log), logicsim.WithName("ripple")))
	if err != nil {
		c.Ui.Error(err.Error())
		return 1
	}
	lookahead, err := hwlib.NewAdder(*bits, hwlib.WithLookahead(), hwlib.WithCircuitOptions(logicsim.WithLogger(c.Log), logicsim.WithName("lookahead")))
	if err != nil {
		c.Ui.Error(err.Error())
		return 1
	}

	n, err := c.simulate(ripple)
	if err != nil {
		c.Ui.Error(err.Error())
		return 1
	}
	c.Ui.Output(fmt.Sprintf("simulation: %d additions OK", n))

	outputs := make([]string, 0, *bits+1)
	for i := 0; i < *bits; i++ {
		outputs = append(outputs, logicsim.BusPinName(hwlib.PinS, i))
	}
	outputs = append(outputs, hwlib.PinCout)
	cx, err := formal.Equivalent(ripple.Circuit, lookahead.Circuit, outputs...)
	if err != nil {
		c.Ui.Error(err.Error())
		return 1
	}
	if cx != nil {
		var b strings.Builder
		for _, n := range cx.Names() {
			fmt.Fprintf(&b, " %s=%v", n, logicsim.FromBool(cx.Inputs[n]))
		}
		c.Ui.Error(fmt.Sprintf("adders differ on %s for%s", strings.Join(cx.Outputs, ", "), b.String()))
		return 1
	}
	c.Ui.Output(fmt.Sprintf("proof: ripple-carry (%d gates, depth %d) == lookahead (%d gates, depth %d)",
		ripple.GateCount(), ripple.Depth(), lookahead.GateCount(), lookahead.Depth()))
	return 0
}

// simulate checks add against integer addition, exhaustively for adders up to
// 8 bits.
//
func (c *VerifyCommand) simulate(add *hwlib.Adder) (int, error) {
	m := mask(add.Bits)
	check := func(x, y uint64, cin bool) error {
		if _, err := add.Set(x, y, cin); err != nil {
			return err
		}
		sum, carry, err := add.Sum()
		if err != nil {
			return err
		}
		var ci uint64
		if cin {
			ci = 1
		}
		want := x + y + ci
		wantCarry := want&^m != 0 || want < x // wrap around for 64 bits
		if sum != want&m || carry != wantCarry {
			return fmt.Errorf("%d + %d + %d: got %d carry %v", x, y, ci, sum, carry)
		}
		return nil
	}

	n := 0
	if add.Bits <= 8 {
		for x := uint64(0); x <= m; x++ {
			for y := uint64(0); y <= m; y++ {
				for _, cin := range []bool{false, true} {
					if err := check(x, y, cin); err != nil {
						return n, err
					}
					n++
				}
			}
		}
		return n, nil
	}
	rnd := rand.New(rand.NewSource(1))
	for ; n < samples; n++ {
		if err := check(rnd.Uint64()&m, rnd.Uint64()&m, rnd.Intn(2) == 1); err != nil {
			return n, err
		}
	}
	return n, nil
}

func (c *VerifyCommand) Help() string {
	return strings.TrimSpace(`
Usage: adder verify [options]

  Checks a ripple-carry adder against integer addition (exhaustively up to 8
  bits, on random operands otherwise), then proves with a SAT solver that it
  computes the same function as a carry-lookahead adder.

Options:

  -bits=n    Adder width, 1 to 64. Defaults to 8.
`)
}

func (c *VerifyCommand) Synopsis() string {
	return "Verify the ripple-carry adder"
}
