// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import (
	"github.com/db47h/logicsim"
)

// Mux adds a multiplexer.
//
//	Function: if sel == 0 { out = a } else { out = b }
//
func Mux(c *logicsim.Circuit, a, b, sel logicsim.NodeID) (logicsim.NodeID, error) {
	notSel, err := Not(c, sel)
	if err != nil {
		return logicsim.NoNode, err
	}
	w0, err := And(c, a, notSel)
	if err != nil {
		return logicsim.NoNode, err
	}
	w1, err := And(c, b, sel)
	if err != nil {
		return logicsim.NoNode, err
	}
	return Or(c, w0, w1)
}

// DMux adds a demultiplexer.
//
//	Function: if sel == 0 { a = in; b = 0 } else { a = 0; b = in }
//
func DMux(c *logicsim.Circuit, in, sel logicsim.NodeID) (a, b logicsim.NodeID, err error) {
	notSel, err := Not(c, sel)
	if err != nil {
		return logicsim.NoNode, logicsim.NoNode, err
	}
	if a, err = And(c, in, notSel); err != nil {
		return logicsim.NoNode, logicsim.NoNode, err
	}
	if b, err = And(c, in, sel); err != nil {
		return logicsim.NoNode, logicsim.NoNode, err
	}
	return a, b, nil
}
