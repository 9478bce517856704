// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import (
	"github.com/db47h/logicsim"
	"github.com/pkg/errors"
)

// ErrUnknownSignal is returned when reading a bus with a pin in the Unknown
// state.
var ErrUnknownSignal = errors.New("unknown signal on bus")

// Assign returns the assignments driving pins to the bits of v. Pin 0 is the
// lsb.
//
func Assign(pins []logicsim.NodeID, v uint64) []logicsim.Assignment {
	as := make([]logicsim.Assignment, len(pins))
	for bit, p := range pins {
		as[bit] = logicsim.Assignment{Node: p, Value: logicsim.FromBool(v&(1<<uint(bit)) != 0)}
	}
	return as
}

// SetUint sets the pins to the given value and returns the nodes that changed.
// Pin 0 is the lsb.
//
func SetUint(c *logicsim.Circuit, pins []logicsim.NodeID, v uint64) ([]logicsim.NodeID, error) {
	if len(pins) > 64 {
		return nil, errors.Errorf("bus too wide: %d pins", len(pins))
	}
	return c.SetInputs(Assign(pins, v)...)
}

// Uint returns the value on the pins. Pin 0 is the lsb. It fails with
// ErrUnknownSignal if any pin is Unknown.
//
func Uint(c *logicsim.Circuit, pins []logicsim.NodeID) (uint64, error) {
	if len(pins) > 64 {
		return 0, errors.Errorf("bus too wide: %d pins", len(pins))
	}
	var out uint64
	for bit, p := range pins {
		s, err := c.Get(p)
		if err != nil {
			return 0, err
		}
		v, ok := s.Bool()
		if !ok {
			return 0, errors.Wrapf(ErrUnknownSignal, "bit %d", bit)
		}
		if v {
			out |= 1 << uint(bit)
		}
	}
	return out, nil
}
