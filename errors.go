// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicsim

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

var (
	// ErrUnknownNode is returned when a node id or pin name is not registered
	// in a circuit.
	ErrUnknownNode = errors.New("unknown node")
	// ErrNotAnInputPin is returned when trying to drive a gate output.
	ErrNotAnInputPin = errors.New("not an input pin")
	// ErrArity is returned when a gate is given the wrong number of inputs or
	// when addressing a gate input port that does not exist.
	ErrArity = errors.New("wrong gate input count")
	// ErrInvalidKind is returned for an undeclared gate Kind.
	ErrInvalidKind = errors.New("invalid gate kind")
	// ErrDuplicateName is returned when a pin name is already in use.
	ErrDuplicateName = errors.New("duplicate pin name")
	// ErrInvalidSignal is returned when driving a pin with an out of range
	// Signal value.
	ErrInvalidSignal = errors.New("invalid signal value")
)

// CycleError is returned when wiring a gate input would create a combinational
// loop.
//
// Path lists the nodes of the loop, starting at the output of Gate and ending
// at the node that was about to be connected to one of its inputs.
//
type CycleError struct {
	Gate GateID
	Path []NodeID
}

func (e *CycleError) Error() string {
	var b strings.Builder
	b.WriteString("gate ")
	b.WriteString(strconv.Itoa(int(e.Gate)))
	b.WriteString(": combinational loop")
	if len(e.Path) > 0 {
		b.WriteString(" through nodes ")
		for i, n := range e.Path {
			if i > 0 {
				b.WriteString(" -> ")
			}
			b.WriteString(strconv.Itoa(int(n)))
		}
		b.WriteString(" -> ")
		b.WriteString(strconv.Itoa(int(e.Path[0])))
	}
	return b.String()
}
