// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicsim

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Kind identifies the function of a gate.
//
type Kind uint8

// Gate kinds. NOT and BUF take one input, all others take two.
//
const (
	NOT Kind = iota
	BUF
	AND
	OR
	XOR
	NAND
	NOR
	XNOR
	kindCount
)

var kindNames = [...]string{
	NOT:  "NOT",
	BUF:  "BUF",
	AND:  "AND",
	OR:   "OR",
	XOR:  "XOR",
	NAND: "NAND",
	NOR:  "NOR",
	XNOR: "XNOR",
}

// Kinds returns all gate kinds in declaration order.
//
func Kinds() []Kind {
	ks := make([]Kind, kindCount)
	for i := range ks {
		ks[i] = Kind(i)
	}
	return ks
}

// ParseKind returns the Kind with the given name (case insensitive).
//
func ParseKind(name string) (Kind, error) {
	n := strings.ToUpper(strings.TrimSpace(name))
	for k, kn := range kindNames {
		if kn == n {
			return Kind(k), nil
		}
	}
	return 0, errors.Errorf("unknown gate kind %q", name)
}

func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Valid returns true if k is one of the declared gate kinds.
//
func (k Kind) Valid() bool { return k < kindCount }

// Arity returns the number of inputs of a gate of kind k.
//
func (k Kind) Arity() int {
	switch k {
	case NOT, BUF:
		return 1
	}
	return 2
}

// Eval computes the output of a gate of kind k. For single input gates, b is
// ignored.
//
// Low on any input of an AND (NAND) gate and High on any input of an OR (NOR)
// gate decide the output regardless of the other input. In every other case
// an Unknown input yields an Unknown output.
//
func (k Kind) Eval(a, b Signal) Signal {
	switch k {
	case NOT:
		return a.Not()
	case BUF:
		if a.Known() {
			return a
		}
		return Unknown
	case AND:
		return and(a, b)
	case NAND:
		return and(a, b).Not()
	case OR:
		return or(a, b)
	case NOR:
		return or(a, b).Not()
	case XOR:
		return xor(a, b)
	case XNOR:
		return xor(a, b).Not()
	}
	return Unknown
}

func and(a, b Signal) Signal {
	switch {
	case a == Low || b == Low:
		return Low
	case a == High && b == High:
		return High
	}
	return Unknown
}

func or(a, b Signal) Signal {
	switch {
	case a == High || b == High:
		return High
	case a == Low && b == Low:
		return Low
	}
	return Unknown
}

func xor(a, b Signal) Signal {
	if !a.Known() || !b.Known() {
		return Unknown
	}
	return FromBool(a != b)
}
