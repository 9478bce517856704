// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicsim

// Signal is the state of a wire. The zero value is Unknown.
//
type Signal uint8

// Signal values.
//
const (
	Unknown Signal = iota // never driven or computed
	Low
	High
)

// FromBool converts b to Low or High.
//
func FromBool(b bool) Signal {
	if b {
		return High
	}
	return Low
}

// Known returns true if s is Low or High.
//
func (s Signal) Known() bool { return s == Low || s == High }

// Bool returns the boolean value of s. ok is false if s is Unknown, in which
// case v must be ignored.
//
func (s Signal) Bool() (v bool, ok bool) {
	return s == High, s.Known()
}

// Not returns the logical complement of s. Unknown stays Unknown.
//
func (s Signal) Not() Signal {
	switch s {
	case Low:
		return High
	case High:
		return Low
	}
	return Unknown
}

// Toggle returns the value a user toggle should drive: the complement of a
// known signal, or High for an Unknown one.
//
func (s Signal) Toggle() Signal {
	if s == Unknown {
		return High
	}
	return s.Not()
}

func (s Signal) String() string {
	switch s {
	case Low:
		return "0"
	case High:
		return "1"
	case Unknown:
		return "X"
	}
	return "?"
}
