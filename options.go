// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicsim

import (
	"github.com/hashicorp/go-hclog"
)

// An Option configures a Circuit created with New.
//
type Option func(*Circuit)

// WithLogger sets the logger used by the circuit. Construction is logged at
// Debug level and propagation at Trace level. A nil logger is ignored.
//
func WithLogger(l hclog.Logger) Option {
	return func(c *Circuit) {
		if l != nil {
			c.log = l
		}
	}
}

// WithName sets the circuit name, used in log output.
//
func WithName(name string) Option {
	return func(c *Circuit) {
		c.name = name
	}
}
