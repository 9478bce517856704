// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Command adder drives logicsim adder circuits from the command line.
//
// Set LOGICSIM_LOG to a log level (trace, debug, info, warn, error) to get
// simulation logs on stderr.
//
package main

import (
	"os"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"
)

const version = "0.1.0"

func newLogger() hclog.Logger {
	level := hclog.Off
	if v := strings.TrimSpace(os.Getenv("LOGICSIM_LOG")); v != "" {
		if l := hclog.LevelFromString(v); l != hclog.NoLevel {
			level = l
		}
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "adder",
		Level:  level,
		Output: os.Stderr,
	})
}

func commands(ui cli.Ui, log hclog.Logger) map[string]cli.CommandFactory {
	return map[string]cli.CommandFactory{
		"add": func() (cli.Command, error) {
			return &AddCommand{Ui: ui, Log: log.Named("add")}, nil
		},
		"table": func() (cli.Command, error) {
			return &TableCommand{Ui: ui}, nil
		},
		"verify": func() (cli.Command, error) {
			return &VerifyCommand{Ui: ui, Log: log.Named("verify")}, nil
		},
	}
}

func main() {
	ui := &cli.BasicUi{
		Reader:      os.Stdin,
		Writer:      os.Stdout,
		ErrorWriter: os.Stderr,
	}
	c := cli.NewCLI("adder", version)
	c.Args = os.Args[1:]
	c.Commands = commands(ui, newLogger())

	status, err := c.Run()
	if err != nil {
		ui.Error(err.Error())
	}
	os.Exit(status)
}
