// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package main

import (
	"strings"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	ui := cli.NewMockUi()
	c := cli.NewCLI("adder", version)
	c.Args = args
	c.HelpWriter = ui.ErrorWriter
	c.Commands = commands(ui, hclog.NewNullLogger())
	status, err := c.Run()
	require.NoError(t, err)
	return status, ui.OutputWriter.String(), ui.ErrorWriter.String()
}

func TestAddCommand(t *testing.T) {
	status, out, errOut := run(t, "add", "-bits", "4", "6", "5")
	require.Equal(t, 0, status, errOut)
	assert.Equal(t, "  0110\n+ 0101\n= 1011  Cout=0\n6 + 5 = 11\n", out)

	status, out, errOut = run(t, "add", "-bits=4", "-cin", "0xf", "0b1")
	require.Equal(t, 0, status, errOut)
	assert.Contains(t, out, "= 0001  Cout=1\n")
	assert.Contains(t, out, "15 + 1 + 1 = 17\n")

	status, out, _ = run(t, "add", "200", "100")
	require.Equal(t, 0, status)
	assert.Contains(t, out, "200 + 100 = 300\n")
}

func TestAddCommand_errors(t *testing.T) {
	for _, args := range [][]string{
		{"add", "1"},
		{"add", "-bits", "4", "16", "1"},
		{"add", "one", "two"},
		{"add", "-bits", "0", "0", "0"},
		{"add", "-nope", "1", "2"},
	} {
		status, _, errOut := run(t, args...)
		assert.NotEqual(t, 0, status, "%v", args)
		assert.NotEmpty(t, errOut, "%v", args)
	}
}

func TestTableCommand(t *testing.T) {
	status, out, errOut := run(t, "table", "and")
	require.Equal(t, 0, status, errOut)
	want := strings.Join([]string{
		"a b | out",
		"0 0 |  0",
		"0 1 |  0",
		"0 X |  0",
		"1 0 |  0",
		"1 1 |  1",
		"1 X |  X",
		"X 0 |  0",
		"X 1 |  X",
		"X X |  X",
	}, "\n") + "\n"
	assert.Equal(t, want, out)

	status, out, _ = run(t, "table", "NOT")
	require.Equal(t, 0, status)
	assert.Equal(t, "in | out\n 0 |  1\n 1 |  0\n X |  X\n", out)

	status, _, errOut = run(t, "table", "MAYBE")
	assert.Equal(t, 1, status)
	assert.Contains(t, errOut, "MAYBE")
}

func TestVerifyCommand(t *testing.T) {
	status, out, errOut := run(t, "verify", "-bits", "4")
	require.Equal(t, 0, status, errOut)
	assert.Contains(t, out, "simulation: 512 additions OK\n")
	assert.Contains(t, out, "proof: ripple-carry (")

	status, out, errOut = run(t, "verify", "-bits=12")
	require.Equal(t, 0, status, errOut)
	assert.Contains(t, out, "simulation: 4096 additions OK\n")
}

func TestCommands_help(t *testing.T) {
	ui := cli.NewMockUi()
	for name, f := range commands(ui, hclog.NewNullLogger()) {
		cmd, err := f()
		require.NoError(t, err)
		assert.NotEmpty(t, cmd.Synopsis(), name)
		assert.True(t, strings.HasPrefix(cmd.Help(), "Usage: adder "+name), name)
	}
}
