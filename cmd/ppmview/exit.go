package main

import (
	"errors"

	"github.com/bodgit/ppmview/netpbm"
	"github.com/bodgit/ppmview/terminal"
	"github.com/urfave/cli/v2"
)

// Exit codes, one per kind of failure
const (
	exitFailure = 1 + iota
	exitUnreadableInput
	exitUnrecognizedFormat
	exitMissingField
	exitInvalidNumeric
	exitNoSelection
)

func exitCode(err error) int {
	if errors.Is(err, terminal.ErrNoSelection) {
		return exitNoSelection
	}
	switch netpbm.KindOf(err) {
	case netpbm.UnreadableInput:
		return exitUnreadableInput
	case netpbm.UnrecognizedFormat:
		return exitUnrecognizedFormat
	case netpbm.MissingField:
		return exitMissingField
	case netpbm.InvalidNumeric:
		return exitInvalidNumeric
	}
	return exitFailure
}

func exitError(err error) cli.ExitCoder {
	return cli.NewExitError(err, exitCode(err))
}
