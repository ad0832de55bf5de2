package main

import (
	"fmt"
	"io"
)

func runHelp(args []string, stdout io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(stdout, HelpMainUsage)
		return ExitCodeSuccess
	}

	cmd := args[0]
	switch cmd {
	case CmdNameDoctype:
		fmt.Fprintln(stdout, HelpDoctypeUsage)
	case CmdNameContentType:
		fmt.Fprintln(stdout, HelpContentTypeUsage)
	case CmdNamePreContent:
		fmt.Fprintln(stdout, HelpPreContentUsage)
	case CmdNameNegotiate:
		fmt.Fprintln(stdout, HelpNegotiateUsage)
	case CmdNameServe:
		fmt.Fprintln(stdout, HelpServeUsage)
	case CmdNameVersion:
		fmt.Fprintln(stdout, HelpVersionUsage)
	case CmdNameHelp:
		fmt.Fprintln(stdout, HelpHelpUsage)
	default:
		fmt.Fprintf(stdout, FmtErrorWithDetail, ErrMsgUnknownCommand, cmd)
		fmt.Fprintln(stdout, HelpMainUsage)
		return ExitCodeUsageError
	}

	return ExitCodeSuccess
}
