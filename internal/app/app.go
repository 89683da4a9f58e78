// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"orfscan/internal/appcore"
	"orfscan/internal/cli"
	"orfscan/internal/writers"
)

// RunContext executes one orfscan command line and returns its exit code.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)

	code := appcore.ExitOK
	root := cli.NewRoot(&code)
	root.SetArgs(argv)
	root.SetOut(outw)
	root.SetErr(stderr)

	err := root.ExecuteContext(parent)
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return appcore.ExitOK
	} else if e != nil {
		_, _ = fmt.Fprintln(stderr, e)
		return appcore.ExitFailure
	}
	if writers.IsBrokenPipe(err) {
		return appcore.ExitOK
	}
	if err != nil {
		_, _ = fmt.Fprintln(stderr, "error:", err)
		return appcore.ExitUsage
	}
	return code
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
