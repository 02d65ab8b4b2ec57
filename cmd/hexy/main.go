// Command hexy encodes, decodes and formats hex from the command line.
package main

import (
	"io"
	"os"

	"go.uber.org/zap"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes hexy with args and returns the process exit status.
func run(args []string, in io.Reader, out, errOut io.Writer) int {
	a := newApp(in, out, errOut)
	cmd := a.rootCommand()
	cmd.SetArgs(args)
	cmd.SetIn(in)
	cmd.SetOut(out)
	cmd.SetErr(errOut)

	err := cmd.Execute()
	if err != nil {
		a.logger.Error("hexy failed", zap.Error(err))
	}
	_ = a.logger.Sync()
	if err != nil {
		return 1
	}
	return 0
}
