package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/pkg/errors"
	"golang.org/x/term"
)

// Version is stamped at build time.
var Version = "dev"

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("Error: "+err.Error()))
		os.Exit(1)
	}
}

func run(args []string) (returnError error) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Recovered from panic: %v\n", r)
			debug.PrintStack()
			returnError = errors.New("panic recovered")
		}
	}()

	a := &app{
		stdin:        int(os.Stdin.Fd()),
		readPassword: term.ReadPassword,
	}
	defer a.close()

	root := newRootCmd(a)
	root.SetArgs(args)
	return root.Execute()
}
