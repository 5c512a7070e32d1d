// Command lisp is a CLI front end for the interpreter in
// github.com/mekolab/lisp-interp/pkg/lisp.
package main

import (
	"fmt"
	"os"

	"github.com/mekolab/lisp-interp/cmd/lisp/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
