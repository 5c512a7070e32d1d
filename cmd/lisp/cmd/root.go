package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "lisp",
	Short: "A student Lisp/Scheme interpreter",
	Long: `lisp is an interpreter for a small, purely functional teaching dialect
of Lisp/Scheme: definitions, cond/if, structures, a numeric tower with exact
rationals, and check-expect tests, evaluated by a tree-walking interpreter
that eliminates tail calls for self-recursion through if.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
}
