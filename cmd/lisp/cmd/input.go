package cmd

import (
	"fmt"
	"io"
	"os"
)

// readInput resolves a command's source text from, in priority order: an
// inline -e expression, a file argument, or stdin. filename is "<eval>" for
// inline code and "<stdin>" when no file argument was given.
func readInput(evalExpr string, args []string) (input, filename string, err error) {
	switch {
	case evalExpr != "":
		return evalExpr, "<eval>", nil
	case len(args) == 1:
		content, rerr := os.ReadFile(args[0])
		if rerr != nil {
			return "", "", fmt.Errorf("failed to read file %s: %w", args[0], rerr)
		}
		return string(content), args[0], nil
	default:
		data, rerr := io.ReadAll(os.Stdin)
		if rerr != nil {
			return "", "", fmt.Errorf("error reading stdin: %w", rerr)
		}
		return string(data), "<stdin>", nil
	}
}
