// Package diag is the diagnostic catalog and error type shared by every
// pipeline stage (lexer, parser, semantic analyzer, interpreter). Centralizing
// position and error-code types here — rather than, say, defining Position on
// the lexer and having every other package import it from there — keeps
// internal/lexer, internal/parser, internal/semantic, and internal/interp
// free of cross-imports between themselves for something as small as "where
// did this happen".
package diag

import "fmt"

// Position identifies a location in source text. Both fields are 1-based;
// Column counts Unicode code points (runes) from the start of the line.
type Position struct {
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}
