package semantic

import (
	"github.com/mekolab/lisp-interp/internal/ast"
	"github.com/mekolab/lisp-interp/internal/diag"
)

// analyzeCheckExpect visits both of a check-expect's expressions. The
// exactly-two-expressions rule was already enforced by internal/parser's
// parseCheckExpect, so there's nothing left to validate here beyond
// recursing into Actual/Expected. Grounded on semantics.py's
// visit_CheckExpect.
func (a *Analyzer) analyzeCheckExpect(n *ast.CheckExpect) *diag.Error {
	if err := a.analyze(n.Actual); err != nil {
		return err
	}
	return a.analyze(n.Expected)
}
