package semantic

import (
	"fmt"

	"github.com/mekolab/lisp-interp/internal/ast"
	"github.com/mekolab/lisp-interp/internal/diag"
)

// analyzeCond implements spec.md §4.4's Cond rule: at least one clause or
// an else-branch is required; each clause holds exactly a predicate and an
// answer; a non-final clause whose predicate is the bare identifier `else`
// is misplaced. Grounded on semantics.py's visit_Cond/visit_CondBranch/
// visit_CondElse, adapted to populate ast.CondBranch's Predicate/Body (and
// ast.CondElse's Body) fields rather than mutating attributes on a
// dynamically-typed node the way the original does.
func (a *Analyzer) analyzeCond(n *ast.Cond) *diag.Error {
	if len(n.Branches) == 0 && n.Else == nil {
		return diag.ExpectedAClause(n.Pos())
	}

	for _, branch := range n.Branches {
		if len(branch.Exprs) != 2 {
			return diag.ExpectedQuestionAnswerClause(branch.Pos(), describeClausePartCount(len(branch.Exprs)))
		}
		if id, ok := branch.Exprs[0].(*ast.Id); ok && id.Name == "else" {
			return diag.ElseNotLastClause(branch.Pos())
		}

		branch.Predicate = branch.Exprs[0]
		branch.Body = branch.Exprs[1]

		if err := a.analyze(branch.Predicate); err != nil {
			return err
		}
		if err := a.analyze(branch.Body); err != nil {
			return err
		}
		ast.MarkChecked(branch)
	}

	if n.Else != nil {
		// part_count is the clause's expression count plus one, matching
		// the original's accounting for the else keyword itself as a part
		// of the clause.
		if len(n.Else.Exprs) != 1 {
			return diag.ExpectedQuestionAnswerClause(n.Else.Pos(), describeClausePartCount(len(n.Else.Exprs)+1))
		}

		n.Else.Body = n.Else.Exprs[0]
		if err := a.analyze(n.Else.Body); err != nil {
			return err
		}
		ast.MarkChecked(n.Else)
	}

	return nil
}

// describeClausePartCount renders the "found ..." fragment
// C_EXPECTED_QUESTION_ANSWER_CLAUSE uses when a clause has the wrong number
// of parts, transcribed from errors.py's part_count branch.
func describeClausePartCount(n int) string {
	switch n {
	case 0:
		return "found an empty part"
	case 1:
		return "found a clause with only one part"
	default:
		return fmt.Sprintf("found a clause with %d parts", n)
	}
}
