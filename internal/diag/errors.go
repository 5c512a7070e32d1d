package diag

import "fmt"

// Code identifies the kind of diagnostic, grouped by the phase that raises
// it (read-syntax, name/scope, define, cond, function-call, general). The
// names and wording below are transcribed from the original interpreter's
// ErrorCode enum (racketinterpreter/errors.py) so the message text a student
// sees matches the dialect's reference implementation.
type Code int

const (
	// Read-syntax (bracket pre-analyzer, lexer, parser)
	RSBadSyntax Code = iota
	RSEOFInBlockComment
	RSExpectedDoubleQuote
	RSExpectedRightParenthesis
	RSIncorrectRightParenthesis
	RSSymbolFoundEOF
	RSUnexpected
	RSUnexpectedEOF
	RSUnexpectedRightParenthesis
	RSUnexpectedToken

	FeatureNotImplemented

	// Name / scope
	BuiltinOrImportedName
	PreviouslyDefinedName
	UsedBeforeDefinition
	UsingStructureType

	// Arity / type / arithmetic
	IncorrectArgumentCount
	IncorrectArgumentType
	DivisionByZero

	// cond
	CAllQuestionResultsFalse
	CElseNotLastClause
	CExpectedAClause
	CExpectedOpenParenthesis
	CExpectedQuestionAnswerClause
	CQuestionResultNotBoolean

	// check-expect
	CEIncorrectArgumentCount

	// define / define-struct
	DDuplicateVariable
	DExpectedAName
	DExpectedOpenParenthesis
	DNotTopLevel
	DPExpectedAVariable
	DPExpectedFunctionName
	DPExpectedOneExpression
	DPMissingAnExpression
	DVExpectedOneExpression
	DVMissingAnExpression

	DSExpectedAField
	DSExpectedFieldNames
	DSExpectedOpenParenthesis
	DSExpectedStructureName
	DSNotTopLevel
	DSPostFieldNames

	ENotAllowed

	FCExpectedAFunction
)

// Error is a single diagnostic: a code, the source position it occurred at,
// and the fully rendered message. All pipeline stages construct these
// through the constructor functions in catalog.go rather than building the
// message text inline, so wording stays centralized and consistent.
type Error struct {
	Code    Code
	Pos     Position
	Message string
}

// Error implements the error interface, rendering the single-line
// "[line:column] message" form spec.md §6/§7 requires.
func (e *Error) Error() string {
	return fmt.Sprintf("[%s] %s", e.Pos, e.Message)
}

func newError(code Code, pos Position, format string, args ...interface{}) *Error {
	return &Error{Code: code, Pos: pos, Message: fmt.Sprintf(format, args...)}
}
