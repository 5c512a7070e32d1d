package diag

import "fmt"

// This file is the message catalog: one constructor function per Code,
// each filling in the original interpreter's message template. Callers
// that need to describe "what token was found instead" (many of the
// define/cond/define-struct diagnostics) pre-render that fragment as a
// plain string — diag intentionally has no dependency on internal/lexer's
// token types, so that description lives in the caller (parser/semantic).

// DescribeNothing, DescribeBoolean, ... are the "found a ..." fragments the
// original interpreter's errors.py builds per call site. Centralizing the
// literal English here (rather than inlining it at each call site) keeps
// wording consistent across the several diagnostics that reuse it.
const (
	DescribeNothing  = "nothing's there"
	DescribeBoolean  = "found a boolean"
	DescribeNumber   = "found a number"
	DescribeString   = "found a string"
	DescribeKeyword  = "found a keyword"
	DescribePart     = "found a part"
	DescribeSomeElse = "found something else"
)

func BadSyntax(pos Position, text string) *Error {
	return newError(RSBadSyntax, pos, "read-syntax: bad syntax `%s`", text)
}

func EOFInBlockComment(pos Position) *Error {
	return newError(RSEOFInBlockComment, pos, "read-syntax: end of file in `#|` comment")
}

func ExpectedDoubleQuote(pos Position) *Error {
	return newError(RSExpectedDoubleQuote, pos, "read-syntax: expected a closing `\"`")
}

func ExpectedRightParenthesis(pos Position, leftParen, rightParen string) *Error {
	return newError(RSExpectedRightParenthesis, pos, "read-syntax: expected a `%s` to close `%s`", rightParen, leftParen)
}

func IncorrectRightParenthesis(pos Position, leftParen, correctRightParen, incorrectRightParen string) *Error {
	return newError(RSIncorrectRightParenthesis, pos,
		"read-syntax: expected `%s` to close preceding `%s`, found instead `%s`",
		correctRightParen, leftParen, incorrectRightParen)
}

func SymbolFoundEOF(pos Position) *Error {
	return newError(RSSymbolFoundEOF, pos, "read-syntax: expected an element for quoting \"'\", found end-of-file")
}

func Unexpected(pos Position, value string) *Error {
	return newError(RSUnexpected, pos, "read-syntax: unexpected `%s`", value)
}

func UnexpectedEOF(pos Position) *Error {
	return newError(RSUnexpectedEOF, pos, "read-syntax: unexpected EOF")
}

func UnexpectedRightParenthesis(pos Position) *Error {
	return newError(RSUnexpectedRightParenthesis, pos, "read-syntax: unexpected `)`")
}

func UnexpectedToken(pos Position, tokenValue string) *Error {
	return newError(RSUnexpectedToken, pos, "read-syntax: unexpected token `%s`", tokenValue)
}

func NotImplemented(pos Position) *Error {
	return newError(FeatureNotImplemented, pos, "what you are trying to do is valid, it is just not supported yet")
}

func BuiltinOrImportedNameErr(pos Position, name string) *Error {
	return newError(BuiltinOrImportedName, pos, "%s: this name was defined in the language or a required library and cannot be re-defined", name)
}

func PreviouslyDefinedNameErr(pos Position, name string) *Error {
	return newError(PreviouslyDefinedName, pos, "%s: this name was defined previously and cannot be re-defined", name)
}

func UsedBeforeDefinitionErr(pos Position, name string) *Error {
	return newError(UsedBeforeDefinition, pos, "%s is used here before its definition", name)
}

func UsingStructureTypeErr(pos Position, name string) *Error {
	return newError(UsingStructureType, pos, "%s: structure type; do you mean make-%s", name, name)
}

// IncorrectArgumentCountErr renders the arity mismatch message. upper == nil
// means "at least lower"; otherwise the call expects exactly lower==upper
// (built-ins with a fixed upper bound higher than lower never occur in this
// dialect's registry, matching the original's lower/upper contract).
func IncorrectArgumentCountErr(pos Position, name string, lower int, upper *int, received int) *Error {
	var expects string
	if upper == nil {
		plural := ""
		if lower > 1 {
			plural = "s"
		}
		expects = fmt.Sprintf("expects at least %d argument%s", lower, plural)
	} else {
		only := ""
		if lower == 1 {
			only = "only "
		}
		plural := "s"
		if lower == 1 {
			plural = ""
		}
		expects = fmt.Sprintf("expects %s%d argument%s", only, lower, plural)
	}
	found := fmt.Sprintf("found %d", received)
	if received == 0 {
		found = "found none"
	}
	return newError(IncorrectArgumentCount, pos, "%s: %s, but %s", name, expects, found)
}

// IncorrectArgumentTypeErr renders the type mismatch message for a builtin
// call. idx is the zero-based argument position, used only when multi is
// true (the call has more than one argument).
func IncorrectArgumentTypeErr(pos Position, name, expectedType, given string, multi bool, idx int) *Error {
	expects := fmt.Sprintf("expects a %s", expectedType)
	if multi {
		expects += fmt.Sprintf(" as %s argument", ordinal(idx+1))
	}
	return newError(IncorrectArgumentType, pos, "%s: %s, given %s", name, expects, given)
}

func ordinal(n int) string {
	suffix := "th"
	switch {
	case n%100 >= 11 && n%100 <= 13:
		suffix = "th"
	case n%10 == 1:
		suffix = "st"
	case n%10 == 2:
		suffix = "nd"
	case n%10 == 3:
		suffix = "rd"
	}
	return fmt.Sprintf("%d%s", n, suffix)
}

func DivisionByZeroErr(pos Position) *Error {
	return newError(DivisionByZero, pos, "/: division by zero")
}

func AllQuestionResultsFalse(pos Position) *Error {
	return newError(CAllQuestionResultsFalse, pos, "cond: all question results were false")
}

func ElseNotLastClause(pos Position) *Error {
	return newError(CElseNotLastClause, pos, "cond: found an else clause that isn't the last clause in its cond expression")
}

func ExpectedAClause(pos Position) *Error {
	return newError(CExpectedAClause, pos, "cond: expected a clause after cond, but nothing's there")
}

func CondExpectedOpenParenthesis(pos Position) *Error {
	return newError(CExpectedOpenParenthesis, pos, "cond: expected an open parenthesis before cond, but found none")
}

func ExpectedQuestionAnswerClause(pos Position, found string) *Error {
	return newError(CExpectedQuestionAnswerClause, pos, "cond: expected a clause with a question and an answer, but %s", found)
}

func QuestionResultNotBoolean(pos Position, result string) *Error {
	return newError(CQuestionResultNotBoolean, pos, "cond: question result is not true or false: %s", result)
}

func CheckExpectIncorrectArgumentCount(pos Position, received int) *Error {
	expects := "expects 2 arguments"
	if received > 2 {
		expects = "expects only 2 arguments"
	}
	found := fmt.Sprintf("but found %d", received)
	if received == 0 {
		found = "but found none"
	}
	return newError(CEIncorrectArgumentCount, pos, "check-expect: %s, %s", expects, found)
}

func DuplicateVariable(pos Position, name string) *Error {
	return newError(DDuplicateVariable, pos, "define: found a variable that is used more than once: %s", name)
}

func ExpectedAName(pos Position, found string) *Error {
	return newError(DExpectedAName, pos, "define: expected a variable name, or a function name and its variables (in parentheses), but %s", found)
}

func DefineExpectedOpenParenthesis(pos Position) *Error {
	return newError(DExpectedOpenParenthesis, pos, "define: expected an open parenthesis before define, but found none")
}

func DefineNotTopLevel(pos Position) *Error {
	return newError(DNotTopLevel, pos, "define: found a definition that is not at the top level")
}

func ExpectedAVariable(pos Position, found string) *Error {
	return newError(DPExpectedAVariable, pos, "define: expected a variable, but %s", found)
}

func ExpectedFunctionName(pos Position, found string) *Error {
	return newError(DPExpectedFunctionName, pos, "define: expected the name of the function, but %s", found)
}

func ExpectedOneExpression(pos Position, extraParts int) *Error {
	plural := ""
	if extraParts > 1 {
		plural = "s"
	}
	return newError(DPExpectedOneExpression, pos, "define: expected only one expression for the function body, but found %d extra part%s", extraParts, plural)
}

func MissingAnExpression(pos Position) *Error {
	return newError(DPMissingAnExpression, pos, "define: expected an expression for the function body, but nothing's there")
}

func VarExpectedOneExpression(pos Position, name string, extraParts int) *Error {
	plural := ""
	if extraParts > 1 {
		plural = "s"
	}
	return newError(DVExpectedOneExpression, pos, "define: expected only one expression after the variable name %s, but found %d extra part%s", name, extraParts, plural)
}

func VarMissingAnExpression(pos Position, name string) *Error {
	return newError(DVMissingAnExpression, pos, "define: expected an expression after the variable name %s, but nothing's there", name)
}

func ExpectedAField(pos Position, found string) *Error {
	return newError(DSExpectedAField, pos, "define-struct: expected a field name, but %s", found)
}

func ExpectedFieldNames(pos Position, found string) *Error {
	return newError(DSExpectedFieldNames, pos, "define-struct: expected at least one field name (in parentheses) after the structure name, but %s", found)
}

func StructExpectedOpenParenthesis(pos Position) *Error {
	return newError(DSExpectedOpenParenthesis, pos, "define-struct: expected an open parenthesis before define-struct, but found none")
}

func ExpectedStructureName(pos Position, found string) *Error {
	return newError(DSExpectedStructureName, pos, "define-struct: expected the structure name after define-struct, but %s", found)
}

func StructNotTopLevel(pos Position) *Error {
	return newError(DSNotTopLevel, pos, "define-struct: found a definition that is not at the top level")
}

func PostFieldNames(pos Position, extraParts int) *Error {
	plural := ""
	if extraParts > 1 {
		plural = "s"
	}
	return newError(DSPostFieldNames, pos, "define-struct: expected nothing after the field names, but found %d extra part%s", extraParts, plural)
}

func NotAllowed(pos Position) *Error {
	return newError(ENotAllowed, pos, "else: not allowed here, because this is not a question in a clause")
}

func ExpectedAFunction(pos Position, found string) *Error {
	return newError(FCExpectedAFunction, pos, "function-call: expected a function after the open parenthesis, but %s", found)
}
