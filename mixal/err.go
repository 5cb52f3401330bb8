package mixal

import (
	"strconv"

	"github.com/ezrec/mixvm/translate"
)

var f = translate.From

var (
	ErrNameInvalid        = translate.NewError("name invalid")
	ErrLabelDuplicate     = translate.NewError("label duplicated")
	ErrEquateSyntax       = translate.NewError("IS syntax")
	ErrEquateDuplicate    = translate.NewError("IS duplicated")
	ErrLocationInvalid    = translate.NewError("location invalid")
	ErrInstructionInvalid = translate.NewError("instruction invalid")
	ErrOperandMissing     = translate.NewError("operand missing")
	ErrOperandExtra       = translate.NewError("excessive operands")
)

type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err *ErrSyntax) Error() string {
	return f("line %s '%v' %v", strconv.Itoa(err.LineNo), err.Line, err.Err)
}

func (err *ErrSyntax) Unwrap() error {
	return err.Err
}

// ErrParseExpression is an operand that does not evaluate to a word.
type ErrParseExpression struct {
	Expr string
	Err  error
}

func (err *ErrParseExpression) Error() string {
	if err.Err != nil {
		return f("'%v' is not a valid expression: %v", err.Expr, err.Err)
	}
	return f("'%v' is not a valid expression", err.Expr)
}

func (err *ErrParseExpression) Unwrap() error {
	return err.Err
}
