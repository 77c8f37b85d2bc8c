package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies a calculation failure.
type Kind int

const (
	KindUnknown Kind = iota
	KindInvalidOperand
	KindDivisionByZero
	KindUnsupportedOperation
)

var (
	ErrInvalidOperand       = errors.New("invalid operand")
	ErrDivisionByZero       = errors.New("division by zero")
	ErrUnsupportedOperation = errors.New("unsupported operation")
)

// String returns the snake_case label used in metrics and JSON output.
func (k Kind) String() string {
	switch k {
	case KindInvalidOperand:
		return "invalid_operand"
	case KindDivisionByZero:
		return "division_by_zero"
	case KindUnsupportedOperation:
		return "unsupported_operation"
	default:
		return "unknown"
	}
}

func (k Kind) sentinel() error {
	switch k {
	case KindInvalidOperand:
		return ErrInvalidOperand
	case KindDivisionByZero:
		return ErrDivisionByZero
	case KindUnsupportedOperation:
		return ErrUnsupportedOperation
	default:
		return nil
	}
}

// CalcError is returned by every failing calculator operation.
type CalcError struct {
	Kind   Kind
	Op     string // operation name, empty when no operation was resolved yet
	Detail string
}

// Error implements the error interface
func (e *CalcError) Error() string {
	var b strings.Builder
	if e.Op != "" {
		b.WriteString(e.Op)
		b.WriteString(": ")
	}
	if s := e.Kind.sentinel(); s != nil {
		b.WriteString(s.Error())
	} else {
		b.WriteString("calculation failed")
	}
	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}
	return b.String()
}

// Unwrap exposes the sentinel for the error's kind so errors.Is works.
func (e *CalcError) Unwrap() error {
	return e.Kind.sentinel()
}

// InvalidOperand reports an argument that is not a finite number.
func InvalidOperand(op, detail string) *CalcError {
	return &CalcError{Kind: KindInvalidOperand, Op: op, Detail: detail}
}

// DivisionByZero reports a zero divisor.
func DivisionByZero(op string) *CalcError {
	return &CalcError{Kind: KindDivisionByZero, Op: op, Detail: "cannot divide by zero"}
}

// UnsupportedOperation reports an operation name outside the supported set.
func UnsupportedOperation(name string, valid []string) *CalcError {
	return &CalcError{
		Kind:   KindUnsupportedOperation,
		Detail: fmt.Sprintf("%q is not one of %s", name, strings.Join(valid, ", ")),
	}
}

// KindOf classifies err, looking through any wrapping.
func KindOf(err error) Kind {
	var calcErr *CalcError
	switch {
	case err == nil:
		return KindUnknown
	case errors.As(err, &calcErr):
		return calcErr.Kind
	case errors.Is(err, ErrInvalidOperand):
		return KindInvalidOperand
	case errors.Is(err, ErrDivisionByZero):
		return KindDivisionByZero
	case errors.Is(err, ErrUnsupportedOperation):
		return KindUnsupportedOperation
	default:
		return KindUnknown
	}
}

// ExitCode maps err to a process exit status.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	switch KindOf(err) {
	case KindInvalidOperand:
		return 2
	case KindDivisionByZero:
		return 3
	case KindUnsupportedOperation:
		return 4
	default:
		return 1
	}
}
