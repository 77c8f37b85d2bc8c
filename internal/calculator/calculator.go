// Package calculator implements validated arithmetic over float64 operands and
// specialized calculators that bind one operand and one operation ahead of time.
//
// Every function is pure. Calculator and Specialized values hold no mutable
// state and may be shared between goroutines.
package calculator

import (
	"math"
	"strconv"

	apperrors "arith/internal/errors"
)

// Calculator exposes the four basic operations.
type Calculator struct{}

// New returns a Calculator.
func New() Calculator {
	return Calculator{}
}

// Add returns a + b.
func (c Calculator) Add(a, b float64) (float64, error) {
	return c.Evaluate(OpAdd, a, b)
}

// Subtract returns a - b.
func (c Calculator) Subtract(a, b float64) (float64, error) {
	return c.Evaluate(OpSubtract, a, b)
}

// Multiply returns a * b.
func (c Calculator) Multiply(a, b float64) (float64, error) {
	return c.Evaluate(OpMultiply, a, b)
}

// Divide returns a / b. A zero divisor, including -0, fails with
// DivisionByZero once both operands have been validated.
func (c Calculator) Divide(a, b float64) (float64, error) {
	return c.Evaluate(OpDivide, a, b)
}

// Evaluate applies op to a and b, in that order.
func (c Calculator) Evaluate(op Operation, a, b float64) (float64, error) {
	if !op.Valid() {
		return 0, apperrors.UnsupportedOperation(op.String(), Names())
	}
	if err := checkOperand(op.String(), "a", a); err != nil {
		return 0, err
	}
	if err := checkOperand(op.String(), "b", b); err != nil {
		return 0, err
	}

	switch op {
	case OpAdd:
		return a + b, nil
	case OpSubtract:
		return a - b, nil
	case OpMultiply:
		return a * b, nil
	default:
		if b == 0 {
			return 0, apperrors.DivisionByZero(op.String())
		}
		return a / b, nil
	}
}

func checkOperand(op, name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return apperrors.InvalidOperand(op, name+" is "+strconv.FormatFloat(v, 'g', -1, 64))
	}
	return nil
}

// Add returns a + b using a zero Calculator.
func Add(a, b float64) (float64, error) { return Calculator{}.Add(a, b) }

// Subtract returns a - b using a zero Calculator.
func Subtract(a, b float64) (float64, error) { return Calculator{}.Subtract(a, b) }

// Multiply returns a * b using a zero Calculator.
func Multiply(a, b float64) (float64, error) { return Calculator{}.Multiply(a, b) }

// Divide returns a / b using a zero Calculator.
func Divide(a, b float64) (float64, error) { return Calculator{}.Divide(a, b) }
