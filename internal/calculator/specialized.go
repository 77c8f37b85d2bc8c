package calculator

import (
	"fmt"

	apperrors "arith/internal/errors"
)

// Specialized is a unary calculator with a fixed first operand and operation.
// The zero value is not usable; build one with Specialize or SpecializeOp.
type Specialized struct {
	a  float64
	op Operation
}

// Specialize validates a, resolves operationType by name and returns a
// calculator that computes operation(a, b) for each b it is applied to.
func (c Calculator) Specialize(a float64, operationType string) (Specialized, error) {
	if err := checkOperand("specialize", "a", a); err != nil {
		return Specialized{}, err
	}
	op, err := ParseOperation(operationType)
	if err != nil {
		return Specialized{}, err
	}
	return Specialized{a: a, op: op}, nil
}

// SpecializeOp is Specialize for an already resolved operation.
func (c Calculator) SpecializeOp(a float64, op Operation) (Specialized, error) {
	if err := checkOperand("specialize", "a", a); err != nil {
		return Specialized{}, err
	}
	if !op.Valid() {
		return Specialized{}, apperrors.UnsupportedOperation(op.String(), Names())
	}
	return Specialized{a: a, op: op}, nil
}

// Apply computes operation(a, b). b is validated on every call.
func (s Specialized) Apply(b float64) (float64, error) {
	return Calculator{}.Evaluate(s.op, s.a, b)
}

// Func returns Apply as a plain function value.
func (s Specialized) Func() func(float64) (float64, error) {
	return s.Apply
}

// Operand returns the bound first operand.
func (s Specialized) Operand() float64 { return s.a }

// Operation returns the bound operation.
func (s Specialized) Operation() Operation { return s.op }

func (s Specialized) String() string {
	return fmt.Sprintf("%s(%s, _)", s.op, FormatOperand(s.a, -1))
}
