package calculator

import (
	"strings"

	apperrors "arith/internal/errors"
)

// Operation identifies one of the four supported binary operations.
type Operation int

const (
	OpAdd Operation = iota + 1
	OpSubtract
	OpMultiply
	OpDivide
)

var operationNames = map[Operation]string{
	OpAdd:      "add",
	OpSubtract: "subtract",
	OpMultiply: "multiply",
	OpDivide:   "divide",
}

var operationSymbols = map[Operation]string{
	OpAdd:      "+",
	OpSubtract: "-",
	OpMultiply: "*",
	OpDivide:   "/",
}

// Operations returns the supported operations in canonical order.
func Operations() []Operation {
	return []Operation{OpAdd, OpSubtract, OpMultiply, OpDivide}
}

// Names returns the canonical names of the supported operations.
func Names() []string {
	ops := Operations()
	names := make([]string, len(ops))
	for i, op := range ops {
		names[i] = op.String()
	}
	return names
}

// ParseOperation resolves a canonical name (case-insensitive) or symbol.
func ParseOperation(name string) (Operation, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, op := range Operations() {
		if key == operationNames[op] || key == operationSymbols[op] {
			return op, nil
		}
	}
	return 0, apperrors.UnsupportedOperation(name, Names())
}

// Valid reports whether o is one of the four supported operations.
func (o Operation) Valid() bool {
	_, ok := operationNames[o]
	return ok
}

func (o Operation) String() string {
	if name, ok := operationNames[o]; ok {
		return name
	}
	return "unknown"
}

// Symbol returns the infix symbol, e.g. "+" for OpAdd.
func (o Operation) Symbol() string {
	if sym, ok := operationSymbols[o]; ok {
		return sym
	}
	return "?"
}
