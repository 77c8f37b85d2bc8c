package calculator

import (
	"testing"

	apperrors "arith/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOperation(t *testing.T) {
	tests := []struct {
		in   string
		want Operation
	}{
		{"add", OpAdd},
		{"subtract", OpSubtract},
		{"multiply", OpMultiply},
		{"divide", OpDivide},
		{"  Divide ", OpDivide},
		{"ADD", OpAdd},
		{"+", OpAdd},
		{"-", OpSubtract},
		{"*", OpMultiply},
		{"/", OpDivide},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseOperation(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseOperationRejectsUnknownNames(t *testing.T) {
	for _, in := range []string{"", "pow", "sum", "%", "add x"} {
		_, err := ParseOperation(in)
		assert.ErrorIs(t, err, apperrors.ErrUnsupportedOperation, in)
	}
}

func TestOperationNames(t *testing.T) {
	assert.Equal(t, []string{"add", "subtract", "multiply", "divide"}, Names())
	assert.Len(t, Operations(), 4)

	for _, op := range Operations() {
		assert.True(t, op.Valid())
	}
	assert.False(t, Operation(0).Valid())
	assert.Equal(t, "unknown", Operation(0).String())
	assert.Equal(t, "?", Operation(0).Symbol())
	assert.Equal(t, "/", OpDivide.Symbol())
}
