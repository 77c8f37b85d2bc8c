package calculator

import (
	"math"
	"sync"
	"testing"

	apperrors "arith/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpecializeMatchesBinaryOperations(t *testing.T) {
	calc := New()
	pairs := [][2]float64{{5, 10}, {3, 10}, {2, 5}, {4, 16}, {-1.5, 2.25}}

	for _, op := range Operations() {
		for _, p := range pairs {
			s, err := calc.Specialize(p[0], op.String())
			require.NoError(t, err)

			got, err := s.Apply(p[1])
			require.NoError(t, err)

			want, err := calc.Evaluate(op, p[0], p[1])
			require.NoError(t, err)
			assert.Equal(t, want, got, "%s(%v, %v)", op, p[0], p[1])
		}
	}
}

func TestSpecializeScenarios(t *testing.T) {
	calc := New()

	add5, err := calc.Specialize(5, "add")
	require.NoError(t, err)
	got, err := add5.Apply(10)
	require.NoError(t, err)
	assert.Equal(t, 15.0, got)

	divideBy4, err := calc.Specialize(4, "divide")
	require.NoError(t, err)
	_, err = divideBy4.Apply(0)
	assert.ErrorIs(t, err, apperrors.ErrDivisionByZero)

	got, err = divideBy4.Apply(16)
	require.NoError(t, err)
	assert.Equal(t, 0.25, got)
}

func TestSpecializeOperandOrder(t *testing.T) {
	s, err := New().Specialize(3, "subtract")
	require.NoError(t, err)

	got, err := s.Apply(10)
	require.NoError(t, err)
	assert.Equal(t, -7.0, got, "subtract must compute a-b, not b-a")
}

func TestSpecializeUnsupportedOperation(t *testing.T) {
	_, err := New().Specialize(4, "unknown")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrUnsupportedOperation)
	for _, name := range []string{"add", "subtract", "multiply", "divide"} {
		assert.Contains(t, err.Error(), name)
	}

	_, err = New().SpecializeOp(4, Operation(17))
	assert.ErrorIs(t, err, apperrors.ErrUnsupportedOperation)
}

func TestSpecializeInvalidOperand(t *testing.T) {
	_, err := New().Specialize(math.NaN(), "add")
	assert.ErrorIs(t, err, apperrors.ErrInvalidOperand)

	// the operand is validated before the operation name
	_, err = New().Specialize(math.Inf(1), "unknown")
	assert.ErrorIs(t, err, apperrors.ErrInvalidOperand)

	_, err = New().SpecializeOp(math.Inf(-1), OpMultiply)
	assert.ErrorIs(t, err, apperrors.ErrInvalidOperand)
}

func TestApplyRevalidatesEveryCall(t *testing.T) {
	s, err := New().SpecializeOp(2, OpMultiply)
	require.NoError(t, err)

	_, err = s.Apply(math.NaN())
	assert.ErrorIs(t, err, apperrors.ErrInvalidOperand)

	got, err := s.Apply(5)
	require.NoError(t, err)
	assert.Equal(t, 10.0, got)

	_, err = s.Apply(math.Inf(1))
	assert.ErrorIs(t, err, apperrors.ErrInvalidOperand)
}

func TestZeroSpecializedIsUnsupported(t *testing.T) {
	var s Specialized
	_, err := s.Apply(1)
	assert.ErrorIs(t, err, apperrors.ErrUnsupportedOperation)
}

func TestSpecializedAccessors(t *testing.T) {
	s, err := New().Specialize(2.5, "MULTIPLY")
	require.NoError(t, err)

	assert.Equal(t, 2.5, s.Operand())
	assert.Equal(t, OpMultiply, s.Operation())
	assert.Equal(t, "multiply(2.5, _)", s.String())

	fn := s.Func()
	got, err := fn(4)
	require.NoError(t, err)
	assert.Equal(t, 10.0, got)
}

func TestSpecializedConcurrentUse(t *testing.T) {
	s, err := New().Specialize(100, "divide")
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([]float64, 64)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			v, err := s.Apply(float64(i + 1))
			if err == nil {
				results[i] = v
			}
		}(i)
	}
	wg.Wait()

	for i, v := range results {
		assert.Equal(t, 100/float64(i+1), v)
	}
}
