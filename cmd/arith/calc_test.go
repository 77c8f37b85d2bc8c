package main

import (
	"encoding/json"
	"testing"

	apperrors "arith/internal/errors"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBinaryCommands(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"add", []string{"add", "5", "3"}, "8\n"},
		{"subtract", []string{"subtract", "10", "4"}, "6\n"},
		{"multiply", []string{"multiply", "7", "6"}, "42\n"},
		{"divide", []string{"divide", "15", "3"}, "5\n"},
		{"fractional", []string{"divide", "1", "4"}, "0.25\n"},
		{"negative operand", []string{"subtract", "--", "-5", "3"}, "-8\n"},
		{"precision", []string{"divide", "--precision", "3", "2", "3"}, "0.667\n"},
		{"whitespace", []string{"add", " 1.5", "2 "}, "3.5\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := executeCommand(rootCmd, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestBinaryCommandErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		is   error
		msg  string
	}{
		{"division by zero", []string{"divide", "10", "0"}, apperrors.ErrDivisionByZero, "divide: division by zero: cannot divide by zero"},
		{"not a number", []string{"add", "abc", "1"}, apperrors.ErrInvalidOperand, `add: invalid operand: "abc" is not a number`},
		{"NaN", []string{"multiply", "1", "NaN"}, apperrors.ErrInvalidOperand, "multiply: invalid operand"},
		{"infinite", []string{"subtract", "Inf", "1"}, apperrors.ErrInvalidOperand, "subtract: invalid operand"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := executeCommand(rootCmd, tt.args...)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.is)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}

	t.Run("wrong arg count", func(t *testing.T) {
		_, err := executeCommand(rootCmd, "add", "1")
		require.Error(t, err)
		assert.Equal(t, 1, apperrors.ExitCode(err))
	})
}

func TestBinaryCommandJSON(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		out, err := executeCommand(rootCmd, "add", "-o", "json", "5", "3")
		require.NoError(t, err)
		assert.JSONEq(t, `{"operation":"add","a":5,"b":3,"result":8}`, out)
	})

	t.Run("failure", func(t *testing.T) {
		out, err := executeCommand(rootCmd, "divide", "--output", "json", "10", "0")
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrDivisionByZero)

		var got map[string]any
		require.NoError(t, json.Unmarshal([]byte(out), &got))
		assert.Equal(t, "divide", got["operation"])
		assert.Equal(t, 10.0, got["a"])
		assert.Equal(t, 0.0, got["b"])
		assert.Equal(t, "division_by_zero", got["kind"])
		assert.Equal(t, "divide: division by zero: cannot divide by zero", got["error"])
		assert.NotContains(t, got, "result")
	})

	t.Run("unparsed operand is echoed", func(t *testing.T) {
		out, err := executeCommand(rootCmd, "multiply", "-o", "json", "2", "x")
		require.Error(t, err)

		var got map[string]any
		require.NoError(t, json.Unmarshal([]byte(out), &got))
		assert.Equal(t, 2.0, got["a"])
		assert.Equal(t, "x", got["b"])
		assert.Equal(t, "invalid_operand", got["kind"])
	})

	t.Run("overflow", func(t *testing.T) {
		out, err := executeCommand(rootCmd, "multiply", "-o", "json", "1e308", "10")
		require.NoError(t, err)
		assert.Contains(t, out, `"result":"+Inf"`)
	})

	t.Run("from environment", func(t *testing.T) {
		t.Setenv("ARITH_OUTPUT", "json")
		out, err := executeCommand(rootCmd, "subtract", "3", "10")
		require.NoError(t, err)
		assert.JSONEq(t, `{"operation":"subtract","a":3,"b":10,"result":-7}`, out)
	})
}

func TestBinaryCommandRecordsMetrics(t *testing.T) {
	before := testutil.ToFloat64(appMetrics.FailuresTotal.WithLabelValues("divide", "division_by_zero"))

	_, err := executeCommand(rootCmd, "divide", "1", "0")
	require.Error(t, err)

	after := testutil.ToFloat64(appMetrics.FailuresTotal.WithLabelValues("divide", "division_by_zero"))
	assert.Equal(t, before+1, after)
}

func TestInvalidConfiguration(t *testing.T) {
	t.Setenv("ARITH_PRECISION", "42")
	_, err := executeCommand(rootCmd, "add", "1", "2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "precision must be between -1 and 17")
}
