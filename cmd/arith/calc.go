package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"

	"arith/internal/calculator"
	"arith/internal/config"
	apperrors "arith/internal/errors"
	"arith/internal/telemetry"
	"arith/internal/ui"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newBinaryCommand(calculator.OpAdd, "Add two numbers", "arith add 5 3"))
	rootCmd.AddCommand(newBinaryCommand(calculator.OpSubtract, "Subtract the second number from the first", "arith subtract 10 4"))
	rootCmd.AddCommand(newBinaryCommand(calculator.OpMultiply, "Multiply two numbers", "arith multiply 7 6"))
	rootCmd.AddCommand(newBinaryCommand(calculator.OpDivide, "Divide the first number by the second", "arith divide 15 3"))
}

// calcOutput is the JSON shape of a single evaluation.
type calcOutput struct {
	Operation string `json:"operation"`
	A         any    `json:"a"`
	B         any    `json:"b"`
	Result    any    `json:"result,omitempty"`
	Error     string `json:"error,omitempty"`
	Kind      string `json:"kind,omitempty"`
}

func newBinaryCommand(op calculator.Operation, short, example string) *cobra.Command {
	return &cobra.Command{
		Use:     fmt.Sprintf("%s <a> <b>", op),
		Short:   short,
		Example: example,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := calcOutput{Operation: op.String(), A: args[0], B: args[1]}

			result, err := evaluateArgs(op, args[0], args[1], &out)
			if err == nil {
				out.Result = jsonNumber(result, settings.Precision)
			}

			if settings.Output == config.OutputJSON {
				if err != nil {
					out.Error = err.Error()
					out.Kind = apperrors.KindOf(err).String()
				}
				if encErr := writeJSON(cmd.OutOrStdout(), out); encErr != nil {
					return encErr
				}
				if err != nil {
					return reportedError{err}
				}
				return nil
			}

			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Result(calculator.FormatOperand(result, settings.Precision)))
			return nil
		},
	}
}

// evaluateArgs parses both operands and evaluates op, recording the outcome.
// Parsed operands are copied into out.
func evaluateArgs(op calculator.Operation, rawA, rawB string, out *calcOutput) (float64, error) {
	a, err := parseArg(op, rawA)
	if err != nil {
		appMetrics.Observe(op.String(), err)
		return 0, err
	}
	out.A = jsonNumber(a, -1)
	b, err := parseArg(op, rawB)
	if err != nil {
		appMetrics.Observe(op.String(), err)
		return 0, err
	}
	out.B = jsonNumber(b, -1)

	result, err := calc.Evaluate(op, a, b)
	appMetrics.Observe(op.String(), err)
	telemetry.LogEvaluation(nil, op.String(), a, b, result, err)
	return result, err
}

// parseArg parses a command-line operand and attributes failures to op.
func parseArg(op calculator.Operation, raw string) (float64, error) {
	v, err := calculator.ParseOperand(raw)
	if err != nil {
		var calcErr *apperrors.CalcError
		if errors.As(err, &calcErr) && calcErr.Op == "" {
			return 0, apperrors.InvalidOperand(op.String(), calcErr.Detail)
		}
		return 0, err
	}
	return v, nil
}

// jsonNumber keeps the configured precision in JSON output. Infinite results
// have no JSON number form and are emitted as strings.
func jsonNumber(v float64, precision int) any {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return calculator.FormatOperand(v, -1)
	}
	return json.Number(calculator.FormatOperand(v, precision))
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	return nil
}
