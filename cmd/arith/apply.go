package main

import (
	"fmt"

	"arith/internal/calculator"
	"arith/internal/config"
	apperrors "arith/internal/errors"
	"arith/internal/telemetry"
	"arith/internal/ui"

	"github.com/spf13/cobra"
)

var applyCmd = &cobra.Command{
	Use:   "apply <a> <operation> <b>...",
	Short: "Bind a and an operation, then apply it to each b",
	Long: `Build a specialized calculator that fixes the first operand and the
operation, then evaluate it for every remaining argument in order.

A failing value is reported and the remaining values are still evaluated.`,
	Example: "arith apply 4 divide 16 0 2",
	Args:    cobra.MinimumNArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := calculator.ParseOperand(args[0])
		if err != nil {
			appMetrics.Observe(operationLabel(args[1]), err)
			return err
		}
		spec, err := calc.Specialize(a, args[1])
		if err != nil {
			appMetrics.Observe(operationLabel(args[1]), err)
			return err
		}
		appMetrics.ObserveSpecialized(spec.Operation().String())
		op := spec.Operation()

		var outputs []calcOutput
		var last error
		for _, raw := range args[2:] {
			out := calcOutput{Operation: op.String(), A: jsonNumber(a, -1), B: raw}

			b, err := parseArg(op, raw)
			var result float64
			if err == nil {
				out.B = jsonNumber(b, -1)
				result, err = spec.Apply(b)
				telemetry.LogEvaluation(nil, op.String(), a, b, result, err)
			}
			appMetrics.Observe(op.String(), err)

			if err != nil {
				last = err
				out.Error = err.Error()
				out.Kind = apperrors.KindOf(err).String()
			} else {
				out.Result = jsonNumber(result, settings.Precision)
			}
			outputs = append(outputs, out)

			if settings.Output == config.OutputJSON {
				continue
			}
			label := ui.Label(fmt.Sprintf("%s(%s, %s) =", op, calculator.FormatOperand(a, -1), raw))
			if err != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", label, ui.Error(err.Error()))
				continue
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", label, ui.Result(calculator.FormatOperand(result, settings.Precision)))
		}

		if settings.Output == config.OutputJSON {
			if err := writeJSON(cmd.OutOrStdout(), outputs); err != nil {
				return err
			}
		}
		if last != nil {
			return reportedError{last}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(applyCmd)
}

// operationLabel names the metrics series for a requested operation.
func operationLabel(name string) string {
	op, err := calculator.ParseOperation(name)
	if err != nil {
		return "unknown"
	}
	return op.String()
}
