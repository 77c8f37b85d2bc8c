package main

import (
	"fmt"
	"io"

	"arith/internal/calculator"
	"arith/internal/ui"

	"github.com/spf13/cobra"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the calculator demonstration",
	Long:  `Exercise every operation, a caught division by zero, and four specialized calculators.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		runDemo(cmd.OutOrStdout(), calc)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(demoCmd)
}

type demoStep struct {
	label string
	run   func() (float64, error)
}

func runDemo(w io.Writer, c calculator.Calculator) {
	basic := []demoStep{
		{"Addition: 5 + 3 =", func() (float64, error) { return c.Add(5, 3) }},
		{"Subtraction: 10 - 4 =", func() (float64, error) { return c.Subtract(10, 4) }},
		{"Multiplication: 7 * 6 =", func() (float64, error) { return c.Multiply(7, 6) }},
		{"Division: 15 / 3 =", func() (float64, error) { return c.Divide(15, 3) }},
		{"Division: 10 / 0 =", func() (float64, error) { return c.Divide(10, 0) }},
	}
	runSteps(w, basic)

	fmt.Fprintln(w)
	fmt.Fprintln(w, ui.Title("Specialized Calculator Tests:"))

	add5, err1 := c.Specialize(5, "add")
	subtract3, err2 := c.Specialize(3, "subtract")
	multiplyBy2, err3 := c.Specialize(2, "multiply")
	divideBy4, err4 := c.Specialize(4, "divide")
	for _, err := range []error{err1, err2, err3, err4} {
		if err != nil {
			fmt.Fprintln(w, ui.Error("Error caught: "+err.Error()))
			return
		}
	}
	for _, s := range []calculator.Specialized{add5, subtract3, multiplyBy2, divideBy4} {
		appMetrics.ObserveSpecialized(s.Operation().String())
	}

	fmt.Fprintln(w, "Execute calculations:")
	runSteps(w, []demoStep{
		{"Add 5 to 10:", func() (float64, error) { return add5.Apply(10) }},
		{"Subtract 10 from 3:", func() (float64, error) { return subtract3.Apply(10) }},
		{"Multiply 2 by 5:", func() (float64, error) { return multiplyBy2.Apply(5) }},
		{"Divide 4 by 16:", func() (float64, error) { return divideBy4.Apply(16) }},
		{"Divide 4 by 0:", func() (float64, error) { return divideBy4.Apply(0) }},
	})
}

// runSteps prints each step's result. Errors are reported and the next step runs.
func runSteps(w io.Writer, steps []demoStep) {
	for _, step := range steps {
		result, err := step.run()
		if err != nil {
			fmt.Fprintln(w, ui.Error("Error caught: "+err.Error()))
			continue
		}
		fmt.Fprintf(w, "%s %s\n", ui.Label(step.label), ui.Result(calculator.FormatOperand(result, settings.Precision)))
	}
}
