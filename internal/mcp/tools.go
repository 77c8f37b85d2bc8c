package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"arith/internal/calculator"
	apperrors "arith/internal/errors"
	"arith/internal/telemetry"

	mcpsdk "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cast"
)

func (s *Server) registerTools() {
	for _, op := range calculator.Operations() {
		s.mcp.AddTool(binaryTool(op), s.binaryHandler(op))
	}
	s.mcp.AddTool(applyTool(), s.applyHandler)
}

func binaryTool(op calculator.Operation) mcpsdk.Tool {
	desc := fmt.Sprintf("Compute a %s b.", op.Symbol())
	if op == calculator.OpDivide {
		desc += " Fails when b is zero."
	}
	return mcpsdk.NewTool(op.String(),
		mcpsdk.WithDescription(desc),
		mcpsdk.WithNumber("a",
			mcpsdk.Required(),
			mcpsdk.Description("First operand"),
		),
		mcpsdk.WithNumber("b",
			mcpsdk.Required(),
			mcpsdk.Description("Second operand"),
		),
	)
}

func applyTool() mcpsdk.Tool {
	return mcpsdk.NewTool("apply_specialized",
		mcpsdk.WithDescription("Bind operand a and an operation, then compute operation(a, b) for each b in values."),
		mcpsdk.WithNumber("a",
			mcpsdk.Required(),
			mcpsdk.Description("Bound first operand"),
		),
		mcpsdk.WithString("operation",
			mcpsdk.Required(),
			mcpsdk.Description("Operation to bind"),
			mcpsdk.Enum(calculator.Names()...),
		),
		mcpsdk.WithArray("values",
			mcpsdk.Required(),
			mcpsdk.Description("Second operands, applied in order"),
			mcpsdk.Items(map[string]any{"type": "number"}),
		),
	)
}

func (s *Server) binaryHandler(op calculator.Operation) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
		args := request.GetArguments()

		a, err := operandArg(args, "a")
		if err != nil {
			s.metrics.Observe(op.String(), err)
			return mcpsdk.NewToolResultError(err.Error()), nil
		}
		b, err := operandArg(args, "b")
		if err != nil {
			s.metrics.Observe(op.String(), err)
			return mcpsdk.NewToolResultError(err.Error()), nil
		}

		result, err := s.calc.Evaluate(op, a, b)
		s.metrics.Observe(op.String(), err)
		telemetry.LogEvaluation(s.logger, op.String(), a, b, result, err)
		if err != nil {
			return mcpsdk.NewToolResultError(err.Error()), nil
		}
		return mcpsdk.NewToolResultText(calculator.FormatOperand(result, -1)), nil
	}
}

func (s *Server) applyHandler(ctx context.Context, request mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
	args := request.GetArguments()

	if args["operation"] == nil {
		return mcpsdk.NewToolResultError("operation is required"), nil
	}
	name, err := cast.ToStringE(args["operation"])
	if err != nil {
		return mcpsdk.NewToolResultError(fmt.Sprintf("operation must be a string: %v", err)), nil
	}
	a, err := operandArg(args, "a")
	if err != nil {
		s.metrics.Observe(operationLabel(name), err)
		return mcpsdk.NewToolResultError(err.Error()), nil
	}
	spec, err := s.calc.Specialize(a, name)
	if err != nil {
		s.metrics.Observe(operationLabel(name), err)
		return mcpsdk.NewToolResultError(err.Error()), nil
	}
	s.metrics.ObserveSpecialized(spec.Operation().String())

	raw, ok := args["values"]
	if !ok {
		return mcpsdk.NewToolResultError("values is required"), nil
	}
	values, err := cast.ToSliceE(raw)
	if err != nil {
		return mcpsdk.NewToolResultError(fmt.Sprintf("values must be an array of numbers: %v", err)), nil
	}
	if len(values) == 0 {
		return mcpsdk.NewToolResultError("values must not be empty"), nil
	}

	op := spec.Operation().String()
	lines := make([]string, 0, len(values))
	failed := false
	for i, v := range values {
		b, err := operandValue(fmt.Sprintf("values[%d]", i), v)
		var result float64
		if err == nil {
			result, err = spec.Apply(b)
			telemetry.LogEvaluation(s.logger, op, a, b, result, err)
		}
		s.metrics.Observe(op, err)
		if err != nil {
			failed = true
			lines = append(lines, fmt.Sprintf("%s(%s, %v): error: %v", op, calculator.FormatOperand(a, -1), v, err))
			continue
		}
		lines = append(lines, fmt.Sprintf("%s(%s, %s) = %s", op,
			calculator.FormatOperand(a, -1), calculator.FormatOperand(b, -1), calculator.FormatOperand(result, -1)))
	}

	res := mcpsdk.NewToolResultText(strings.Join(lines, "\n"))
	res.IsError = failed
	return res, nil
}

func operandArg(args map[string]any, key string) (float64, error) {
	raw, ok := args[key]
	if !ok || raw == nil {
		return 0, apperrors.InvalidOperand("", key+" is required")
	}
	return operandValue(key, raw)
}

// operandValue accepts JSON numbers and numeric strings. Strings follow the
// same grammar as command-line operands.
func operandValue(key string, raw any) (float64, error) {
	var v float64
	var err error
	switch x := raw.(type) {
	case nil, bool:
		return 0, notANumber(key, raw)
	case string:
		v, err = calculator.ParseOperand(x)
	case json.Number:
		v, err = calculator.ParseOperand(x.String())
	default:
		v, err = cast.ToFloat64E(raw)
	}
	if err != nil {
		return 0, notANumber(key, raw)
	}
	return v, nil
}

func notANumber(key string, raw any) error {
	if str, ok := raw.(string); ok {
		return apperrors.InvalidOperand("", fmt.Sprintf("%s: %q is not a number", key, str))
	}
	return apperrors.InvalidOperand("", fmt.Sprintf("%s: %v is not a number", key, raw))
}

// operationLabel names the metrics series for a requested operation.
func operationLabel(name string) string {
	op, err := calculator.ParseOperation(name)
	if err != nil {
		return "unknown"
	}
	return op.String()
}
