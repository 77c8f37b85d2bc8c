package ui

import (
	"fmt"
	"strings"

	"arith/internal/calculator"
	apperrors "arith/internal/errors"

	"github.com/charmbracelet/glamour"
)

// OperationsMarkdown describes the supported operations as a markdown table.
func OperationsMarkdown() string {
	var sb strings.Builder
	sb.WriteString("# Operations\n\n")
	sb.WriteString("| Name | Symbol | Computes | Fails with |\n")
	sb.WriteString("|------|--------|----------|------------|\n")
	for _, op := range calculator.Operations() {
		failures := []string{apperrors.KindInvalidOperand.String()}
		if op == calculator.OpDivide {
			failures = append(failures, apperrors.KindDivisionByZero.String())
		}
		fmt.Fprintf(&sb, "| %s | `%s` | a %s b | %s |\n",
			op, op.Symbol(), op.Symbol(), strings.Join(failures, ", "))
	}
	sb.WriteString("\nSpecialized calculators bind `a` and the operation; `b` is supplied on each call.\n")
	return sb.String()
}

// RenderMarkdown renders md for the terminal. Plain output returns md unchanged.
func RenderMarkdown(md string, plain bool) (string, error) {
	if plain {
		return md, nil
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return "", fmt.Errorf("failed to create markdown renderer: %w", err)
	}
	out, err := renderer.Render(md)
	if err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return out, nil
}
