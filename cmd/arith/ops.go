package main

import (
	"fmt"

	"arith/internal/ui"

	"github.com/spf13/cobra"
)

var opsCmd = &cobra.Command{
	Use:   "ops",
	Short: "List the supported operations",
	RunE: func(cmd *cobra.Command, args []string) error {
		plain, _ := cmd.Flags().GetBool("plain")
		out, err := ui.RenderMarkdown(ui.OperationsMarkdown(), plain || !settings.Color)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	opsCmd.Flags().Bool("plain", false, "Print raw markdown instead of rendering it")
	rootCmd.AddCommand(opsCmd)
}
