package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	configCmd.AddCommand(configViewCmd)
	configCmd.AddCommand(configGetCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect configuration settings",
	Long:  `View the effective configuration for arith, merged from flags, ARITH_* environment variables, the config file and defaults.`,
}

var configViewCmd = &cobra.Command{
	Use:   "view",
	Short: "Display all configuration settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		keys := viper.AllKeys()
		if len(keys) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No configuration settings found.")
			return nil
		}
		sort.Strings(keys)

		fmt.Fprintln(cmd.OutOrStdout(), "Current configuration:")
		if used := viper.ConfigFileUsed(); used != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "(from %s)\n", used)
		}
		for _, key := range keys {
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %v\n", key, viper.Get(key))
		}
		return nil
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get [key]",
	Short: "Get a specific configuration value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		key := args[0]
		if !viper.IsSet(key) {
			return fmt.Errorf("key not found in configuration: %s", key)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%v\n", viper.Get(key))
		return nil
	},
}
