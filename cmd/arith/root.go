package main

import (
	"errors"
	"fmt"
	"os"

	"arith/internal/calculator"
	"arith/internal/config"
	apperrors "arith/internal/errors"
	"arith/internal/metrics"
	"arith/internal/telemetry"
	"arith/internal/ui"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var exit = os.Exit
var cfgFile string

var (
	calc       = calculator.New()
	appMetrics = metrics.New()
	settings   config.Settings
	configErr  error
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "arith",
	Short: "Validated arithmetic from the command line",
	Long: `arith evaluates additions, subtractions, multiplications and divisions
of finite numbers, and builds specialized calculators that fix the first
operand and the operation.

Negative operands must follow "--", e.g. arith subtract -- -5 3.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if configErr != nil {
			return configErr
		}
		if err := config.Validate(); err != nil {
			return err
		}
		settings = config.Current()
		ui.ConfigureColor(settings.Color)
		telemetry.InitLogger(settings.Verbose, settings.LogFile)
		telemetry.LogDebug("Configuration loaded",
			"file", viper.ConfigFileUsed(),
			"output", settings.Output,
			"precision", settings.Precision,
		)
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "\n=== CRITICAL ERROR: Command Execution Panic ===\n")
			fmt.Fprintf(os.Stderr, "Error: %v\n", r)
			exit(1)
		}
	}()

	if err := rootCmd.Execute(); err != nil {
		var reported reportedError
		if !errors.As(err, &reported) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		exit(apperrors.ExitCode(err))
	}
}

// reportedError wraps a failure whose message a command already printed.
type reportedError struct{ err error }

func (e reportedError) Error() string { return e.err.Error() }
func (e reportedError) Unwrap() error { return e.err }

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml or $HOME/.arith/config.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose/debug logging")
	rootCmd.PersistentFlags().Int("precision", -1, "Digits after the decimal point (-1 for shortest)")
	rootCmd.PersistentFlags().StringP("output", "o", config.OutputText, "Output format (text, json)")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")

	viper.BindPFlag(config.KeyVerbose, rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag(config.KeyPrecision, rootCmd.PersistentFlags().Lookup("precision"))
	viper.BindPFlag(config.KeyOutput, rootCmd.PersistentFlags().Lookup("output"))
	viper.BindPFlag(config.KeyNoColor, rootCmd.PersistentFlags().Lookup("no-color"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	configErr = config.Load(cfgFile)
}
