package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable, e.g. ARITH_PRECISION.
const EnvPrefix = "ARITH"

// Configuration keys.
const (
	KeyPrecision   = "precision"
	KeyOutput      = "output"
	KeyVerbose     = "verbose"
	KeyLogFile     = "log_file"
	KeyColor       = "color"
	KeyNoColor     = "no_color"
	KeyMetricsPort = "metrics_port"
	KeyMCPPort     = "mcp.port"
)

// Output formats.
const (
	OutputText = "text"
	OutputJSON = "json"
)

// SetDefaults registers the default value of every key.
func SetDefaults() {
	viper.SetDefault(KeyPrecision, -1)
	viper.SetDefault(KeyOutput, OutputText)
	viper.SetDefault(KeyVerbose, false)
	viper.SetDefault(KeyLogFile, "")
	viper.SetDefault(KeyColor, true)
	viper.SetDefault(KeyNoColor, false)
	viper.SetDefault(KeyMetricsPort, 0)
	viper.SetDefault(KeyMCPPort, 0)
}

// Load initializes the configuration from file and environment variables.
// A missing config file is not an error unless cfgFile names it explicitly.
func Load(cfgFile string) error {
	// .env is optional
	_ = godotenv.Load()

	if cfgFile != "" {
		if _, err := os.Stat(cfgFile); err != nil {
			return fmt.Errorf("failed to read config: %w", err)
		}
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(filepath.Join(home, ".arith"))
		}
	}

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	SetDefaults()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}
	return nil
}

// Settings is a typed snapshot of the effective configuration.
type Settings struct {
	Precision   int
	Output      string
	Verbose     bool
	LogFile     string
	Color       bool
	MetricsPort int
	MCPPort     int
}

// Current reads the effective configuration from viper.
func Current() Settings {
	return Settings{
		Precision:   viper.GetInt(KeyPrecision),
		Output:      strings.ToLower(viper.GetString(KeyOutput)),
		Verbose:     viper.GetBool(KeyVerbose),
		LogFile:     viper.GetString(KeyLogFile),
		Color:       viper.GetBool(KeyColor) && !viper.GetBool(KeyNoColor),
		MetricsPort: viper.GetInt(KeyMetricsPort),
		MCPPort:     viper.GetInt(KeyMCPPort),
	}
}
