package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// MaxPrecision is the largest number of decimal digits worth printing for a float64.
const MaxPrecision = 17

// Validate checks configuration values and reports every problem found.
// It should be called after Load.
func Validate() error {
	var problems []string

	if p := viper.GetInt(KeyPrecision); p < -1 || p > MaxPrecision {
		problems = append(problems, fmt.Sprintf("precision must be between -1 and %d, got: %d", MaxPrecision, p))
	}

	switch out := strings.ToLower(viper.GetString(KeyOutput)); out {
	case OutputText, OutputJSON:
	default:
		problems = append(problems, fmt.Sprintf("output must be %q or %q, got: %q", OutputText, OutputJSON, out))
	}

	for _, key := range []string{KeyMetricsPort, KeyMCPPort} {
		if port := viper.GetInt(key); port < 0 || port > 65535 {
			problems = append(problems, fmt.Sprintf("%s must be between 0 and 65535, got: %d", key, port))
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration validation failed:\n  %s", strings.Join(problems, "\n  "))
	}
	return nil
}
