package config

import (
	"fmt"
	"os"
	"strings"
)

// RequiredEnvVars lists all environment variables that must be set
var RequiredEnvVars = []string{
	"SUPABASE_URL",
	"SUPABASE_ANON_KEY",
}

// ValidateEnv checks that all required environment variables are set
func ValidateEnv() error {
	var missing []string
	for _, envVar := range RequiredEnvVars {
		if os.Getenv(envVar) == "" {
			missing = append(missing, envVar)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	return nil
}

// ValidateEnvWithWarnings checks environment variables and returns warnings
// for non-critical issues (like using default values)
func ValidateEnvWithWarnings() ([]string, error) {
	// First do the critical validation
	if err := ValidateEnv(); err != nil {
		return nil, err
	}

	var warnings []string

	// Check for potentially insecure default values
	if os.Getenv("SUPABASE_DB_PASSWORD") == "" || os.Getenv("SUPABASE_DB_PASSWORD") == "password" {
		warnings = append(warnings, "SUPABASE_DB_PASSWORD is unset or using the example value - please use a secure password")
	}

	if os.Getenv("SUPABASE_SERVICE_KEY") == "" {
		warnings = append(warnings, "SUPABASE_SERVICE_KEY not set - privileged provider calls will be rejected")
	}

	return warnings, nil
}
