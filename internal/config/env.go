package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix namespaces every configuration variable, so SAFE_NAME is read
// from SMALLSAFE_SAFE_NAME. The master password variables of the CLI share it.
const EnvPrefix = "SMALLSAFE_"

// parseEnv fills cfg from SMALLSAFE_* variables following the env and
// envPrefix tags of [StructuredConfig]. Unprefixed variables are ignored.
func parseEnv(cfg *StructuredConfig) error {
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
