package commands

import (
	"fmt"
	"strings"

	"github.com/speakeasy-api/querystyle/cmd/querystyle/internal/input"
	"github.com/speakeasy-api/querystyle/params"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment variables that override configuration keys.
const EnvPrefix = "QUERYSTYLE"

// Config is the parameter set file read by the build command.
type Config struct {
	MaxNodes   int                 `mapstructure:"maxNodes" yaml:"maxNodes"`
	Parameters []*params.Parameter `mapstructure:"parameters" yaml:"parameters"`
}

// LoadConfig reads the configuration at path. Scalar keys may be overridden from the
// environment, for example QUERYSTYLE_MAXNODES.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.SetDefault("maxNodes", input.DefaultMaxNodes)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config %q: %w", path, err)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config %q: %w", path, err)
	}
	return cfg, nil
}

// ParameterSet validates the configured parameters.
func (c *Config) ParameterSet() (*params.Set, error) {
	set, err := params.NewSet(c.Parameters...)
	if err != nil {
		return nil, fmt.Errorf("invalid parameters: %w", err)
	}
	return set, nil
}
