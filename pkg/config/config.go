package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/bigkevmcd/store-polling-operator/pkg/command"
	"github.com/bigkevmcd/store-polling-operator/pkg/store"
)

// EnvPrefix is prepended to environment variables that override the
// configuration, e.g. STORE_POLLER_SCRIPT.
const EnvPrefix = "STORE_POLLER"

// Config is the configuration for polling a single repository.
type Config struct {
	// Script is the path to the Store query executable.
	Script       string               `mapstructure:"script"`
	Timeout      time.Duration        `mapstructure:"timeout"`
	WorkDir      string               `mapstructure:"workDir"`
	BaselineFile string               `mapstructure:"baselineFile"`
	Repository   store.RepositorySpec `mapstructure:"repository"`
}

// New creates a viper instance with the defaults and environment bindings in
// place.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault("timeout", command.DefaultTimeout)
	v.SetDefault("baselineFile", "store-baseline.yaml")
	v.SetDefault("repository.versionRegex", store.DefaultVersionRegex)
	v.SetDefault("repository.minimumBlessingLevel", store.DefaultMinimumBlessingLevel)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the configuration file if one is provided, and returns the
// validated configuration.
func Load(v *viper.Viper, filename string) (*Config, error) {
	c, err := read(v, filename)
	if err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadOperator is Load for the operator, where the repositories come from
// StoreRepository resources and only the script settings are required.
func LoadOperator(v *viper.Viper, filename string) (*Config, error) {
	c, err := read(v, filename)
	if err != nil {
		return nil, err
	}
	if err := errors.Join(c.validateScript()...); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return c, nil
}

func read(v *viper.Viper, filename string) (*Config, error) {
	if filename != "" {
		v.SetConfigFile(filename)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", filename, err)
		}
	}
	c := &Config{}
	if err := v.Unmarshal(c); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	c.Repository = c.Repository.WithDefaults()
	return c, nil
}

// Validate checks that the configuration can be used for polling.
//
// A zero Timeout is valid and disables the limit.
func (c *Config) Validate() error {
	errs := c.validateScript()
	if err := c.Repository.Validate(); err != nil {
		errs = append(errs, err)
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

func (c *Config) validateScript() []error {
	var errs []error
	if c.Script == "" {
		errs = append(errs, errors.New("the store query script is required"))
	}
	if c.Timeout < 0 {
		errs = append(errs, fmt.Errorf("invalid timeout %s", c.Timeout))
	}
	return errs
}
