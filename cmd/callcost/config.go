package main

import (
	"errors"
	"fmt"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Defaults reproduce the classic timing loop: ten trials of a million
// calls each, plain text output.
const (
	defaultTrials     = 10
	defaultIterations = 1000000
	defaultTarget     = "noop"
	defaultFormat     = "text"
)

// runConfig is the resolved configuration for one run, layered as
// defaults < config file < CALLCOST_* environment < flags.
type runConfig struct {
	Trials     int    `mapstructure:"trials"`
	Iterations int    `mapstructure:"iterations"`
	Target     string `mapstructure:"target"`
	Calibrate  bool   `mapstructure:"calibrate"`
	Format     string `mapstructure:"format"`
	Output     string `mapstructure:"output"`
}

func loadRunConfig(flags *pflag.FlagSet, configFile string) (runConfig, error) {
	v := viper.New()

	v.SetDefault("trials", defaultTrials)
	v.SetDefault("iterations", defaultIterations)
	v.SetDefault("target", defaultTarget)
	v.SetDefault("calibrate", false)
	v.SetDefault("format", defaultFormat)
	v.SetDefault("output", "")

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return runConfig{}, fmt.Errorf("read config %s: %w", configFile, err)
		}
	} else {
		v.SetConfigName("callcost")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return runConfig{}, fmt.Errorf("read config: %w", err)
			}
		}
	}

	v.SetEnvPrefix("CALLCOST")
	v.AutomaticEnv()

	if err := v.BindPFlags(flags); err != nil {
		return runConfig{}, fmt.Errorf("bind flags: %w", err)
	}

	var cfg runConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return runConfig{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
