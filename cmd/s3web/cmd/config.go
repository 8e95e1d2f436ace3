package cmd

import (
	"context"
	"time"

	"github.com/spf13/viper"
)

const defaultConcurrency = 4

// CLIConfig describes the CLI configuration, as read from flags, environment
// (prefixed with S3WEB_) and the s3web.yaml config file.
type CLIConfig struct {
	LogLevel    string        `json:"loglevel" yaml:"loglevel" mapstructure:"loglevel"`          // Log level: debug, info, warn, error or none
	Timeout     time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`             // Timeout of a whole command, 0 for none
	Remote      string        `json:"remote" yaml:"remote" mapstructure:"remote"`                // Default locator
	Mirror      string        `json:"mirror" yaml:"mirror" mapstructure:"mirror"`                // Local copy of the remote layout
	Concurrency int           `json:"concurrency" yaml:"concurrency" mapstructure:"concurrency"` // Volumes pulled concurrently
}

func newConfig() (*CLIConfig, error) {
	var config CLIConfig
	err := viper.Unmarshal(&config)
	if err != nil {
		return nil, err
	}
	if config.Concurrency < 1 {
		config.Concurrency = 1
	}
	return &config, nil
}

func (c *CLIConfig) context() (context.Context, context.CancelFunc) {
	if c.Timeout > 0 {
		return context.WithTimeout(context.Background(), c.Timeout)
	}
	return context.WithCancel(context.Background())
}
