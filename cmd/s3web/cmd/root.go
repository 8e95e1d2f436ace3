// Copyright © 2018 One Concern

package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/oneconcern/s3web/pkg/dlogger"
	"github.com/oneconcern/s3web/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "s3web",
	Short: "s3web reads commits published on the web",
	Long: `s3web reads commits and volume archives published on a plain web server.

Remotes are designated by locators such as s3web://demo.titan-data.io/hello-world/postgres,
which resolve to the base URL http://demo.titan-data.io/hello-world/postgres.

The remote is read-only: commits may be listed, inspected and pulled, never pushed.
`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if s3webFlags.root.metricsAddr == "" {
			return
		}
		if err := metrics.Register(prometheus.DefaultRegisterer); err != nil {
			wrapFatalln("register metrics", err)
			return
		}
		go func(addr string) {
			if err := metrics.Serve(addr); err != nil {
				log.Println("metrics endpoint stopped:", err)
			}
		}(s3webFlags.root.metricsAddr)
	},
}

var config *CLIConfig

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	log.SetFlags(0)
	cobra.OnInitialize(initConfig)

	addLogLevelFlag(rootCmd)
	addTimeoutFlag(rootCmd)
	addRemoteFlag(rootCmd)
	addMirrorFlag(rootCmd)
	addMetricsFlag(rootCmd)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	viper.SetDefault("loglevel", dlogger.LogLevelInfo)
	viper.SetDefault("concurrency", defaultConcurrency)
	if os.Getenv("S3WEB_CONFIG") != "" {
		viper.SetConfigFile(os.Getenv("S3WEB_CONFIG"))
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME/.s3web")
		viper.AddConfigPath("/etc/s3web")
		viper.SetConfigName("s3web")
	}

	viper.SetEnvPrefix("S3WEB")
	viper.AutomaticEnv() // read in environment variables that match
	if err := viper.ReadInConfig(); err == nil {
		log.Println("Using config file:", viper.ConfigFileUsed())
	}

	var err error
	config, err = newConfig()
	if err != nil {
		wrapFatalln("invalid configuration", err)
		return
	}
}

func newLogger() *zap.Logger {
	logger, err := dlogger.GetLogger(config.LogLevel)
	if err != nil {
		wrapFatalln("invalid log level", err)
		return zap.NewNop()
	}
	return logger
}
