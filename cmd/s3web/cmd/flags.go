package cmd

import (
	"github.com/oneconcern/s3web/pkg/dlogger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type flagsT struct {
	root struct {
		logLevel    string
		timeout     string
		remote      string
		mirror      string
		metricsAddr string
	}
	remote struct {
		properties []string
		url        string
		tags       []string
	}
	pull struct {
		volumes     []string
		destination string
		concurrency int
	}
}

var s3webFlags = flagsT{}

func addLogLevelFlag(cmd *cobra.Command) string {
	logLevel := "loglevel"
	cmd.PersistentFlags().StringVar(&s3webFlags.root.logLevel, logLevel, dlogger.LogLevelInfo,
		"The logging level: debug, info, warn, error or none")
	_ = viper.BindPFlag(logLevel, cmd.PersistentFlags().Lookup(logLevel))
	return logLevel
}

func addTimeoutFlag(cmd *cobra.Command) string {
	timeout := "timeout"
	cmd.PersistentFlags().StringVar(&s3webFlags.root.timeout, timeout, "0s",
		"Abort the command after this duration, e.g. 30s. Zero means no timeout")
	_ = viper.BindPFlag(timeout, cmd.PersistentFlags().Lookup(timeout))
	return timeout
}

func addRemoteFlag(cmd *cobra.Command) string {
	r := "remote"
	cmd.PersistentFlags().StringVarP(&s3webFlags.root.remote, r, "r", "",
		"The locator of the remote, e.g. s3web://demo.titan-data.io/hello-world/postgres")
	_ = viper.BindPFlag(r, cmd.PersistentFlags().Lookup(r))
	return r
}

func addMirrorFlag(cmd *cobra.Command) string {
	mirror := "mirror"
	cmd.PersistentFlags().StringVar(&s3webFlags.root.mirror, mirror, "",
		"Read commits from a local copy of the remote layout in this directory instead of the web")
	_ = viper.BindPFlag(mirror, cmd.PersistentFlags().Lookup(mirror))
	return mirror
}

func addMetricsFlag(cmd *cobra.Command) string {
	addr := "metrics-addr"
	cmd.PersistentFlags().StringVar(&s3webFlags.root.metricsAddr, addr, "",
		"Expose prometheus metrics on this address, e.g. :9090")
	return addr
}

func addPropertyFlag(cmd *cobra.Command) string {
	property := "property"
	cmd.Flags().StringArrayVarP(&s3webFlags.remote.properties, property, "p", nil,
		"Additional remote property, as key=value. May be repeated")
	return property
}

func addURLFlag(cmd *cobra.Command) string {
	u := "url"
	cmd.Flags().StringVar(&s3webFlags.remote.url, u, "", "The url property of a remote")
	return u
}

func addTagFlag(cmd *cobra.Command) string {
	tag := "tag"
	cmd.Flags().StringArrayVarP(&s3webFlags.remote.tags, tag, "t", nil,
		"Only list commits with this tag, as key or key=value. May be repeated")
	return tag
}

func addVolumeFlag(cmd *cobra.Command) string {
	volume := "volume"
	cmd.Flags().StringSliceVar(&s3webFlags.pull.volumes, volume, nil, "The volume to pull. May be repeated")
	return volume
}

func addDestinationFlag(cmd *cobra.Command) string {
	destination := "destination"
	cmd.Flags().StringVar(&s3webFlags.pull.destination, destination, ".",
		"The directory where archives are written, as <volume>.tar.gz")
	return destination
}

func addConcurrencyFlag(cmd *cobra.Command) string {
	concurrency := "concurrency"
	cmd.Flags().IntVar(&s3webFlags.pull.concurrency, concurrency, defaultConcurrency,
		"The number of volumes pulled concurrently")
	_ = viper.BindPFlag(concurrency, cmd.Flags().Lookup(concurrency))
	return concurrency
}

func requireFlags(cmd *cobra.Command, flags ...string) {
	for _, flag := range flags {
		_ = cmd.MarkFlagRequired(flag)
	}
}
