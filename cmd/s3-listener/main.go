// Package main runs the s3-listener binary.
//
// Usage:
//
//	s3-listener lambda                              # serve as the function handler
//	s3-listener replay --file ./notification.json   # dispatch one notification locally
//
// Configuration comes from the environment, an optional .env file and the YAML file named
// by --config or CONFIG_FILE.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

type rootFlags struct {
	configFile string
	kafka      bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:           "s3-listener",
		Short:         "Dispatch S3 object created notifications to a handler",
		Long:          `s3-listener validates S3 "object created" notifications, runs the handler for the stored object and emits an ended event.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&flags.configFile, "config", "c", "", "YAML configuration file (defaults to CONFIG_FILE)")
	rootCmd.PersistentFlags().BoolVar(&flags.kafka, "kafka", false, "Forward emitted events to Kafka")

	rootCmd.AddCommand(newLambdaCmd(flags))
	rootCmd.AddCommand(newReplayCmd(flags))

	return rootCmd
}
