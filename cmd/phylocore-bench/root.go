package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	scenarioPath string
	logLevel     string
	iterations   int
)

var rootCmd = &cobra.Command{
	Use:   "phylocore-bench",
	Short: "Drives a phylocore likelihood core through a YAML scenario",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&scenarioPath, "scenario", "", "path to a scenario YAML file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "info", "log level (debug, info, warn, error)")
	rootCmd.MarkPersistentFlagRequired("scenario")

	rootCmd.AddCommand(evalCmd)
	rootCmd.AddCommand(benchCmd)
}
