package main

import (
	"os"

	"github.com/spf13/cobra"
)

type rootCmdConfig struct {
	logger
}

func main() {
	if err := cliParser().Execute(); err != nil {
		os.Exit(1)
	}
}

func cliParser() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "mllab",
		Short: "mllab is a tool to train and use decision tree models",
		Long:  `A tool to generate datasets, grow decision trees, random forests and boosted ensembles from them, test the models, and use them to make predictions`,
	}
	config := &rootCmdConfig{}
	rootCmd.PersistentFlags().BoolVarP((*bool)(&config.logger), "verbose", "v", false, "log progress to STDERR")
	rootCmd.AddCommand(versionCmd(), growCmd(config), predictCmd(config), testCmd(config), datagenCmd(config))
	return rootCmd
}
