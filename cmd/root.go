package cmd

import "github.com/spf13/cobra"

var rootCmd = &cobra.Command{
	Use:   "alpharoot",
	Short: "Stock recommendation demo service",
}

func init() {
	rootCmd.AddCommand(startCmd)
}

func Execute() error {
	return rootCmd.Execute()
}
