/*
Copyright © 2026 NAME HERE
*/
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/masnyjimmy/respsync/config"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "respsync",
	Short: "Keep handler response annotations in sync with handler bodies",
	Long: `respsync inspects request handler functions, derives the response
codes their return statements actually produce and reconciles them with the
declared //api:response annotations. Annotations that drifted are reported
(check), rewritten in place (fix) or served as a live report (serve).`,
}

var cfgFile string

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		config.DefaultFile,
		"config file",
	)
}
