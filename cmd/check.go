/*
Copyright © 2026 NAME HERE
*/
package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/masnyjimmy/respsync/config"
	"github.com/masnyjimmy/respsync/reconcile"
	"github.com/masnyjimmy/respsync/report"
	"github.com/masnyjimmy/respsync/syntax"
)

var checkCmd = &cobra.Command{
	Use:   "check [dir]",
	Short: "Report annotation drift without touching any file",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		format, _ := cmd.Flags().GetString("format")

		root := ""
		if len(args) == 1 {
			root = args[0]
		}

		if res := Check(root, format); res != 0 {
			os.Exit(res)
		}
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringP("format", "f", "text", "Output format: text, yaml or json")
}

var errorLogger *log.Logger = log.New(os.Stderr, "Error ", log.Ltime)

// scan loads the tree and reconciles every handler in it.
func scan(root string) (*report.Report, []*syntax.File, error) {
	cfg, err := config.Load(cfgFile)

	if err != nil {
		return nil, nil, err
	}

	if root == "" {
		root = cfg.Root
	}

	helpers, err := cfg.HelperCodes()

	if err != nil {
		return nil, nil, fmt.Errorf("invalid config: %w", err)
	}

	files, err := syntax.LoadDir(root, cfg.HandlerSuffix)

	if err != nil {
		return nil, nil, err
	}

	pipeline := reconcile.NewPipeline(cfg.Placeholder, helpers)

	return report.Scan(root, files, pipeline, cfg.ResponseType), files, nil
}

func Check(root, format string) int {

	result, _, err := scan(root)

	if err != nil {
		errorLogger.Print(err)
		return 2
	}

	switch format {
	case "yaml":
		os.Stdout.Write(result.YAML())
	case "json":
		os.Stdout.Write(result.JSON())
		fmt.Println()
	default:
		fmt.Print(result.Text())
	}

	if result.HasErrors() {
		return 2
	}
	if result.HasDrift() {
		return 1
	}
	return 0
}
