/*
Copyright © 2026 NAME HERE
*/
package cmd

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/masnyjimmy/respsync/syntax"
)

var fixCmd = &cobra.Command{
	Use:   "fix [dir]",
	Short: "Rewrite drifted response annotations in place",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		dryRun, _ := cmd.Flags().GetBool("dry-run")

		root := ""
		if len(args) == 1 {
			root = args[0]
		}

		if res := Fix(root, dryRun); res != 0 {
			os.Exit(res)
		}
	},
}

func init() {
	rootCmd.AddCommand(fixCmd)

	fixCmd.Flags().Bool("dry-run", false, "Print the rewritten annotation blocks instead of writing files")
}

func Fix(root string, dryRun bool) int {

	result, files, err := scan(root)

	if err != nil {
		errorLogger.Print(err)
		return 2
	}

	if result.HasErrors() {
		for _, finding := range result.Findings {
			if finding.Error != "" {
				errorLogger.Printf("%v:%v %v: %v", finding.File, finding.Line, finding.Function, finding.Error)
			}
		}
		return 2
	}

	if !result.HasDrift() {
		log.Print("annotations are in sync, nothing to do")
		return 0
	}

	// group per file so offsets can be applied bottom up in one pass
	edits := make(map[string][]syntax.Edit)

	for idx := range result.Findings {
		finding := &result.Findings[idx]
		edits[finding.File] = append(edits[finding.File], syntax.Edit{
			Fn:  finding.Fn(),
			Doc: finding.Doc(),
		})
	}

	for _, file := range files {
		fileEdits, ok := edits[file.Path]

		if !ok {
			continue
		}

		if dryRun {
			for _, edit := range fileEdits {
				fmt.Printf("%v %v:\n", file.Path, edit.Fn.Name)
				for _, ann := range edit.Doc {
					fmt.Println(strings.TrimRight(ann.Raw, "\n"))
				}
				fmt.Println()
			}
			continue
		}

		out, err := syntax.ApplyAll(file, fileEdits)

		if err != nil {
			errorLogger.Printf("unable to rewrite %v: %v", file.Path, err)
			return 3
		}

		if err := os.WriteFile(file.Path, out, 0644); err != nil {
			errorLogger.Printf("unable to write file %v: %v", file.Path, err)
			return 3
		}

		log.Printf("updated %v (%v handlers)", file.Path, len(fileEdits))
	}

	return 0
}
