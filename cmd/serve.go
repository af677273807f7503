/*
Copyright © 2026 NAME HERE
*/
package cmd

import (
	"log"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/masnyjimmy/respsync/server"
)

// ==================== Cobra Command ====================

var serveCmd = &cobra.Command{
	Use:   "serve [dir]",
	Short: "Serve a live annotation drift report",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		addr, err := cmd.Flags().GetString("addr")
		if err != nil {
			panic(err)
		}

		root := ""
		if len(args) == 1 {
			root = args[0]
		}

		Serve(root, addr)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringP(
		"addr",
		"a",
		":8080",
		"Address to serve the report on",
	)
}

/*
When update
1. rescan the tree
2. reconcile every handler
3. swap the served report
4. broadcast reload
*/
func Serve(root, addr string) {

	result, _, err := scan(root)

	if err != nil {
		log.Fatal(err)
	}

	if root == "" {
		root = result.Root
	}

	srv := server.New(result.JSON(), server.DefaultOptions())

	watcher, err := server.WatchTree(root, server.DEFAULT_DEBOUNCE_TIME)

	if err != nil {
		log.Printf("Unable to watch for file updates: %v", err)
	} else {
		watchHandler := func() {
			for err := range watcher.Update {
				if err != nil {
					log.Print(err)
					continue
				}

				result, _, err := scan(root)
				if err != nil {
					log.Printf("Unable to rescan: %v", err)
					continue
				}

				srv.SetReport(result.JSON())
			}
		}
		go watchHandler()
	}

	log.Printf("Started server at http://localhost%v", addr)
	log.Fatal(http.ListenAndServe(addr, srv.Handler(nil)))
}
