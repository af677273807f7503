/*
Copyright © 2026 NAME HERE
*/
package main

import "github.com/masnyjimmy/respsync/cmd"

func main() {
	cmd.Execute()
}
