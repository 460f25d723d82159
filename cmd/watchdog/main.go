// Package main provides the entry point for the watchdog CLI tool.
package main

import "github.com/Jib667/Watchdog/cmd/watchdog/cmd"

// Version information populated by goreleaser.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	cmd.Execute(version, commit, date)
}
