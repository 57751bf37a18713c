// Package main is the entry point for the cfdistro CLI.
//
// cfdistro keeps a CloudFront distribution in front of one or more S3
// buckets in line with a small YAML file. The distribution is identified by
// its comment, so running apply twice never creates a second one.
//
// Commands: init, plan, apply, render, version.
//
// For detailed usage information, run:
//
//	cfdistro --help
package main

import (
	"fmt"
	"os"

	"github.com/imamik/cfdistro/cmd/cfdistro/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
