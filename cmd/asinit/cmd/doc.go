// Package cmd provides CLI commands for the asinit tool.
//
// This package implements the command-line interface for asinit, following
// the urfave/cli/v3 pattern: each command is a separate function returning a
// *cli.Command, registered on the root application in Run.
//
// # Available Commands
//
//   - init: Create or update the project scaffold in the target directory
//
// # Global Options
//
// All commands support global flags:
//   - --dir, -d: Specify project directory (defaults to current directory)
//   - --help, -h: Display command help
//   - --version: Display version information
//
// The init command previews the managed file set, asks for confirmation
// (unless --yes is passed), then reports a per-file outcome: created,
// updated, unchanged or failed. A failed entry never stops the run; every
// independent file is still processed.
package cmd
