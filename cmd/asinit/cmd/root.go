package cmd

import (
	"context"

	"github.com/urfave/cli/v3"
)

// Run creates and executes the asinit CLI application with the given version
// and command-line arguments.
//
// Global Flags:
//   - --dir, -d: Project directory (defaults to current directory)
//
// Example usage:
//
//	# Scaffold the current directory
//	err := Run(ctx, "v1.0.0", []string{"asinit", "init", "--yes"})
//
//	# Scaffold a specific directory
//	err := Run(ctx, "v1.0.0", []string{"asinit", "--dir", "/path/to/project", "init"})
func Run(ctx context.Context, version string, args []string) error {
	app := &cli.Command{
		Name:  "asinit",
		Usage: "Scaffold an AssemblyScript project that compiles to WebAssembly",
		Description: `asinit sets up the starter files a WebAssembly-targeting project needs
to build: an entry source file, build configuration, package manifest and
ignore rules. It is idempotent - existing files are preserved and known
config files only gain the fields the installed compiler requires.`,
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "dir",
				Aliases:     []string{"d"},
				Usage:       "the project directory",
				Value:       ".",
				DefaultText: "Current directory",
				Config: cli.StringConfig{
					TrimSpace: true,
				},
			},
		},
		Commands: []*cli.Command{
			initCmd(),
		},
	}

	return app.Run(ctx, args)
}
