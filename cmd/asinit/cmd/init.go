package cmd

import (
	"context"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"
	"github.com/wasmkit/asinit/pkg/compiler"
	"github.com/wasmkit/asinit/pkg/config"
	"github.com/wasmkit/asinit/pkg/consts"
	"github.com/wasmkit/asinit/pkg/project"
	"github.com/wasmkit/asinit/pkg/term"
)

// initCmd returns a CLI command that scaffolds an AssemblyScript project in
// the target directory. The command is idempotent - running it multiple
// times will not overwrite existing files, and known config files only gain
// the fields the installed compiler requires, making it safe to run in
// populated directories.
//
// Created structure:
//   - assembly/: Source directory
//   - assembly/tsconfig.json: Inherits the compiler's base configuration
//   - assembly/index.ts: Starter source exporting one example function
//   - build/: Output directory with a .gitignore for compiled artifacts
//   - asconfig.json: Debug and release build profiles
//   - package.json: Build scripts and compiler dependencies
//   - index.js, tests/index.js: Node usage example (unless --no-node)
//   - index.html: Browser usage example (with --web)
//
// Example usage:
//
//	# Scaffold the current directory, prompting for confirmation
//	asinit init
//
//	# Scaffold a new directory non-interactively, with the web example
//	asinit --dir my-wasm-app init --yes --web
func initCmd() *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: "Create or update the project scaffold in the target directory",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "yes",
				Aliases: []string{"y"},
				Usage:   "Skip the confirmation prompt",
			},
			&cli.BoolFlag{
				Name:  "web",
				Usage: "Include the browser usage example",
			},
			&cli.BoolFlag{
				Name:  "no-node",
				Usage: "Skip the node usage example and starter test",
			},
			&cli.StringFlag{
				Name:  "compiler-root",
				Usage: "Path to the installed compiler (defaults to node_modules/assemblyscript)",
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "The asinit config file",
				Sources: cli.EnvVars("ASINIT_CONFIG"),
				Value:   "asinit.yaml",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			dir := "."
			if path := cmd.String("dir"); path != "" {
				dir = path
			}

			root, err := filepath.Abs(dir)
			if err != nil {
				return errors.Wrapf(err, "failed to resolve project directory %s", dir)
			}

			if err := os.MkdirAll(root, consts.ModeDir); err != nil {
				return errors.Wrapf(err, "failed to create project directory %s", root)
			}

			cfg, err := loadConfig(root, cmd.String("config"))
			if err != nil {
				return err
			}

			compilerRoot := cmd.String("compiler-root")
			if compilerRoot == "" {
				compilerRoot = cfg.Compiler.Root
			}
			compilerRoot = compiler.Locate(root, compilerRoot)

			version := cfg.Compiler.Version
			if version == "" {
				version = compiler.Version(compilerRoot)
			}

			pm := project.DetectPackageManager(os.Getenv("npm_config_user_agent"))
			if cfg.PackageManager != "" {
				pm = project.PackageManager(cfg.PackageManager)
			}

			plan := project.NewPlan(project.PlanParams{
				ProjectRoot:     root,
				CompilerRoot:    compilerRoot,
				IncludeNode:     cfg.Targets.IncludeNode() && !cmd.Bool("no-node"),
				IncludeWeb:      cfg.Targets.Web || cmd.Bool("web"),
				PackageManager:  pm,
				CompilerVersion: version,
			})

			out := term.NewPrinter(os.Stdout)
			out.Plan(plan, root)

			confirmed := cmd.Bool("yes")
			if !confirmed {
				confirmed = term.Confirm(os.Stdin, os.Stdout, "Do you want to proceed?")
			}

			summary := project.New(plan).Initialize(confirmed)
			out.Summary(summary)

			if summary.Failed() {
				return errors.New("some files could not be processed")
			}

			return nil
		},
	}
}

// loadConfig reads the tool config from the project directory, falling back
// to defaults when the file does not exist. An explicit absolute path is
// used as-is.
func loadConfig(root, path string) (*config.Config, error) {
	if !filepath.IsAbs(path) {
		path = filepath.Join(root, path)
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return config.Default(), nil
	}

	cfg, err := config.LoadConfigFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load asinit config")
	}

	return cfg, nil
}
