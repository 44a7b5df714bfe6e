// Package config loads the optional asinit.yaml file that supplies defaults
// for scaffolding: where the compiler lives, which version to pin, which
// usage profiles to include, and which package manager to assume. Command
// line flags always win over file values.
package config

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/wasmkit/asinit/pkg/consts"
	"gopkg.in/yaml.v3"
)

type (
	// Compiler pins where the installed compiler lives and which version the
	// generated manifests reference.
	Compiler struct {
		// Root is the compiler install location, resolved relative to the
		// project root unless absolute
		Root string `yaml:"root,omitempty"`

		// Version overrides the version read from the compiler's own
		// manifest when set
		Version string `yaml:"version,omitempty"`
	}

	// Targets selects which usage profiles the scaffold includes.
	Targets struct {
		// Node includes the node usage example and starter test. Defaults
		// to true when unset.
		Node *bool `yaml:"node,omitempty"`

		// Web includes the browser usage example
		Web bool `yaml:"web,omitempty"`
	}

	// Config is the tool configuration for one scaffolding run.
	Config struct {
		Compiler Compiler `yaml:"compiler"`
		Targets  Targets  `yaml:"targets"`

		// PackageManager forces the package manager instead of detecting it
		// from the environment. One of npm, yarn, pnpm.
		PackageManager string `yaml:"package_manager,omitempty"`
	}
)

// IncludeNode reports whether the node profile is enabled; unset means yes.
func (t Targets) IncludeNode() bool {
	return t.Node == nil || *t.Node
}

// Default returns the configuration used when no asinit.yaml is present.
func Default() *Config {
	return &Config{
		Compiler: Compiler{Root: consts.DefaultCompilerRoot},
	}
}

// LoadConfig parses a tool configuration from the provided io.Reader. The
// data is YAML; missing fields fall back to their defaults after decoding.
//
// Example:
//
//	yamlData := `
//	compiler:
//	  root: vendor/assemblyscript
//	targets:
//	  web: true
//	`
//
//	cfg, err := config.LoadConfig(strings.NewReader(yamlData))
//	if err != nil {
//		panic(err)
//	}
//
//	fmt.Printf("Compiler root: %s\n", cfg.Compiler.Root)
func LoadConfig(r io.Reader) (*Config, error) {
	var cfg Config
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal asinit config")
	}

	if cfg.Compiler.Root == "" {
		cfg.Compiler.Root = consts.DefaultCompilerRoot
	}

	return &cfg, nil
}

// LoadConfigFile loads a tool configuration from the specified file path.
// This is a convenience function that opens the file and calls LoadConfig.
func LoadConfigFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open file: %s", path)
	}
	defer func() { _ = f.Close() }()

	return LoadConfig(f)
}
