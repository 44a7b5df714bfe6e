package project

import "strings"

// PackageManager identifies the package manager that invoked the process. It
// only affects the shell command strings embedded in generated scripts.
type PackageManager string

const (
	Npm  PackageManager = "npm"
	Yarn PackageManager = "yarn"
	Pnpm PackageManager = "pnpm"
)

// RunCommand returns the shell prefix this package manager uses to run a
// script defined in the project manifest.
func (pm PackageManager) RunCommand() string {
	switch pm {
	case Yarn:
		return "yarn"
	case Pnpm:
		return "pnpm run"
	default:
		return "npm run"
	}
}

// DetectPackageManager classifies the user-agent hint that package managers
// place in the environment (e.g. "yarn/1.22.19 npm/? node/v20.11.0"). A hint
// is matched on the manager name followed by its version separator; anything
// else, including an empty hint, resolves to npm.
func DetectPackageManager(hint string) PackageManager {
	switch {
	case strings.Contains(hint, "yarn/"):
		return Yarn
	case strings.Contains(hint, "pnpm/"):
		return Pnpm
	default:
		return Npm
	}
}
