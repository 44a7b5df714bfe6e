// Package compiler locates the installed AssemblyScript compiler and reads
// the version used to pin generated dependency ranges.
package compiler

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/wasmkit/asinit/pkg/consts"
)

// Locate returns the compiler install root for a project. An explicit root
// wins; a relative one is resolved against the project root. Without one the
// conventional node_modules install location is assumed. The path is not
// required to exist.
func Locate(projectRoot, root string) string {
	if root == "" {
		root = consts.DefaultCompilerRoot
	}
	if filepath.IsAbs(root) {
		return root
	}

	return filepath.Join(projectRoot, filepath.FromSlash(root))
}

// Version reads the version field from the compiler's own package manifest.
// When the manifest is missing, unreadable, or has no version, the default
// pinned version is returned instead.
func Version(root string) string {
	data, err := os.ReadFile(filepath.Join(root, "package.json"))
	if err != nil {
		return consts.DefaultCompilerVersion
	}

	var manifest struct {
		Version string `json:"version"`
	}
	if err := json.Unmarshal(data, &manifest); err != nil || manifest.Version == "" {
		return consts.DefaultCompilerVersion
	}

	return manifest.Version
}
