package project_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/wasmkit/asinit/pkg/consts"
	. "github.com/wasmkit/asinit/pkg/project"
)

// ensureOne runs a single-entry plan and returns its result.
func ensureOne(t *testing.T, f ManagedFile) Result {
	t.Helper()

	summary := New(&Plan{Files: []ManagedFile{f}}).Initialize(true)
	require.Len(t, summary.Results, 1)
	return summary.Results[0]
}

func configEntry(path string, doc Document) ManagedFile {
	return ManagedFile{
		Name: filepath.Base(path),
		Path: path,
		Kind: KindConfig,
		Doc:  doc,
	}
}

func readJSON(t *testing.T, path string) map[string]any {
	t.Helper()

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	return doc
}

func writeJSON(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), consts.ModeFile))
}

func TestTSConfigMerge(t *testing.T) {
	doc := &TSConfig{Extends: "assemblyscript/std/assembly.json"}

	t.Run("creates the file when absent", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "tsconfig.json")

		res := ensureOne(t, configEntry(path, doc))
		require.Equal(t, Created, res.Outcome)

		got := readJSON(t, path)
		require.Equal(t, "assemblyscript/std/assembly.json", got["extends"])
		require.Equal(t, []any{"./**/*.ts"}, got["include"])
	})

	t.Run("rewrites a stale extends reference", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "tsconfig.json")
		writeJSON(t, path, `{"extends":"../somewhere/else.json","compilerOptions":{"strict":true}}`)

		res := ensureOne(t, configEntry(path, doc))
		require.Equal(t, Updated, res.Outcome)

		got := readJSON(t, path)
		require.Equal(t, "assemblyscript/std/assembly.json", got["extends"])
		// Sibling fields are user-owned and survive the merge.
		require.Equal(t, map[string]any{"strict": true}, got["compilerOptions"])
	})

	t.Run("avoids writing when the reference is current", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "tsconfig.json")
		writeJSON(t, path, `{"extends":"assemblyscript/std/assembly.json"}`)

		before, err := os.ReadFile(path)
		require.NoError(t, err)

		res := ensureOne(t, configEntry(path, doc))
		require.Equal(t, Unchanged, res.Outcome)

		after, err := os.ReadFile(path)
		require.NoError(t, err)
		require.Equal(t, before, after)
	})
}

func TestBuildConfigMerge(t *testing.T) {
	t.Run("creates debug and release profiles when absent", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "asconfig.json")

		res := ensureOne(t, configEntry(path, BuildConfig{}))
		require.Equal(t, Created, res.Outcome)

		got := readJSON(t, path)
		targets, ok := got["targets"].(map[string]any)
		require.True(t, ok)
		require.Contains(t, targets, "debug")
		require.Contains(t, targets, "release")
		require.Equal(t, map[string]any{}, got["options"])
	})

	t.Run("leaves an existing document completely untouched", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "asconfig.json")
		content := `{"targets":{"release":{"optimizeLevel":0}}}`
		writeJSON(t, path, content)

		res := ensureOne(t, configEntry(path, BuildConfig{}))
		require.Equal(t, Unchanged, res.Outcome)

		after, err := os.ReadFile(path)
		require.NoError(t, err)
		require.Equal(t, content, string(after))
	})

	t.Run("reports a parse error for invalid JSON", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "asconfig.json")
		content := `{"targets":`
		writeJSON(t, path, content)

		res := ensureOne(t, configEntry(path, BuildConfig{}))
		require.Equal(t, Failed, res.Outcome)

		var parseErr *ParseError
		require.ErrorAs(t, res.Err, &parseErr)
		require.Equal(t, path, parseErr.Path)

		// The broken file is not mutated.
		after, err := os.ReadFile(path)
		require.NoError(t, err)
		require.Equal(t, content, string(after))
	})
}

func TestManifestMerge(t *testing.T) {
	manifest := &Manifest{
		CompilerVersion: "0.28.2",
		PackageManager:  Npm,
		IncludeNode:     true,
	}

	t.Run("synthesizes scripts and dependencies when absent", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "package.json")

		res := ensureOne(t, configEntry(path, manifest))
		require.Equal(t, Created, res.Outcome)

		got := readJSON(t, path)
		scripts := got["scripts"].(map[string]any)
		require.Equal(t, "asc assembly/index.ts --target debug", scripts["asbuild:debug"])
		require.Equal(t, "asc assembly/index.ts --target release", scripts["asbuild:release"])
		require.Equal(t, "npm run asbuild:debug && npm run asbuild:release", scripts["asbuild"])
		require.Equal(t, "node tests", scripts["test"])

		require.Equal(t, "^0.28.2", got["devDependencies"].(map[string]any)["assemblyscript"])
		require.Equal(t, "^0.28.2", got["dependencies"].(map[string]any)["@assemblyscript/loader"])
	})

	t.Run("adds scripts without touching an existing devDependency version", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "package.json")
		writeJSON(t, path, `{"devDependencies":{"assemblyscript":"^1.0.0"}}`)

		res := ensureOne(t, configEntry(path, manifest))
		require.Equal(t, Updated, res.Outcome)

		got := readJSON(t, path)
		require.Equal(t, "^1.0.0", got["devDependencies"].(map[string]any)["assemblyscript"])

		scripts := got["scripts"].(map[string]any)
		require.Contains(t, scripts, "asbuild")
		require.Contains(t, scripts, "test")
		require.Equal(t, "^0.28.2", got["dependencies"].(map[string]any)["@assemblyscript/loader"])
	})

	t.Run("preserves a customized test script", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "package.json")
		writeJSON(t, path, `{"scripts":{"test":"jest"}}`)

		res := ensureOne(t, configEntry(path, manifest))
		require.Equal(t, Updated, res.Outcome)

		got := readJSON(t, path)
		require.Equal(t, "jest", got["scripts"].(map[string]any)["test"])
	})

	t.Run("replaces the npm placeholder test script", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "package.json")

		raw := map[string]any{
			"scripts": map[string]any{"test": consts.NpmDefaultTestScript},
		}
		data, err := json.Marshal(raw)
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(path, data, consts.ModeFile))

		res := ensureOne(t, configEntry(path, manifest))
		require.Equal(t, Updated, res.Outcome)

		got := readJSON(t, path)
		require.Equal(t, "node tests", got["scripts"].(map[string]any)["test"])
	})

	t.Run("keeps customized build scripts when the marker exists", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "package.json")
		writeJSON(t, path, `{"scripts":{"asbuild":"make wasm","asbuild:debug":"custom debug"}}`)

		res := ensureOne(t, configEntry(path, manifest))
		require.Equal(t, Updated, res.Outcome)

		scripts := readJSON(t, path)["scripts"].(map[string]any)
		require.Equal(t, "make wasm", scripts["asbuild"])
		require.Equal(t, "custom debug", scripts["asbuild:debug"])
		require.NotContains(t, scripts, "asbuild:release")
	})

	t.Run("omits the loader without the node profile", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "package.json")

		webOnly := &Manifest{CompilerVersion: "0.28.2", PackageManager: Npm}
		res := ensureOne(t, configEntry(path, webOnly))
		require.Equal(t, Created, res.Outcome)

		got := readJSON(t, path)
		require.NotContains(t, got, "dependencies")
		require.NotContains(t, got["scripts"].(map[string]any), "test")
	})

	t.Run("uses the detected package manager in the combined script", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "package.json")

		yarnManifest := &Manifest{CompilerVersion: "0.28.2", PackageManager: Yarn, IncludeNode: true}
		res := ensureOne(t, configEntry(path, yarnManifest))
		require.Equal(t, Created, res.Outcome)

		scripts := readJSON(t, path)["scripts"].(map[string]any)
		require.Equal(t, "yarn asbuild:debug && yarn asbuild:release", scripts["asbuild"])
	})

	t.Run("is idempotent on a fully merged manifest", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "package.json")

		res := ensureOne(t, configEntry(path, manifest))
		require.Equal(t, Created, res.Outcome)

		before, err := os.ReadFile(path)
		require.NoError(t, err)

		res = ensureOne(t, configEntry(path, manifest))
		require.Equal(t, Unchanged, res.Outcome)

		after, err := os.ReadFile(path)
		require.NoError(t, err)
		require.Equal(t, before, after)
	})
}
