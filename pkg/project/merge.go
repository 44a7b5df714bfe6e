package project

import (
	"bytes"
	"encoding/json"
	"os"

	"github.com/pkg/errors"
	"github.com/wasmkit/asinit/pkg/consts"
)

// Document is the merge policy for one managed JSON file. Each document type
// carries explicit per-field rules instead of a generic deep merge so that
// "required by the compiler" and "owned by the user" stay distinguishable.
type Document interface {
	// Synthesize returns the full document written when the file is absent.
	Synthesize() map[string]any

	// Apply folds the required fields into an existing document, reporting
	// whether anything changed.
	Apply(doc map[string]any) bool
}

// mergeConfig creates the file from the document's synthesized form, or
// parses the existing content and applies the required fields to it. The file
// is rewritten only when a field actually changed, so an up-to-date config
// keeps its bytes and its modification time.
func mergeConfig(f ManagedFile) Result {
	data, err := os.ReadFile(f.Path)
	if os.IsNotExist(err) {
		out, merr := marshalDocument(f.Doc.Synthesize())
		if merr != nil {
			return Result{File: f, Outcome: Failed, Err: merr}
		}
		if werr := os.WriteFile(f.Path, out, consts.ModeFile); werr != nil {
			return Result{File: f, Outcome: Failed, Err: errors.Wrapf(werr, "failed to write file %s", f.Path)}
		}
		return Result{File: f, Outcome: Created}
	}
	if err != nil {
		return Result{File: f, Outcome: Failed, Err: errors.Wrapf(err, "failed to read %s", f.Path)}
	}

	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return Result{File: f, Outcome: Failed, Err: &ParseError{Path: f.Path, Err: err}}
	}
	if doc == nil {
		doc = map[string]any{}
	}

	if !f.Doc.Apply(doc) {
		return Result{File: f, Outcome: Unchanged}
	}

	out, err := marshalDocument(doc)
	if err != nil {
		return Result{File: f, Outcome: Failed, Err: err}
	}
	if err := os.WriteFile(f.Path, out, consts.ModeFile); err != nil {
		return Result{File: f, Outcome: Failed, Err: errors.Wrapf(err, "failed to write file %s", f.Path)}
	}

	return Result{File: f, Outcome: Updated}
}

func marshalDocument(doc map[string]any) ([]byte, error) {
	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return nil, errors.Wrap(err, "failed to encode document")
	}

	return buf.Bytes(), nil
}

// TSConfig manages assembly/tsconfig.json. The extends reference must always
// track the installed compiler's base configuration; every sibling field is
// user-owned and left alone.
type TSConfig struct {
	Extends string
}

func (c *TSConfig) Synthesize() map[string]any {
	return map[string]any{
		"extends": c.Extends,
		"include": []any{"./**/*.ts"},
	}
}

func (c *TSConfig) Apply(doc map[string]any) bool {
	if current, ok := doc["extends"].(string); ok && current == c.Extends {
		return false
	}

	doc["extends"] = c.Extends
	return true
}

// BuildConfig manages asconfig.json. The document is synthesized with debug
// and release profiles plus an empty options map when absent; once it exists
// it is user-owned and never modified, whatever its content.
type BuildConfig struct{}

func (BuildConfig) Synthesize() map[string]any {
	return map[string]any{
		"targets": map[string]any{
			"debug": map[string]any{
				"outFile":   "build/debug.wasm",
				"textFile":  "build/debug.wat",
				"sourceMap": true,
				"debug":     true,
			},
			"release": map[string]any{
				"outFile":       "build/release.wasm",
				"textFile":      "build/release.wat",
				"sourceMap":     true,
				"optimizeLevel": 3,
				"shrinkLevel":   0,
			},
		},
		"options": map[string]any{},
	}
}

func (BuildConfig) Apply(map[string]any) bool { return false }

// Manifest manages package.json. Build scripts are added only when the script
// group lacks its canonical asbuild marker, a test script still equal to the
// npm placeholder counts as default and is replaced, and dependency entries
// are added when absent but never up- or downgraded.
type Manifest struct {
	CompilerVersion string
	PackageManager  PackageManager
	IncludeNode     bool
}

func (m *Manifest) Synthesize() map[string]any {
	doc := map[string]any{}
	m.Apply(doc)
	return doc
}

func (m *Manifest) Apply(doc map[string]any) bool {
	changed := false

	scripts, ok := doc["scripts"].(map[string]any)
	if !ok {
		scripts = map[string]any{}
		doc["scripts"] = scripts
		changed = true
	}

	if _, ok := scripts["asbuild"]; !ok {
		run := m.PackageManager.RunCommand()
		scripts["asbuild:debug"] = "asc assembly/index.ts --target debug"
		scripts["asbuild:release"] = "asc assembly/index.ts --target release"
		scripts["asbuild"] = run + " asbuild:debug && " + run + " asbuild:release"
		changed = true
	}

	if m.IncludeNode {
		// The placeholder check is a literal match against the npm default,
		// whichever package manager is in use.
		if current, ok := scripts["test"].(string); !ok || current == consts.NpmDefaultTestScript {
			scripts["test"] = "node tests"
			changed = true
		}
	}

	if m.ensureDependency(doc, "devDependencies", consts.CompilerPackage) {
		changed = true
	}
	if m.IncludeNode && m.ensureDependency(doc, "dependencies", consts.LoaderPackage) {
		changed = true
	}

	return changed
}

// ensureDependency adds a caret-pinned entry for pkg to the named dependency
// group unless one already exists. An existing entry is never rewritten.
func (m *Manifest) ensureDependency(doc map[string]any, group, pkg string) bool {
	deps, ok := doc[group].(map[string]any)
	if !ok {
		deps = map[string]any{}
		doc[group] = deps
	}

	if _, ok := deps[pkg]; ok {
		return false
	}

	deps[pkg] = "^" + m.CompilerVersion
	return true
}
