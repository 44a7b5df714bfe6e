package project

import (
	"path/filepath"
	"strings"
)

// FileKind selects the ensure policy for a managed file.
type FileKind int

const (
	// KindDirectory entries are created when absent, otherwise untouched.
	KindDirectory FileKind = iota

	// KindTemplate entries are written once from a fixed body; an existing
	// file is never read or modified.
	KindTemplate

	// KindConfig entries are JSON documents merged under per-document rules.
	KindConfig
)

type (
	// ManagedFile is one file or directory the scaffolder is responsible
	// for. Entries are created at plan time and never mutated afterwards;
	// only the filesystem entity they describe is.
	ManagedFile struct {
		// Name is the project-relative display name, always using forward
		// slashes regardless of the host separator.
		Name string

		// Path is the absolute filesystem path. It is unique within a plan.
		Path string

		// Kind selects the ensure policy.
		Kind FileKind

		// Template is the body written when a KindTemplate file is absent.
		Template []byte

		// Doc carries the merge policy for a KindConfig file.
		Doc Document
	}

	// PlanParams are the inputs needed to compute a project plan.
	PlanParams struct {
		// ProjectRoot is the absolute path of the directory to scaffold.
		ProjectRoot string

		// CompilerRoot is the absolute path of the installed compiler.
		CompilerRoot string

		// IncludeNode adds the node usage example and starter test.
		IncludeNode bool

		// IncludeWeb adds the browser usage example.
		IncludeWeb bool

		// PackageManager selects the run-command prefix in generated scripts.
		PackageManager PackageManager

		// CompilerVersion pins generated dependency ranges (caret range).
		CompilerVersion string
	}

	// Plan is the ordered list of managed files for one invocation, plus the
	// metadata resolved at plan time. It is immutable once built.
	Plan struct {
		Files           []ManagedFile
		PackageManager  PackageManager
		CompilerVersion string
		IncludeNode     bool
		IncludeWeb      bool
	}
)

// NewPlan computes the managed file set for a project. The ordering is fixed:
// base files first, then node-profile files, then web-profile files, with
// every directory preceding the files inside it. The computation is pure; no
// filesystem access happens here and invalid paths surface later during the
// run.
func NewPlan(p PlanParams) *Plan {
	assemblyDir := filepath.Join(p.ProjectRoot, "assembly")

	manifest := &Manifest{
		CompilerVersion: p.CompilerVersion,
		PackageManager:  p.PackageManager,
		IncludeNode:     p.IncludeNode,
	}

	files := []ManagedFile{
		{Name: "assembly", Path: assemblyDir, Kind: KindDirectory},
		{
			Name: "assembly/tsconfig.json",
			Path: filepath.Join(assemblyDir, "tsconfig.json"),
			Kind: KindConfig,
			Doc:  &TSConfig{Extends: baseConfigRef(assemblyDir, p.CompilerRoot)},
		},
		{
			Name:     "assembly/index.ts",
			Path:     filepath.Join(assemblyDir, "index.ts"),
			Kind:     KindTemplate,
			Template: indexTS,
		},
		{Name: "build", Path: filepath.Join(p.ProjectRoot, "build"), Kind: KindDirectory},
		{
			Name:     "build/.gitignore",
			Path:     filepath.Join(p.ProjectRoot, "build", ".gitignore"),
			Kind:     KindTemplate,
			Template: buildGitignore,
		},
		{
			Name: "asconfig.json",
			Path: filepath.Join(p.ProjectRoot, "asconfig.json"),
			Kind: KindConfig,
			Doc:  BuildConfig{},
		},
		{
			Name: "package.json",
			Path: filepath.Join(p.ProjectRoot, "package.json"),
			Kind: KindConfig,
			Doc:  manifest,
		},
	}

	if p.IncludeNode {
		files = append(files,
			ManagedFile{
				Name:     "index.js",
				Path:     filepath.Join(p.ProjectRoot, "index.js"),
				Kind:     KindTemplate,
				Template: indexJS,
			},
			ManagedFile{Name: "tests", Path: filepath.Join(p.ProjectRoot, "tests"), Kind: KindDirectory},
			ManagedFile{
				Name:     "tests/index.js",
				Path:     filepath.Join(p.ProjectRoot, "tests", "index.js"),
				Kind:     KindTemplate,
				Template: testsIndexJS,
			},
		)
	}

	if p.IncludeWeb {
		files = append(files, ManagedFile{
			Name:     "index.html",
			Path:     filepath.Join(p.ProjectRoot, "index.html"),
			Kind:     KindTemplate,
			Template: indexHTML,
		})
	}

	return &Plan{
		Files:           files,
		PackageManager:  p.PackageManager,
		CompilerVersion: p.CompilerVersion,
		IncludeNode:     p.IncludeNode,
		IncludeWeb:      p.IncludeWeb,
	}
}

// baseConfigRef computes the tsconfig extends reference: the relative path
// from the source directory to the compiler's bundled std/assembly.json. When
// that path resolves through a node_modules install of the compiler, the
// package-qualified form is substituted so the reference stays valid if the
// project is relocated while module resolution still finds the package.
func baseConfigRef(assemblyDir, compilerRoot string) string {
	base := filepath.Join(compilerRoot, "std", "assembly.json")

	rel, err := filepath.Rel(assemblyDir, base)
	if err != nil {
		return toPosix(base)
	}

	rel = toPosix(rel)
	if viaModuleResolution(rel) {
		return "assemblyscript/std/assembly.json"
	}

	return rel
}

// viaModuleResolution reports whether rel climbs out of the source directory
// and descends into the compiler package under a node_modules directory.
func viaModuleResolution(rel string) bool {
	parts := strings.Split(rel, "/")

	i := 0
	for i < len(parts) && parts[i] == ".." {
		i++
	}

	return i > 0 && i+1 < len(parts) && parts[i] == "node_modules" && parts[i+1] == "assemblyscript"
}

func toPosix(path string) string {
	return strings.ReplaceAll(path, string(filepath.Separator), "/")
}
