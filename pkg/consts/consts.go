package consts

import "os"

const (
	// ModeDir is the standard file mode for creating directories
	ModeDir = os.FileMode(0o755)

	// ModeFile is the standard file mode for creating files
	ModeFile = os.FileMode(0o644)

	// DefaultCompilerVersion pins generated dependency ranges when the
	// installed compiler's own manifest cannot be read
	DefaultCompilerVersion = "0.28.2"

	// DefaultCompilerRoot is the project-relative install location of the
	// compiler used when no explicit root is configured
	DefaultCompilerRoot = "node_modules/assemblyscript"

	// CompilerPackage is the npm package name of the compiler referenced from
	// generated manifests
	CompilerPackage = "assemblyscript"

	// LoaderPackage is the npm package name of the runtime loader added to
	// node-oriented scaffolds
	LoaderPackage = "@assemblyscript/loader"

	// NpmDefaultTestScript is the placeholder npm writes into fresh manifests.
	// A test script equal to this value is treated as never customized and is
	// eligible for replacement on merge.
	NpmDefaultTestScript = `echo "Error: no test specified" && exit 1`
)
