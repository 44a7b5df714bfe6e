package project

import _ "embed"

// Fixed template bodies for the plain-text managed files. These are written
// verbatim when the file is absent and never touched again.
var (
	//go:embed embed/index.ts
	indexTS []byte

	//go:embed embed/gitignore
	buildGitignore []byte

	//go:embed embed/index.js
	indexJS []byte

	//go:embed embed/tests_index.js
	testsIndexJS []byte

	//go:embed embed/index.html
	indexHTML []byte
)
