package project_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	. "github.com/wasmkit/asinit/pkg/project"
	"gotest.tools/v3/golden"
)

// Synthesized documents are compared against golden files so formatting
// changes show up in review.
func TestSynthesizedDocuments(t *testing.T) {
	tests := []struct {
		name   string
		doc    Document
		golden string
	}{
		{
			name:   "tsconfig",
			doc:    &TSConfig{Extends: "assemblyscript/std/assembly.json"},
			golden: "tsconfig.json.golden",
		},
		{
			name:   "asconfig",
			doc:    BuildConfig{},
			golden: "asconfig.json.golden",
		},
		{
			name: "package manifest",
			doc: &Manifest{
				CompilerVersion: "0.28.2",
				PackageManager:  Npm,
				IncludeNode:     true,
			},
			golden: "package.json.golden",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "doc.json")

			res := ensureOne(t, configEntry(path, tt.doc))
			require.Equal(t, Created, res.Outcome)

			data, err := os.ReadFile(path)
			require.NoError(t, err)
			golden.Assert(t, string(data), tt.golden)
		})
	}
}
