package project

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/wasmkit/asinit/pkg/consts"
)

// Outcome is the per-file result of one ensure step.
type Outcome int

const (
	Created Outcome = iota
	Updated
	Unchanged
	Failed
)

func (o Outcome) String() string {
	switch o {
	case Created:
		return "created"
	case Updated:
		return "updated"
	case Unchanged:
		return "unchanged"
	default:
		return "failed"
	}
}

// Result pairs a managed file with the outcome of its ensure step. Err is set
// only when Outcome is Failed.
type Result struct {
	File    ManagedFile
	Outcome Outcome
	Err     error
}

// ParseError reports an existing config file whose content is not valid
// JSON. The file is left untouched and later plan entries still process.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid JSON in %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ensure applies the per-kind policy for a single managed file. All side
// effects stay under the entry's own path.
func ensure(f ManagedFile) Result {
	switch f.Kind {
	case KindDirectory:
		return ensureDirectory(f)
	case KindTemplate:
		return ensureTemplate(f)
	default:
		return mergeConfig(f)
	}
}

func ensureDirectory(f ManagedFile) Result {
	if info, err := os.Stat(f.Path); err == nil {
		if info.IsDir() {
			return Result{File: f, Outcome: Unchanged}
		}
		return Result{File: f, Outcome: Failed, Err: errors.Errorf("%s exists and is not a directory", f.Path)}
	} else if !os.IsNotExist(err) {
		return Result{File: f, Outcome: Failed, Err: errors.Wrapf(err, "failed to stat %s", f.Path)}
	}

	if err := os.Mkdir(f.Path, consts.ModeDir); err != nil {
		return Result{File: f, Outcome: Failed, Err: errors.Wrapf(err, "failed to create directory %s", f.Path)}
	}

	return Result{File: f, Outcome: Created}
}

func ensureTemplate(f ManagedFile) Result {
	// Existence alone satisfies the contract; the content is never inspected.
	if _, err := os.Stat(f.Path); err == nil {
		return Result{File: f, Outcome: Unchanged}
	} else if !os.IsNotExist(err) {
		return Result{File: f, Outcome: Failed, Err: errors.Wrapf(err, "failed to stat %s", f.Path)}
	}

	if err := os.WriteFile(f.Path, f.Template, consts.ModeFile); err != nil {
		return Result{File: f, Outcome: Failed, Err: errors.Wrapf(err, "failed to write file %s", f.Path)}
	}

	return Result{File: f, Outcome: Created}
}
