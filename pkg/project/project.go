package project

type (
	// Project drives one plan against the filesystem.
	Project struct {
		plan *Plan
	}

	// Summary is the ordered per-entry outcome report for one run. When
	// Aborted is true the confirmation gate was declined and no filesystem
	// mutation happened.
	Summary struct {
		Aborted bool
		Results []Result
	}
)

// New creates a Project for the given plan.
//
// Example:
//
//	plan := project.NewPlan(params)
//	summary := project.New(plan).Initialize(true)
func New(plan *Plan) *Project {
	return &Project{plan: plan}
}

// Initialize ensures every entry of the plan, in plan order. If confirmed is
// false it returns an aborted summary without touching the filesystem.
//
// Failures are local: a failed entry is recorded in its Result and later
// entries still process. In particular a config file with invalid JSON
// reports a ParseError for that entry, is left untouched, and does not stop
// the run.
func (p *Project) Initialize(confirmed bool) *Summary {
	if !confirmed {
		return &Summary{Aborted: true}
	}

	summary := &Summary{Results: make([]Result, 0, len(p.plan.Files))}
	for _, f := range p.plan.Files {
		summary.Results = append(summary.Results, ensure(f))
	}

	return summary
}

// Failed reports whether any entry of the run failed.
func (s *Summary) Failed() bool {
	for _, r := range s.Results {
		if r.Outcome == Failed {
			return true
		}
	}

	return false
}
