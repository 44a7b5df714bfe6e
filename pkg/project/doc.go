// Package project implements the idempotent scaffolding engine behind the
// asinit CLI. It creates or updates the fixed set of starter files an
// AssemblyScript project needs to compile to WebAssembly, without ever
// destroying user customizations.
//
// # Managed Files
//
// A scaffolded project follows this layout:
//
//	project-root/
//	├── assembly/
//	│   ├── tsconfig.json       # Inherits the compiler's base config
//	│   └── index.ts            # Starter source exporting one function
//	├── build/
//	│   └── .gitignore          # Excludes compiled artifacts
//	├── asconfig.json           # Debug and release build profiles
//	├── package.json            # Build scripts and compiler dependencies
//	├── index.js                # Node usage example (node profile)
//	├── tests/index.js          # Starter test (node profile)
//	└── index.html              # Browser usage example (web profile)
//
// # Ensure Policy
//
// Each managed file carries one of three kinds with its own idempotency
// policy:
//
//   - directories are created when absent and otherwise left alone
//   - plain templates are written once; an existing file is never read or
//     modified, existence alone satisfies the contract
//   - structured configs are merged: required fields are folded into the
//     existing JSON document under per-document rules, and the file is
//     rewritten only when something actually changed
//
// # Usage Example
//
//	plan := project.NewPlan(project.PlanParams{
//		ProjectRoot:     "/path/to/app",
//		CompilerRoot:    "/path/to/app/node_modules/assemblyscript",
//		IncludeNode:     true,
//		PackageManager:  project.DetectPackageManager(userAgent),
//		CompilerVersion: "0.28.2",
//	})
//
//	summary := project.New(plan).Initialize(confirmed)
//	for _, r := range summary.Results {
//		fmt.Printf("%s: %s\n", r.File.Name, r.Outcome)
//	}
//
// Running the same plan twice yields identical file contents; the second run
// reports every entry as unchanged.
package project
