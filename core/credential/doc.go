// Package credential resolves the Pulp password of a workflow run.
//
// Dry runs are credential free: Resolve never prompts unless a commit was
// requested.
package credential
