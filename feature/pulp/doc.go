// Package pulp implements the repository clear and clone workflows.
//
// Both workflows query the product definition center for the content-delivery
// repositories of a release (service=pulp, content_format=rpm) and turn them into
// pulp-admin invocations.
//
// # Clear
//
// Clearer removes every RPM from the matched repositories. The "dist" repo family
// is refused. In a dry run the commands are printed but not executed.
//
// # Clone
//
// Cloner queries the non-shadow repositories of two releases, pairs them by
// (arch, variant_uid, content_category) and clones every pair whose names differ.
// Dry-run commands are prefixed with echo. Identical pairs and one-sided keys are
// reported after the run.
//
// # HTTP Endpoints
//
//   - GET /clone-plan?from=&to=&repo_family= : Reconciles two releases.
//   - GET /clear-plan?release=&repo_family= : Lists repositories to clear.
//
// Both accept repeated arch and variant parameters and never run a command.
package pulp
