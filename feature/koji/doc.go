// Package koji implements the release milestone tag clone.
//
// A milestone label such as "Beta-1.0" is validated against the known milestone
// names, turned into a milestone tag ("f24-beta-1-set" for release tag "f24"),
// and the release's compose tag is cloned into it with
//
//	koji --profile=<profile> clone-tag --verbose <compose_tag> <milestone_tag> [--test]
//
// Dry runs pass --test so koji reports without changing anything.
package koji
