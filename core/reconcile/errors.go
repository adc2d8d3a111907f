package reconcile

import "fmt"

// Side names one of the two reconciled repository sets.
type Side string

const (
	// SideSource is the release repositories are cloned from.
	SideSource Side = "source"
	// SideDestination is the release repositories are cloned to.
	SideDestination Side = "destination"
)

// DuplicateKeyError is returned when one side contains two repositories with the same key.
// The catalog returned an ambiguous release definition that must be fixed by hand.
type DuplicateKeyError struct {
	Side  Side
	Key   RepoKey
	Names [2]string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("duplicate %s repo key %s: %q and %q", e.Side, e.Key, e.Names[0], e.Names[1])
}

// CardinalityMismatchError is returned when the sides differ in size and the check was not skipped.
type CardinalityMismatchError struct {
	Source      int
	Destination int
}

func (e *CardinalityMismatchError) Error() string {
	return fmt.Sprintf("source has %d repos but destination has %d (use --skip-repo-check to clone the matching ones)",
		e.Source, e.Destination)
}
