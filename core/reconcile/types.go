package reconcile

import "fmt"

// RepoRecord is a content-delivery repository as returned by the product catalog.
type RepoRecord struct {
	// Name is the repository id in the content-delivery service.
	Name string `json:"name"`

	// Arch is the repository architecture (e.g., "x86_64").
	Arch string `json:"arch"`

	// VariantUID is the release variant the repository belongs to (e.g., "Server").
	VariantUID string `json:"variant_uid"`

	// ContentCategory is the kind of content (e.g., "binary", "debug", "source").
	ContentCategory string `json:"content_category"`
}

// Key returns the identity of the record within a single release.
func (r RepoRecord) Key() RepoKey {
	return RepoKey{
		Arch:            r.Arch,
		VariantUID:      r.VariantUID,
		ContentCategory: r.ContentCategory,
	}
}

// RepoKey identifies a repository independently of its name.
// Two repositories of different releases with the same key are counterparts.
type RepoKey struct {
	Arch            string `json:"arch"`
	VariantUID      string `json:"variant_uid"`
	ContentCategory string `json:"content_category"`
}

// String renders the key as arch/variant/category.
func (k RepoKey) String() string {
	return fmt.Sprintf("%s/%s/%s", k.Arch, k.VariantUID, k.ContentCategory)
}

func (k RepoKey) less(o RepoKey) bool {
	if k.Arch != o.Arch {
		return k.Arch < o.Arch
	}
	if k.VariantUID != o.VariantUID {
		return k.VariantUID < o.VariantUID
	}
	return k.ContentCategory < o.ContentCategory
}

// Pair links a source repository to its destination counterpart.
type Pair struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Options controls reconciliation behavior.
type Options struct {
	// SkipCardinalityCheck allows source and destination sets of different sizes.
	// Keys without a counterpart are then reported as missing instead of failing.
	SkipCardinalityCheck bool
}

// Result classifies every key of both sides into exactly one bucket.
type Result struct {
	// Cloned contains counterparts whose names differ; these need cloning.
	Cloned []Pair `json:"cloned"`

	// Identical contains counterparts that already share a name.
	Identical []Pair `json:"identical"`

	// MissingDestination contains source repositories without a destination counterpart.
	MissingDestination []string `json:"missing_destination"`

	// MissingSource contains destination repositories without a source counterpart.
	MissingSource []string `json:"missing_source"`
}

// Empty reports whether the result contains nothing at all.
func (r *Result) Empty() bool {
	return len(r.Cloned) == 0 &&
		len(r.Identical) == 0 &&
		len(r.MissingDestination) == 0 &&
		len(r.MissingSource) == 0
}

// Summary returns aggregate counts for the result.
func (r *Result) Summary() Summary {
	return Summary{
		Source:             len(r.Cloned) + len(r.Identical) + len(r.MissingDestination),
		Destination:        len(r.Cloned) + len(r.Identical) + len(r.MissingSource),
		Cloned:             len(r.Cloned),
		Identical:          len(r.Identical),
		MissingDestination: len(r.MissingDestination),
		MissingSource:      len(r.MissingSource),
	}
}

// Summary provides aggregate statistics for a reconciliation.
type Summary struct {
	// Source is the number of source repositories.
	Source int `json:"source"`

	// Destination is the number of destination repositories.
	Destination int `json:"destination"`

	// Cloned counts pairs that need cloning.
	Cloned int `json:"cloned"`

	// Identical counts pairs that are already in sync.
	Identical int `json:"identical"`

	// MissingDestination counts source repositories without a counterpart.
	MissingDestination int `json:"missing_destination"`

	// MissingSource counts destination repositories without a counterpart.
	MissingSource int `json:"missing_source"`
}
