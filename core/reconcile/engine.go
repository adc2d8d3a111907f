package reconcile

import (
	"sort"
)

// Reconcile classifies the repositories of two releases by key.
// Both inputs are left untouched; the result is deterministic for a given input.
func Reconcile(source, dest []RepoRecord, opts Options) (*Result, error) {
	sourceIndex, err := buildIndex(SideSource, source)
	if err != nil {
		return nil, err
	}

	destIndex, err := buildIndex(SideDestination, dest)
	if err != nil {
		return nil, err
	}

	if len(source) != len(dest) && !opts.SkipCardinalityCheck {
		return nil, &CardinalityMismatchError{Source: len(source), Destination: len(dest)}
	}

	result := &Result{
		Cloned:             []Pair{},
		Identical:          []Pair{},
		MissingDestination: []string{},
		MissingSource:      []string{},
	}

	for _, key := range buildUnion(sourceIndex, destIndex) {
		from, inSource := sourceIndex[key]
		to, inDest := destIndex[key]

		switch {
		case inSource && inDest && from == to:
			result.Identical = append(result.Identical, Pair{From: from, To: to})
		case inSource && inDest:
			result.Cloned = append(result.Cloned, Pair{From: from, To: to})
		case inSource:
			result.MissingDestination = append(result.MissingDestination, from)
		default:
			result.MissingSource = append(result.MissingSource, to)
		}
	}

	return result, nil
}

// buildIndex maps every key of one side to its repository name.
func buildIndex(side Side, records []RepoRecord) (map[RepoKey]string, error) {
	index := make(map[RepoKey]string, len(records))
	for _, record := range records {
		key := record.Key()
		if existing, ok := index[key]; ok {
			return nil, &DuplicateKeyError{Side: side, Key: key, Names: [2]string{existing, record.Name}}
		}
		index[key] = record.Name
	}
	return index, nil
}

// buildUnion returns the keys of both indices, sorted.
func buildUnion(a, b map[RepoKey]string) []RepoKey {
	seen := make(map[RepoKey]struct{}, len(a)+len(b))
	for key := range a {
		seen[key] = struct{}{}
	}
	for key := range b {
		seen[key] = struct{}{}
	}

	keys := make([]RepoKey, 0, len(seen))
	for key := range seen {
		keys = append(keys, key)
	}

	sort.Slice(keys, func(i, j int) bool {
		return keys[i].less(keys[j])
	})

	return keys
}
