// Package reconcile compares the content-delivery repositories of two releases.
//
// Repositories are matched by their key, the (arch, variant_uid, content_category)
// triple, which must be unique within one release. Every key of either side ends up
// in exactly one bucket:
//
//   - Cloned: both sides have the key but the names differ, so the destination
//     repository needs the source content cloned into it.
//   - Identical: both sides have the key under the same name; nothing to do.
//   - MissingDestination: only the source has the key.
//   - MissingSource: only the destination has the key.
//
// The missing buckets point at release definitions an operator has to fix by hand;
// they are reported, never resolved automatically.
//
// # Cardinality
//
// Sides of different sizes are rejected with CardinalityMismatchError unless
// Options.SkipCardinalityCheck is set. Two empty sides are a valid no-op.
//
// # Usage
//
//	result, err := reconcile.Reconcile(fromRepos, toRepos, reconcile.Options{})
//	if err != nil {
//	    return err
//	}
//	for _, pair := range result.Cloned {
//	    fmt.Println(pair.From, "->", pair.To)
//	}
package reconcile
