package reconcile

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func repo(name, arch, variant, category string) RepoRecord {
	return RepoRecord{Name: name, Arch: arch, VariantUID: variant, ContentCategory: category}
}

// TestReconcile_Scenarios covers the classification of single keys.
func TestReconcile_Scenarios(t *testing.T) {
	tests := []struct {
		name   string
		source []RepoRecord
		dest   []RepoRecord
		opts   Options
		want   Result
	}{
		{
			name:   "identical sets",
			source: []RepoRecord{repo("r1", "x86_64", "Server", "binary")},
			dest:   []RepoRecord{repo("r1", "x86_64", "Server", "binary")},
			want: Result{
				Cloned:             []Pair{},
				Identical:          []Pair{{From: "r1", To: "r1"}},
				MissingDestination: []string{},
				MissingSource:      []string{},
			},
		},
		{
			name:   "rename",
			source: []RepoRecord{repo("old-name", "x86_64", "Server", "binary")},
			dest:   []RepoRecord{repo("new-name", "x86_64", "Server", "binary")},
			want: Result{
				Cloned:             []Pair{{From: "old-name", To: "new-name"}},
				Identical:          []Pair{},
				MissingDestination: []string{},
				MissingSource:      []string{},
			},
		},
		{
			name:   "one-sided",
			source: []RepoRecord{repo("src", "x86_64", "Server", "binary")},
			dest:   []RepoRecord{repo("dst", "ppc64le", "Server", "binary")},
			want: Result{
				Cloned:             []Pair{},
				Identical:          []Pair{},
				MissingDestination: []string{"src"},
				MissingSource:      []string{"dst"},
			},
		},
		{
			name: "empty sides",
			want: Result{
				Cloned:             []Pair{},
				Identical:          []Pair{},
				MissingDestination: []string{},
				MissingSource:      []string{},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Reconcile(tt.source, tt.dest, tt.opts)
			require.NoError(t, err)
			assert.ElementsMatch(t, tt.want.Cloned, result.Cloned)
			assert.ElementsMatch(t, tt.want.Identical, result.Identical)
			assert.ElementsMatch(t, tt.want.MissingDestination, result.MissingDestination)
			assert.ElementsMatch(t, tt.want.MissingSource, result.MissingSource)
		})
	}
}

func TestReconcile_EmptyIsNoop(t *testing.T) {
	result, err := Reconcile(nil, []RepoRecord{}, Options{})
	require.NoError(t, err)
	assert.True(t, result.Empty())
	assert.Equal(t, Summary{}, result.Summary())
}

// TestReconcile_DuplicateKey checks that a repeated key fails on either side regardless of the other.
func TestReconcile_DuplicateKey(t *testing.T) {
	dup := []RepoRecord{
		repo("a", "x86_64", "Server", "binary"),
		repo("b", "x86_64", "Server", "binary"),
	}
	other := []RepoRecord{
		repo("c", "x86_64", "Server", "binary"),
		repo("d", "x86_64", "Server", "debug"),
	}

	t.Run("source", func(t *testing.T) {
		_, err := Reconcile(dup, other, Options{})
		var dupErr *DuplicateKeyError
		require.True(t, errors.As(err, &dupErr))
		assert.Equal(t, SideSource, dupErr.Side)
		assert.Equal(t, RepoKey{Arch: "x86_64", VariantUID: "Server", ContentCategory: "binary"}, dupErr.Key)
		assert.Equal(t, [2]string{"a", "b"}, dupErr.Names)
	})

	t.Run("destination", func(t *testing.T) {
		_, err := Reconcile(other, dup, Options{})
		var dupErr *DuplicateKeyError
		require.True(t, errors.As(err, &dupErr))
		assert.Equal(t, SideDestination, dupErr.Side)
	})

	t.Run("skip check does not hide duplicates", func(t *testing.T) {
		_, err := Reconcile(dup, nil, Options{SkipCardinalityCheck: true})
		var dupErr *DuplicateKeyError
		assert.True(t, errors.As(err, &dupErr))
	})
}

func TestReconcile_Cardinality(t *testing.T) {
	source := []RepoRecord{
		repo("f24-server", "x86_64", "Server", "binary"),
		repo("f24-server-debug", "x86_64", "Server", "debug"),
	}
	dest := []RepoRecord{
		repo("f25-server", "x86_64", "Server", "binary"),
	}

	t.Run("mismatch fails", func(t *testing.T) {
		result, err := Reconcile(source, dest, Options{})
		assert.Nil(t, result)
		var cardErr *CardinalityMismatchError
		require.True(t, errors.As(err, &cardErr))
		assert.Equal(t, 2, cardErr.Source)
		assert.Equal(t, 1, cardErr.Destination)
	})

	t.Run("skip check partitions", func(t *testing.T) {
		result, err := Reconcile(source, dest, Options{SkipCardinalityCheck: true})
		require.NoError(t, err)
		assert.Equal(t, []Pair{{From: "f24-server", To: "f25-server"}}, result.Cloned)
		assert.Empty(t, result.Identical)
		assert.Equal(t, []string{"f24-server-debug"}, result.MissingDestination)
		assert.Empty(t, result.MissingSource)
	})
}

// TestReconcile_Idempotence checks that a set reconciled against itself is fully identical.
func TestReconcile_Idempotence(t *testing.T) {
	var set []RepoRecord
	for _, arch := range []string{"x86_64", "aarch64", "s390x"} {
		for _, category := range []string{"binary", "debug", "source"} {
			set = append(set, repo(fmt.Sprintf("rhel-%s-%s", arch, category), arch, "Server", category))
		}
	}

	result, err := Reconcile(set, set, Options{})
	require.NoError(t, err)
	assert.Len(t, result.Identical, len(set))
	assert.Empty(t, result.Cloned)
	assert.Empty(t, result.MissingDestination)
	assert.Empty(t, result.MissingSource)
}

// TestReconcile_Partition checks that every key of both sides lands in exactly one bucket.
func TestReconcile_Partition(t *testing.T) {
	source := []RepoRecord{
		repo("s-same", "x86_64", "Server", "binary"),
		repo("s-old", "x86_64", "Server", "debug"),
		repo("s-only", "x86_64", "Client", "binary"),
		repo("s-only-2", "ppc64le", "Server", "binary"),
	}
	dest := []RepoRecord{
		repo("s-same", "x86_64", "Server", "binary"),
		repo("d-new", "x86_64", "Server", "debug"),
		repo("d-only", "aarch64", "Server", "binary"),
	}

	result, err := Reconcile(source, dest, Options{SkipCardinalityCheck: true})
	require.NoError(t, err)

	var fromNames, toNames []string
	for _, p := range append(append([]Pair{}, result.Cloned...), result.Identical...) {
		fromNames = append(fromNames, p.From)
		toNames = append(toNames, p.To)
	}
	fromNames = append(fromNames, result.MissingDestination...)
	toNames = append(toNames, result.MissingSource...)

	assert.ElementsMatch(t, []string{"s-same", "s-old", "s-only", "s-only-2"}, fromNames)
	assert.ElementsMatch(t, []string{"s-same", "d-new", "d-only"}, toNames)

	s := result.Summary()
	assert.Equal(t, 4, s.Source)
	assert.Equal(t, 3, s.Destination)
	assert.Equal(t, 1, s.Cloned)
	assert.Equal(t, 1, s.Identical)
	assert.Equal(t, 2, s.MissingDestination)
	assert.Equal(t, 1, s.MissingSource)
}

func TestReconcile_DoesNotMutateInput(t *testing.T) {
	source := []RepoRecord{repo("a", "x86_64", "Server", "binary")}
	dest := []RepoRecord{repo("b", "x86_64", "Server", "binary")}
	sourceCopy := append([]RepoRecord{}, source...)
	destCopy := append([]RepoRecord{}, dest...)

	_, err := Reconcile(source, dest, Options{})
	require.NoError(t, err)
	assert.Equal(t, sourceCopy, source)
	assert.Equal(t, destCopy, dest)
}

func TestRepoKey_String(t *testing.T) {
	key := repo("n", "x86_64", "Server", "binary").Key()
	assert.Equal(t, "x86_64/Server/binary", key.String())
}
