package deploy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// capacityLimits flattens capacity options to their payloads.
func capacityLimits(caps []*Capacity) []int {
	limits := make([]int, 0, len(caps))
	for _, c := range caps {
		limits = append(limits, c.Limit())
	}
	return limits
}

// chainKinds collects the kind of every option in chain, head first.
func chainKinds(t *testing.T, chain Option) []Kind {
	t.Helper()

	var kinds []Kind
	cur := chain
	for cur != Empty {
		kinds = append(kinds, cur.Kind())
		next, err := cur.Next()
		require.NoError(t, err)
		cur = next
	}
	return kinds
}

func TestEmptyNext(t *testing.T) {
	next, err := Empty.Next()
	require.ErrorIs(t, err, ErrEmptyChain)
	assert.Nil(t, next)
	assert.Equal(t, KindNone, Empty.Kind())
}

func TestFirstOrElseReturnsHeadMostMatch(t *testing.T) {
	chain := WithCapacity(WithSelector(WithCapacity(Empty, 50), "x"), 10)

	got := FirstOrElse(chain, NewCapacity(1))
	assert.Equal(t, 10, got.Limit())

	sel := FirstOrElse(chain, NewSelector("default"))
	assert.Equal(t, "x", sel.Path())
}

func TestFirstOrElseReturnsDefaultOnEmptyChain(t *testing.T) {
	got := FirstOrElse(Empty, NewSelector("default"))
	assert.Equal(t, "default", got.Path())
}

func TestFirstOrElseReturnsDefaultWhenKindAbsent(t *testing.T) {
	chain := WithCapacity(Empty, 10)

	got := FirstOrElse(chain, NewSelector("fallback"))
	assert.Equal(t, "fallback", got.Path())
}

func TestFirstOrElseIsIdempotent(t *testing.T) {
	chain := WithCapacity(WithName(Empty, "worker"), 10)

	first := FirstOrElse(chain, NewCapacity(1))
	second := FirstOrElse(chain, NewCapacity(1))
	assert.Same(t, first, second)
}

func TestAllOfPreservesOrderAndDetachesTails(t *testing.T) {
	chain := WithCapacity(WithSelector(WithCapacity(Empty, 50), "x"), 10)

	caps := AllOf[*Capacity](chain)
	require.Len(t, caps, 2)
	assert.Equal(t, []int{10, 50}, capacityLimits(caps))

	// Every returned option is a singleton chain: its next reference
	// must be the terminal marker, not the original chain suffix.
	for _, c := range caps {
		next, err := c.Next()
		require.NoError(t, err)
		assert.Equal(t, Empty, next)
	}

	// The original chain is untouched by the detachment.
	assert.Equal(t, 3, Len(chain))
	assert.Equal(t, []Kind{KindCapacity, KindSelector, KindCapacity}, chainKinds(t, chain))
}

func TestAllOfOnEmptyChain(t *testing.T) {
	assert.Empty(t, AllOf[*Capacity](Empty))
}

func TestFilterNotRemovesEveryMatch(t *testing.T) {
	chain := WithCapacity(WithSelector(WithCapacity(Empty, 50), "x"), 10)

	filtered := FilterNot[*Capacity](chain)
	assert.Equal(t, []Kind{KindSelector}, chainKinds(t, filtered))
	assert.Equal(t, "x", FirstOrElse(filtered, NewSelector("")).Path())

	// Original chain unmodified.
	assert.Equal(t, 3, Len(chain))
}

func TestFilterNotPreservesOrder(t *testing.T) {
	chain := WithName(WithCapacity(WithSelector(WithTimeout(Empty, 1), "x"), 10), "worker")

	filtered := FilterNot[*Capacity](chain)
	assert.Equal(t, []Kind{KindName, KindSelector, KindTimeout}, chainKinds(t, filtered))
}

func TestFilterNotRelinksSurvivors(t *testing.T) {
	// The selector's original next reference points at a capacity
	// option; after filtering it must point at the timeout instead.
	chain := WithSelector(WithCapacity(WithTimeout(Empty, 1), 10), "x")

	filtered := FilterNot[*Capacity](chain)

	sel := FirstOrElse(filtered, NewSelector(""))
	next, err := sel.Next()
	require.NoError(t, err)
	assert.Equal(t, KindTimeout, next.Kind())

	// The survivor in the original chain still points at the capacity.
	orig := FirstOrElse(chain, NewSelector(""))
	next, err = orig.Next()
	require.NoError(t, err)
	assert.Equal(t, KindCapacity, next.Kind())
}

func TestFilterNotEverythingMatches(t *testing.T) {
	chain := WithCapacity(WithCapacity(Empty, 1), 2)

	assert.Equal(t, Empty, FilterNot[*Capacity](chain))
}

func TestFilterNotOnEmptyChain(t *testing.T) {
	assert.Equal(t, Empty, FilterNot[*Capacity](Empty))
}

func TestFilterNotIsIdempotent(t *testing.T) {
	chain := WithCapacity(WithSelector(WithCapacity(Empty, 50), "x"), 10)

	once := FilterNot[*Capacity](chain)
	twice := FilterNot[*Capacity](once)
	assert.Equal(t, chainKinds(t, once), chainKinds(t, twice))
	assert.Equal(t, Len(once), Len(twice))
}

func TestFilterNotAndAllOfPartitionTheChain(t *testing.T) {
	chain := WithName(WithCapacity(WithSelector(WithCapacity(Empty, 50), "x"), 10), "worker")

	matched := AllOf[*Capacity](chain)
	rest := FilterNot[*Capacity](chain)

	// No option lost or duplicated across the two halves.
	assert.Equal(t, Len(chain), len(matched)+Len(rest))
	assert.Equal(t, []int{10, 50}, capacityLimits(matched))
	assert.Equal(t, []Kind{KindName, KindSelector}, chainKinds(t, rest))
	assert.Empty(t, AllOf[*Capacity](rest))
}

func TestDistinctKindsRoundTrip(t *testing.T) {
	chain := WithTimeout(WithExecutor(WithSelector(WithCapacity(Empty, 7), "/user/w"), "pool-a"), 5)

	assert.Equal(t, 7, FirstOrElse(chain, NewCapacity(0)).Limit())
	assert.Equal(t, "/user/w", FirstOrElse(chain, NewSelector("")).Path())
	assert.Equal(t, "pool-a", FirstOrElse(chain, NewExecutor(nil)).Handle())
	assert.Equal(t, int64(5), int64(FirstOrElse(chain, NewTimeout(0)).Duration()))
}

func TestLenAndIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(Empty))
	assert.True(t, IsEmpty(nil))
	assert.Zero(t, Len(Empty))

	chain := WithCapacity(Empty, 1)
	assert.False(t, IsEmpty(chain))
	assert.Equal(t, 1, Len(chain))
}
