package buffer_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/phylokit/phylocore/buffer"
)

// TestInitRejectsBadShapes checks the InitError-class sentinel errors.
func TestInitRejectsBadShapes(t *testing.T) {
	_, err := buffer.Init(0, 4, 2, 1, nil)
	require.ErrorIs(t, err, buffer.ErrZeroDimension)

	_, err = buffer.Init(1, 65, 2, 1, []buffer.NodeKind{buffer.Internal})
	require.ErrorIs(t, err, buffer.ErrAlphabetTooLarge)

	_, err = buffer.Init(2, 4, 2, 1, []buffer.NodeKind{buffer.Internal})
	require.ErrorIs(t, err, buffer.ErrKindCountMismatch)
}

// TestFlipTogglesLiveAlt verifies that Flip swaps which buffer Live/Alt
// point to without touching contents.
func TestFlipTogglesLiveAlt(t *testing.T) {
	pool, err := buffer.Init(1, 4, 2, 1, []buffer.NodeKind{buffer.Internal})
	require.NoError(t, err)

	live := pool.LiveMatrix(0)
	alt := pool.AltMatrix(0)
	alt[0] = 42

	pool.FlipMatrix(0)
	require.Equal(t, float64(42), pool.LiveMatrix(0)[0])
	require.NotSame(t, &live[0], &pool.LiveMatrix(0)[0])
}

// TestStoreRestoreRoundTrips checks that Restore puts the live-index
// vectors back to what they were at the last Store: an O(1) index swap,
// never a deep copy.
func TestStoreRestoreRoundTrips(t *testing.T) {
	pool, err := buffer.Init(2, 4, 2, 1, []buffer.NodeKind{buffer.Internal, buffer.Internal})
	require.NoError(t, err)

	before := pool.LivePartials(0)
	pool.Store()
	pool.FlipPartials(0)
	require.NotSame(t, &before[0], &pool.LivePartials(0)[0])

	pool.Restore()
	require.Same(t, &before[0], &pool.LivePartials(0)[0])
}

// TestTipAccessorsReturnNilOnWrongKind documents that TipStates/TipPartials
// are only valid for their matching NodeKind; calling them on the wrong
// kind returns a nil slice rather than silently aliasing another node's
// data.
func TestTipAccessorsReturnNilOnWrongKind(t *testing.T) {
	pool, err := buffer.Init(2, 4, 2, 1, []buffer.NodeKind{buffer.TipStates, buffer.TipPartials})
	require.NoError(t, err)

	require.Len(t, pool.TipStates(0), 2)
	require.Nil(t, pool.TipStates(1))
	require.Len(t, pool.TipPartials(1), 1*2*4)
	require.Nil(t, pool.TipPartials(0))
}
