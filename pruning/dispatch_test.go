package pruning_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/phylokit/phylocore/buffer"
	"github.com/phylokit/phylocore/pruning"
)

// TestPruneStatesStatesIntoInternal exercises Prune end to end through a
// buffer.Pool: two state tips combined via identity branches should leave
// all likelihood mass on the shared state at the internal parent.
func TestPruneStatesStatesIntoInternal(t *testing.T) {
	pool, err := buffer.Init(3, 4, 1, 1, []buffer.NodeKind{buffer.TipStates, buffer.TipStates, buffer.Internal})
	require.NoError(t, err)

	copy(pool.LiveMatrix(0), identity4())
	copy(pool.LiveMatrix(1), identity4())
	copy(pool.TipStates(0), []int32{2})
	copy(pool.TipStates(1), []int32{2})

	pruning.Prune(pool, 4, 1, 1, 0, 1, 2)

	require.Equal(t, []float64{0, 0, 1, 0}, pool.LivePartials(2))
}

// TestPrunePanicsOnNonInternalParent documents that Prune refuses to
// write into a fixed tip representation.
func TestPrunePanicsOnNonInternalParent(t *testing.T) {
	pool, err := buffer.Init(2, 4, 1, 1, []buffer.NodeKind{buffer.TipStates, buffer.TipStates})
	require.NoError(t, err)

	require.Panics(t, func() {
		pruning.Prune(pool, 4, 1, 1, 0, 1, 1)
	})
}
