// Package buffer owns every per-node double-buffered array used by a
// likelihood evaluation — transition matrices and partial-likelihood
// vectors — plus the "current index" vector that tells the rest of the
// core which of the two physical buffers is live for each node.
//
// Why a dedicated pool instead of per-node structs:
//   - Flat, contiguous backing arrays keep the hot (pruning-kernel) loops
//     cache-friendly; a slice-of-structs-of-slices layout would scatter
//     each node's R*P*S partials across the heap.
//   - Centralizing allocation makes teardown (and, in a future rescaling
//     extension, resize) a single pass instead of N separate frees.
//
// A node is exactly one of three kinds (NodeKind): an internal node
// (partials computed by pruning), a stateful tip (small-integer states,
// one per pattern), or a partials-based tip (a full R*P*S vector supplied
// by the caller, e.g. for ambiguity codes or per-read error models).
// Every node, tip or internal, has a transition matrix: this is the
// matrix for the branch connecting it to its parent.
//
// Buffer flips are a single index toggle (0/1) per node — restore never
// copies the big arrays, only the index vectors (see engine.Core.Restore).
package buffer
