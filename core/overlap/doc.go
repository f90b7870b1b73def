// Package overlap maintains an incremental graph of exact suffix/prefix
// overlaps between distinct reads and derives a greedy assembly from it.
//
// Each distinct sequence is a node. An edge A→B exists iff the longest
// suffix of A equal to a prefix of B has length L ≥ MinOverlap; L is
// stored exactly. Edges of a new sequence are computed once, when it is
// first seen, in both directions against everything already present, so
// the final edge set does not depend on read order.
//
// Two historical behaviours are kept behind Config switches:
//   - KeepSelfLoops: a new sequence is matched against itself during the
//     predecessor scan, which adds a full-length self edge.
//   - SourceMinInDegree: the layout starts at the edge destination with the
//     fewest incoming edges; sequences without predecessors never qualify.
//
// Keep this package domain-only: it must not import the CLI, pipeline or
// output packages.
package overlap
