// Package greedy implements the accurate chain builder: greedy nearest
// insertion across all chains.
//
// Algorithm:
//
//  1. Start with one two-point chain per driver pair: input i → output i+16.
//  2. While ordinary pins remain, pick the (pin P, edge u→v) pair minimizing
//     the insertion cost
//
//     cost(P, u, v) = d(u, P) + d(P, v) − d(u, v)
//
//     over every remaining pin and every edge of every chain, and splice P
//     between u and v.
//
// Tie-break: candidates are ordered lexicographically by
// (cost, pin ordinal in input order, chain index, edge sequence). The 16
// initial edges carry sequences 0–15 (chain order); every insertion assigns
// the next two sequence numbers to u→P and P→v, in that order.
//
// Implementation: instead of rescanning all pins × edges per step, each pin
// keeps its best candidate edge in a min-heap with lazy invalidation (stale
// heap entries are skipped when popped, as in dijkstra's lazy decrease-key).
// After splicing P into u→v, a remaining pin whose best edge was u→v rescans
// all live edges; every other pin only compares its best against the two new
// edges. The resulting chains are identical to the literal O(n³) scan.
//
// Complexity:
//
//   - Worst case O(n³) (every pin rescans after every step).
//   - Typical O(n² log n): one O(n) update pass per step plus heap traffic.
//   - Space: O(n) nodes + O(n) heap entries per step (lazy).
//
// Because the metric satisfies the triangle inequality every insertion cost is
// non-negative: the total length never decreases from one step to the next.
// WithOnInsert exposes each step for observation.
package greedy
