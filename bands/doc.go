// Package bands implements the fast chain builder: pins are bucketed into 32
// horizontal bands and ordered by x inside each band.
//
// Setup:
//
//	The y-range [ymin, ymax] of the ordinary pins is cut into 32 equal-width
//	intervals numbered 0–31 from the bottom. Boundaries are
//
//	    b_k = ymin + k·(ymax − ymin)/32,  k = 0 … 32.
//
//	Interval k owns (b_k, b_k+1]; interval 0 additionally owns ymin. A pin on a
//	shared boundary therefore belongs to the lower interval. When every pin has
//	the same y, all pins fall into interval 0.
//
// Assembly of chain i (0 ≤ i < 16), paired with band Partner[i] == i+16:
//
//	input driver i
//	→ band i in ascending x
//	→ bridge to the largest-x pin of band i+16
//	→ band i+16 in descending x
//	→ output driver i+16
//
// Pins with equal x are ordered by ascending y, then by input order, before the
// upper band is reversed. An empty band contributes no pins; the chain still
// runs from its input driver to its output driver.
//
// Ordering ignores true neighbour distances, which is where accuracy is lost
// compared to the greedy builder.
//
// Complexity: O(n log n) time (bucketing O(n·log 32), sorting O(n log n),
// assembly O(n)); O(n) space.
package bands
