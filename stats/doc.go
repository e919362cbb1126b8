// Package stats summarizes the 16 chain lengths of a routing result.
//
// Summarize reports the total wire length, the mean chain length and the
// population standard deviation (the balance measure), together with the
// sample standard deviation, the extremes and their spread.
//
// All values are rounded to 1e-9 to keep repeated runs bit-stable.
//
//	st, err := stats.Summarize(set.Lengths(nil))
//	fmt.Printf("total=%.3f mean=%.3f σ=%.3f\n", st.Total, st.Mean, st.StdDev)
package stats
