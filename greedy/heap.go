package greedy

// candidate is one (pin, edge) insertion option.
type candidate struct {
	pin     int     // pin ordinal in the input slice
	cost    float64 // insertion cost
	chain   int     // chain index of the edge
	seq     int     // edge sequence number
	from    int     // tail node of the edge
	version int     // pin's best-version at creation time
}

// less orders candidates of the same pin: (cost, chain, seq).
func (c candidate) less(o candidate) bool {
	if c.cost != o.cost {
		return c.cost < o.cost
	}
	if c.chain != o.chain {
		return c.chain < o.chain
	}

	return c.seq < o.seq
}

// candidatePQ is a min-heap of candidates ordered by (cost, pin, chain, seq).
// Outdated entries stay in the heap and are skipped when popped.
type candidatePQ []candidate

// Len returns the number of items in the heap.
func (pq candidatePQ) Len() int { return len(pq) }

// Less defines the global tie-break order.
func (pq candidatePQ) Less(i, j int) bool {
	a, b := pq[i], pq[j]
	if a.cost != b.cost {
		return a.cost < b.cost
	}
	if a.pin != b.pin {
		return a.pin < b.pin
	}
	if a.chain != b.chain {
		return a.chain < b.chain
	}

	return a.seq < b.seq
}

// Swap swaps two elements in the heap.
func (pq candidatePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends x; called by heap.Push.
func (pq *candidatePQ) Push(x interface{}) { *pq = append(*pq, x.(candidate)) }

// Pop removes the last element; called by heap.Pop.
func (pq *candidatePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
