package greedy

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/scanchain/chain"
	"github.com/katalvlaran/scanchain/driver"
	"github.com/katalvlaran/scanchain/geometry"
)

// none marks the absence of a successor node.
const none = -1

// Build inserts every pin into the chains of reg by greedy nearest insertion
// and returns the finished Set, chain i serving driver pair i.
//
// pins must contain ordinary pins only; their order defines the tie-break
// ordinal. An empty pins slice yields the 16 two-point driver chains.
//
// Errors: ErrNilRegistry, ErrNotOrdinary.
//
// Complexity: see package documentation.
func Build(reg *driver.Registry, pins []geometry.Point, opts ...Option) (chain.Set, error) {
	// 1) Resolve options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.Metric = cfg.Metric.OrDefault()

	// 2) Validate inputs.
	if reg == nil {
		return nil, ErrNilRegistry
	}
	for i, p := range pins {
		if p.Role != geometry.Ordinary {
			return nil, fmt.Errorf("%w: #%d %s", ErrNotOrdinary, i, p.Name)
		}
	}

	// 3) Seed the 16 driver chains, then insert until no pin remains.
	r := newRunner(reg, pins, cfg)
	r.init()
	r.process()

	return r.chains(), nil
}

// runner holds the mutable state of one Build call.
//
// Node ids: driver index 0–31 for drivers, driver.Count+k for pin ordinal k.
// Every chain is a singly linked list over node ids; the edge leaving node u
// is identified by its sequence number seq[u].
type runner struct {
	metric geometry.Metric
	hook   func(Insertion)

	nodes   []geometry.Point // node id → point
	next    []int            // node id → successor node, none at the chain end
	seq     []int            // node id → sequence of the edge u→next[u]
	chainOf []int            // node id → chain index

	pins    int         // number of pins to insert
	best    []candidate // pin ordinal → current best candidate
	version []int       // pin ordinal → version of best; older heap entries are stale
	placed  []bool      // pin ordinal → already inserted
	pq      candidatePQ // lazy min-heap of per-pin best candidates

	nextSeq int     // next edge sequence number to hand out
	total   float64 // running total length of all chains
	step    int     // accepted insertions so far
}

func newRunner(reg *driver.Registry, pins []geometry.Point, cfg Options) *runner {
	n := driver.Count + len(pins)
	r := &runner{
		metric:  cfg.Metric,
		hook:    cfg.OnInsert,
		nodes:   make([]geometry.Point, n),
		next:    make([]int, n),
		seq:     make([]int, n),
		chainOf: make([]int, n),
		pins:    len(pins),
		best:    make([]candidate, len(pins)),
		version: make([]int, len(pins)),
		placed:  make([]bool, len(pins)),
		pq:      make(candidatePQ, 0, len(pins)),
	}

	copy(r.nodes, reg.Drivers())
	copy(r.nodes[driver.Count:], pins)
	for i := range r.next {
		r.next[i] = none
		r.seq[i] = none
	}

	return r
}

// init links input i → output Pairing[i] and computes every pin's first
// best candidate against the 16 initial edges.
func (r *runner) init() {
	var (
		i   int
		out int
	)
	for i = 0; i < driver.Pairs; i++ {
		out = driver.Pairing[i]
		r.next[i] = out
		r.seq[i] = i
		r.chainOf[i] = i
		r.chainOf[out] = i
		r.total += r.metric(r.nodes[i], r.nodes[out])
	}
	r.nextSeq = driver.Pairs

	heap.Init(&r.pq)
	for i = 0; i < r.pins; i++ {
		r.best[i] = r.scan(i)
		heap.Push(&r.pq, r.best[i])
	}
}

// process pops the globally cheapest valid candidate and applies it until
// every pin is placed.
func (r *runner) process() {
	var c candidate
	for r.step < r.pins {
		c = heap.Pop(&r.pq).(candidate)

		// Skip stale entries: pin already placed or best superseded.
		if r.placed[c.pin] || c.version != r.version[c.pin] {
			continue
		}

		r.insert(c)
	}
}

// insert splices pin c.pin into edge c.from→next[c.from] and refreshes the
// best candidate of every remaining pin.
func (r *runner) insert(c candidate) {
	var (
		u      = c.from
		v      = r.next[u]
		p      = driver.Count + c.pin
		oldSeq = r.seq[u]
	)

	// Replace u→v with u→p→v.
	r.next[u] = p
	r.seq[u] = r.nextSeq
	r.next[p] = v
	r.seq[p] = r.nextSeq + 1
	r.chainOf[p] = r.chainOf[u]
	r.nextSeq += 2

	r.placed[c.pin] = true
	r.total += c.cost
	if r.hook != nil {
		r.hook(Insertion{
			Step:  r.step,
			Point: r.nodes[p],
			Chain: r.chainOf[p],
			After: r.nodes[u],
			Cost:  c.cost,
			Total: chain.Round(r.total),
		})
	}
	r.step++

	// Refresh candidates. Only u→p and p→v are new; only u→v disappeared.
	var (
		k    int
		b    candidate
		cand candidate
		ok   bool
	)
	for k = 0; k < r.pins; k++ {
		if r.placed[k] {
			continue
		}
		b = r.best[k]
		ok = false
		if b.seq == oldSeq {
			// Best edge consumed: full rescan over the live edges.
			b = r.scan(k)
			ok = true
		} else {
			if cand = r.candidate(k, u); cand.less(b) {
				b, ok = cand, true
			}
			if cand = r.candidate(k, p); cand.less(b) {
				b, ok = cand, true
			}
		}
		if !ok {
			continue
		}
		r.version[k]++
		b.version = r.version[k]
		r.best[k] = b
		heap.Push(&r.pq, b)
	}
}

// scan returns the best candidate edge for pin k over all live edges.
//
// Complexity: O(E) where E is the current number of edges.
func (r *runner) scan(k int) candidate {
	var (
		i     int
		u     int
		b     candidate
		cand  candidate
		first = true
	)
	for i = 0; i < driver.Pairs; i++ {
		for u = i; r.next[u] != none; u = r.next[u] {
			cand = r.candidate(k, u)
			if first || cand.less(b) {
				b = cand
				first = false
			}
		}
	}
	b.version = r.version[k]

	return b
}

// candidate evaluates inserting pin k into the edge leaving node u.
func (r *runner) candidate(k, u int) candidate {
	var (
		a = r.nodes[u]
		b = r.nodes[r.next[u]]
		p = r.nodes[driver.Count+k]
	)

	return candidate{
		pin:     k,
		cost:    r.metric(a, p) + r.metric(p, b) - r.metric(a, b),
		chain:   r.chainOf[u],
		seq:     r.seq[u],
		from:    u,
		version: r.version[k],
	}
}

// chains walks every linked list into a chain.Set.
func (r *runner) chains() chain.Set {
	set := make(chain.Set, driver.Pairs)
	for i := 0; i < driver.Pairs; i++ {
		pts := make([]geometry.Point, 0, 2)
		for u := i; u != none; u = r.next[u] {
			pts = append(pts, r.nodes[u])
		}
		set[i] = chain.Chain{Pair: i, Points: pts}
	}

	return set
}
