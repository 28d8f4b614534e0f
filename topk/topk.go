// Package topk selects the k best-scored candidates.
//
// Order is total and deterministic: higher score first, equal scores broken by
// ascending candidate id, so the result never depends on map iteration order.
// NaN scores rank below every real score.
//
// Both Select and Queue keep at most k (resp. all) entries in an ordered
// B-tree (github.com/tidwall/btree), so a bounded selection over n candidates
// costs O(n log k).
package topk

import (
	"math"

	"github.com/tidwall/btree"
)

// entry is one scored candidate.
type entry struct {
	id    int
	score float64
}

// better orders entries best-first; it is the B-tree "less".
func better(a, b entry) bool {
	if a.score != b.score {
		return a.score > b.score
	}

	return a.id < b.id
}

// normalize maps NaN to -Inf so the ordering stays total.
func normalize(s float64) float64 {
	if math.IsNaN(s) {
		return math.Inf(-1)
	}

	return s
}

func newTree() *btree.BTreeG[entry] {
	return btree.NewBTreeGOptions(better, btree.Options{NoLocks: true})
}

// Select returns up to k candidate ids from scores, best first.
// k <= 0 yields an empty slice; k >= len(scores) yields every candidate.
// scores is not modified.
func Select(scores map[int]float64, k int) []int {
	if k <= 0 || len(scores) == 0 {
		return []int{}
	}
	tr := newTree()
	for id, s := range scores {
		e := entry{id: id, score: normalize(s)}
		if tr.Len() == k {
			// Full: admit e only if it beats the current worst.
			worst, _ := tr.Max()
			if !better(e, worst) {
				continue
			}
			tr.PopMax()
		}
		tr.Set(e)
	}

	return ids(tr)
}

// ids drains tr best-first into a slice.
func ids(tr *btree.BTreeG[entry]) []int {
	out := make([]int, 0, tr.Len())
	tr.Scan(func(e entry) bool {
		out = append(out, e.id)
		return true
	})

	return out
}

// Queue accumulates scored candidates incrementally and answers TopN queries.
// Enqueueing an id that is already present replaces its score.
// A Queue is not safe for concurrent use.
type Queue struct {
	tr     *btree.BTreeG[entry]
	scores map[int]float64
}

// NewQueue returns an empty Queue.
func NewQueue() *Queue {
	return &Queue{tr: newTree(), scores: make(map[int]float64)}
}

// Enqueue inserts or rescores id.
func (q *Queue) Enqueue(id int, score float64) {
	if old, ok := q.scores[id]; ok {
		q.tr.Delete(entry{id: id, score: old})
	}
	score = normalize(score)
	q.scores[id] = score
	q.tr.Set(entry{id: id, score: score})
}

// Len reports the number of distinct candidates queued.
func (q *Queue) Len() int {
	return q.tr.Len()
}

// TopN returns up to n ids, best first, without removing them.
func (q *Queue) TopN(n int) []int {
	if n <= 0 {
		return []int{}
	}
	out := make([]int, 0, min(n, q.tr.Len()))
	q.tr.Scan(func(e entry) bool {
		out = append(out, e.id)
		return len(out) < n
	})

	return out
}
