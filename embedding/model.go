package embedding

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// model holds one vector per token seen in the walks.
type model struct {
	tokens []int       // ascending agent ids
	index  map[int]int // agent id → row
	vecs   [][]float64
}

// train embeds the walk corpus: windowed co-occurrence counts, positive
// pointwise mutual information, then a thin SVD truncated to dims
// components and scaled by √σ.
func train(corpus [][]int, dims, window int) (*model, error) {
	m := &model{index: make(map[int]int)}
	for _, w := range corpus {
		for _, a := range w {
			if _, ok := m.index[a]; !ok {
				m.index[a] = -1
			}
		}
	}
	for a := range m.index {
		m.tokens = append(m.tokens, a)
	}
	sort.Ints(m.tokens)
	for i, a := range m.tokens {
		m.index[a] = i
	}
	v := len(m.tokens)
	if v == 0 {
		return m, nil
	}

	cooc := mat.NewDense(v, v, nil)
	for _, w := range corpus {
		for i, a := range w {
			lo, hi := max(0, i-window), min(len(w)-1, i+window)
			for j := lo; j <= hi; j++ {
				if j == i {
					continue
				}
				r, c := m.index[a], m.index[w[j]]
				cooc.Set(r, c, cooc.At(r, c)+1)
			}
		}
	}

	ppmi := positivePMI(cooc)

	var svd mat.SVD
	if ok := svd.Factorize(ppmi, mat.SVDThin); !ok {
		return nil, ErrFactorize
	}
	var u mat.Dense
	svd.UTo(&u)
	sigma := svd.Values(nil)
	k := min(dims, len(sigma))

	m.vecs = make([][]float64, v)
	for i := 0; i < v; i++ {
		vec := make([]float64, k)
		for d := 0; d < k; d++ {
			vec[d] = u.At(i, d) * math.Sqrt(sigma[d])
		}
		m.vecs[i] = vec
	}

	return m, nil
}

// positivePMI maps counts to max(0, log(c_ij·N / (c_i·c_j))).
func positivePMI(cooc *mat.Dense) *mat.Dense {
	v, _ := cooc.Dims()
	rowSums := make([]float64, v)
	colSums := make([]float64, v)
	for i := 0; i < v; i++ {
		rowSums[i] = floats.Sum(cooc.RawRowView(i))
		for j := 0; j < v; j++ {
			colSums[j] += cooc.At(i, j)
		}
	}
	total := floats.Sum(rowSums)

	out := mat.NewDense(v, v, nil)
	if total == 0 {
		return out
	}
	for i := 0; i < v; i++ {
		for j := 0; j < v; j++ {
			c := cooc.At(i, j)
			if c == 0 {
				continue
			}
			if pmi := math.Log(c * total / (rowSums[i] * colSums[j])); pmi > 0 {
				out.Set(i, j, pmi)
			}
		}
	}

	return out
}

// similarities returns the cosine similarity of every other token to a.
// Tokens with a zero vector score 0.
func (m *model) similarities(a int) map[int]float64 {
	out := make(map[int]float64)
	row, ok := m.index[a]
	if !ok || m.vecs == nil {
		return out
	}
	va := m.vecs[row]
	na := floats.Norm(va, 2)
	for i, tok := range m.tokens {
		if tok == a {
			continue
		}
		nb := floats.Norm(m.vecs[i], 2)
		if na == 0 || nb == 0 {
			out[tok] = 0
			continue
		}
		out[tok] = floats.Dot(va, m.vecs[i]) / (na * nb)
	}

	return out
}
