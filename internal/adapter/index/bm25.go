package index

import (
	"math"
	"sort"

	"designkb/internal/adapter/analyzer"
	"designkb/internal/domain"
)

const (
	DefaultK1 = 1.5
	DefaultB  = 0.75
)

// Index is an immutable BM25 index over one domain's documents. All state
// is fixed at build time; Score never mutates it, so an Index is safe for
// unlimited concurrent reads.
type Index struct {
	tokenizer *analyzer.Tokenizer
	k1        float64
	b         float64

	n         int
	docLens   []int
	avgDocLen float64
	termFreqs []map[string]int
	docFreqs  map[string]int
	idf       map[string]float64
}

// Build tokenizes every document and computes document frequencies and idf
// values. Rebuilding from the same documents yields identical scores.
func Build(docs []string, tokenizer *analyzer.Tokenizer, k1, b float64) *Index {
	ix := &Index{
		tokenizer: tokenizer,
		k1:        k1,
		b:         b,
		n:         len(docs),
		docFreqs:  make(map[string]int),
		idf:       make(map[string]float64),
	}
	if ix.n == 0 {
		return ix
	}

	ix.docLens = make([]int, ix.n)
	ix.termFreqs = make([]map[string]int, ix.n)

	totalLen := 0
	for i, doc := range docs {
		tokens := tokenizer.Tokenize(doc)
		ix.docLens[i] = len(tokens)
		totalLen += len(tokens)

		tf := make(map[string]int, len(tokens))
		for _, term := range tokens {
			tf[term]++
		}
		ix.termFreqs[i] = tf

		for term := range tf {
			ix.docFreqs[term]++
		}
	}
	ix.avgDocLen = float64(totalLen) / float64(ix.n)

	// The +1 inside the log keeps idf positive even for terms in more
	// than half the corpus (the floor-less BM25 variant would go
	// negative there).
	for term, df := range ix.docFreqs {
		n := float64(df)
		N := float64(ix.n)
		ix.idf[term] = math.Log((N-n+0.5)/(n+0.5) + 1)
	}

	return ix
}

// Score ranks every indexed document against the query. It returns one
// result per document, sorted descending by score; ties keep the original
// record order. Query terms absent from the vocabulary contribute nothing.
func (ix *Index) Score(query string) []domain.ScoredResult {
	if ix.n == 0 {
		return nil
	}

	queryTokens := ix.tokenizer.Tokenize(query)

	results := make([]domain.ScoredResult, ix.n)
	for i := 0; i < ix.n; i++ {
		score := 0.0
		dl := float64(ix.docLens[i])
		tf := ix.termFreqs[i]

		for _, term := range queryTokens {
			idf, known := ix.idf[term]
			if !known {
				continue
			}
			f := float64(tf[term])
			score += idf * (f * (ix.k1 + 1)) / (f + ix.k1*(1-ix.b+ix.b*dl/ix.avgDocLen))
		}

		results[i] = domain.ScoredResult{Index: i, Score: score}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	return results
}

// Len returns the number of indexed documents.
func (ix *Index) Len() int {
	return ix.n
}

// IDF returns the inverse document frequency of a vocabulary term.
func (ix *Index) IDF(term string) (float64, bool) {
	v, ok := ix.idf[term]
	return v, ok
}

// DocFreq returns how many documents contain the term.
func (ix *Index) DocFreq(term string) int {
	return ix.docFreqs[term]
}
