// ═══════════════════════════════════════════════════════════════════════════════
// BM25 SCORING
// ═══════════════════════════════════════════════════════════════════════════════
// For each query term present in the vocabulary, every document in that
// term's postings list receives a partial score:
//
//	idf * (tf * (k1+1)) / (tf + k1*(1 - b + b*docLen/avgLen))
//
// where idf = ln(N/n), N is the corpus size and n is the term's document
// frequency. There is no +1 or +0.5 smoothing in this formula - it is zero
// for a term that occurs in every document, so such a term adds nothing to
// any score. Scores for all query terms accumulate into
// one array indexed by docid, then that array is sorted to produce the
// ranked result list.
// ═══════════════════════════════════════════════════════════════════════════════
package query

import (
	"math"
	"sort"
	"strings"
)

// Params holds the tunable BM25 constants. Unlike a textbook implementation,
// this engine does not default to K1=1.2-2.0/B=0.75: see config.DefaultK1
// and config.DefaultB for the values this corpus is tuned against.
type Params struct {
	K1 float64
	B  float64
}

// Result is one ranked hit, ready to be formatted as a TREC-eval line.
type Result struct {
	DocID int32
	Score float64
}

// MaxResults is the maximum number of result lines emitted per query.
const MaxResults = 1000

// Query parses one query line and returns its identifier and ranked
// results against idx, using the given BM25 parameters.
//
// Query terms are matched against the vocabulary case-sensitively - unlike
// the indexer, which lowercases every term it indexes. A query for "Fox"
// will not match a document containing "fox". This asymmetry is a known
// property of this engine, not an oversight; see the searcher's --help
// text.
func Query(idx *Index, line string, params Params) (queryID string, results []Result) {
	fields := strings.Fields(line)
	queryID = "0"
	if len(fields) > 0 && isAllDigits(fields[0]) {
		queryID = fields[0]
		fields = fields[1:]
	}
	if len(fields) == 0 {
		return queryID, nil
	}

	n := idx.N()
	accumulators := make([]float64, n)
	touched := make([]bool, n)

	for _, term := range fields {
		postings, ok := idx.Postings(term)
		if !ok {
			continue
		}
		df := len(postings)
		if df == 0 {
			continue
		}
		idf := math.Log(float64(n) / float64(df))
		for _, p := range postings {
			docLen := float64(idx.Lengths[p.DocID])
			tf := float64(p.TF)
			denom := tf + params.K1*(1-params.B+params.B*docLen/idx.AverageLength)
			score := idf * (tf * (params.K1 + 1)) / denom
			accumulators[p.DocID] += score
			touched[p.DocID] = true
		}
	}

	for docID, hit := range touched {
		if hit {
			results = append(results, Result{DocID: int32(docID), Score: accumulators[docID]})
		}
	}

	// Higher score first; equal scores are ordered by descending docid, so
	// the order of ties is the same on every run.
	sort.Slice(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].DocID > results[j].DocID
	})

	cutoff := len(results)
	for i, r := range results {
		if r.Score == 0 {
			cutoff = i
			break
		}
	}
	if cutoff > MaxResults {
		cutoff = MaxResults
	}
	return queryID, results[:cutoff]
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
