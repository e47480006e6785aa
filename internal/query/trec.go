package query

import "fmt"

// RunTag is the fixed tag TREC-eval tooling expects in the last column of
// every result line.
const RunTag = "JASSjr"

// FormatLine renders one ranked result as a TREC-eval result line:
//
//	{query_id} Q0 {primary_key} {rank} {score:.4f} JASSjr
//
// rank is 1-based.
func FormatLine(idx *Index, queryID string, rank int, r Result) string {
	return fmt.Sprintf("%s Q0 %s %d %.4f %s", queryID, idx.DocIDs[r.DocID], rank, r.Score, RunTag)
}
