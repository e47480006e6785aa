// Package lexer tokenizes TREC-style SGML documents for indexing.
//
// ANALYSIS PIPELINE:
// -------------------
// Unlike a general-purpose text analyzer, this lexer recognizes two kinds of
// tokens and nothing else:
//
//  1. The literal tags <DOC> and <DOCNO>, which the indexer's document state
//     machine uses to find document boundaries and primary keys.
//  2. Maximal runs of ASCII alphanumerics that may contain internal hyphens,
//     matching the grammar [A-Za-z0-9][A-Za-z0-9-]*.
//
// Everything else - whitespace, punctuation, any other SGML markup - is
// skipped. There is no Unicode handling, no stopword removal, and no
// stemming: this lexer is deliberately much dumber than a general analyzer,
// because the documents it reads are a fixed, known subset of SGML. The
// searcher does not use this lexer: it splits query lines on whitespace and
// does not lowercase them, then compares the resulting terms byte-for-byte
// against the indexed (lowercased) terms.
//
// Example:
//
//	<DOC>
//	<DOCNO> WSJ870324-0001 </DOCNO>
//	The Quick Brown Fox!
//	</DOC>
//
// produces the token stream:
//
//	<DOC> <DOCNO> WSJ870324-0001 DOCNO The Quick Brown Fox DOC
//
// Note that the names inside the closing tags (DOCNO, DOC) surface as
// ordinary tokens, as would the name of any other tag such as <TEXT> - this
// lexer never special-cases anything beyond the literal <DOC> and <DOCNO>
// openers.
package lexer

import "bufio"

// Kind distinguishes the two token classes the lexer produces.
type Kind int

const (
	// Word is a maximal alphanumeric-with-hyphens run.
	Word Kind = iota
	// TagDoc is the literal <DOC> token.
	TagDoc
	// TagDocno is the literal <DOCNO> token.
	TagDocno
)

// Token is one lexical unit produced by Scan.
type Token struct {
	Kind Kind
	Text string
}

const (
	tagDocText   = "<DOC>"
	tagDocnoText = "<DOCNO>"
)

// Scan reads r line by line and calls emit for every token found, in order.
// It stops at the first read error or at end of input.
func Scan(r *bufio.Scanner, emit func(Token)) error {
	for r.Scan() {
		scanLine(r.Text(), emit)
	}
	return r.Err()
}

// scanLine extracts tokens from a single line of input.
func scanLine(line string, emit func(Token)) {
	i := 0
	n := len(line)
	for i < n {
		switch {
		case startsWith(line, i, tagDocnoText):
			emit(Token{Kind: TagDocno, Text: tagDocnoText})
			i += len(tagDocnoText)
		case startsWith(line, i, tagDocText):
			emit(Token{Kind: TagDoc, Text: tagDocText})
			i += len(tagDocText)
		case isAlphanumeric(line[i]):
			start := i
			i++
			for i < n && (isAlphanumeric(line[i]) || line[i] == '-') {
				i++
			}
			emit(Token{Kind: Word, Text: line[start:i]})
		default:
			i++
		}
	}
}

func startsWith(s string, pos int, prefix string) bool {
	if pos+len(prefix) > len(s) {
		return false
	}
	return s[pos:pos+len(prefix)] == prefix
}

func isAlphanumeric(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}
