package lexer

import (
	"bufio"
	"strings"
	"testing"
)

func scanAll(t *testing.T, input string) []Token {
	t.Helper()
	var toks []Token
	s := bufio.NewScanner(strings.NewReader(input))
	if err := Scan(s, func(tok Token) { toks = append(toks, tok) }); err != nil {
		t.Fatalf("Scan: %v", err)
	}
	return toks
}

func TestScanRecognizesDocTags(t *testing.T) {
	toks := scanAll(t, "<DOC>\n<DOCNO> WSJ870324-0001 </DOCNO>\n</DOC>")
	want := []Token{
		{Kind: TagDoc, Text: "<DOC>"},
		{Kind: TagDocno, Text: "<DOCNO>"},
		{Kind: Word, Text: "WSJ870324-0001"},
		{Kind: Word, Text: "DOCNO"},
		{Kind: Word, Text: "DOC"},
	}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens %+v, want %d %+v", len(toks), toks, len(want), want)
	}
	for i := range want {
		if toks[i] != want[i] {
			t.Errorf("token[%d] = %+v, want %+v", i, toks[i], want[i])
		}
	}
}

func TestScanHyphenatedRun(t *testing.T) {
	toks := scanAll(t, "WSJ870324-0001")
	if len(toks) != 1 || toks[0].Text != "WSJ870324-0001" {
		t.Fatalf("got %+v, want single hyphenated token", toks)
	}
}

func TestScanSkipsPunctuationAndOtherTags(t *testing.T) {
	toks := scanAll(t, "The Quick, Brown Fox! <TEXT>ignored</TEXT>")
	var words []string
	for _, tok := range toks {
		if tok.Kind == Word {
			words = append(words, tok.Text)
		}
	}
	want := []string{"The", "Quick", "Brown", "Fox", "TEXT", "ignored", "TEXT"}
	if len(words) != len(want) {
		t.Fatalf("got %v, want %v", words, want)
	}
	for i := range want {
		if words[i] != want[i] {
			t.Errorf("word[%d] = %q, want %q", i, words[i], want[i])
		}
	}
}

func TestScanEmptyInput(t *testing.T) {
	toks := scanAll(t, "")
	if len(toks) != 0 {
		t.Errorf("got %d tokens for empty input, want 0", len(toks))
	}
}

func TestScanLeadingHyphenIsNotATokenStart(t *testing.T) {
	toks := scanAll(t, "-abc")
	if len(toks) != 1 || toks[0].Text != "abc" {
		t.Fatalf("got %+v, want single token \"abc\" (leading hyphen skipped)", toks)
	}
}
