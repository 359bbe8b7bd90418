// Copyright (c) 2026 mta. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package analyze

import (
	"fmt"

	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome/v2/tokenizer"

	"github.com/taibuivan/mta/pkg/textnorm"
)

// Tokenizer splits recognized text into countable terms.
type Tokenizer interface {
	Tokenize(text string) []string
}

// posSymbol is the IPA part of speech for punctuation and symbols.
const posSymbol = "記号"

// KagomeTokenizer segments Japanese text with the IPA dictionary and
// returns NFKC-normalized surface forms, without symbols or whitespace.
type KagomeTokenizer struct {
	t *tokenizer.Tokenizer
}

func NewKagomeTokenizer() (*KagomeTokenizer, error) {
	t, err := tokenizer.New(ipa.Dict(), tokenizer.OmitBosEos())
	if err != nil {
		return nil, fmt.Errorf("analyze: failed to load tokenizer: %w", err)
	}
	return &KagomeTokenizer{t: t}, nil
}

func (k *KagomeTokenizer) Tokenize(text string) []string {
	tokens := k.t.Tokenize(textnorm.Text(text))

	terms := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if pos := token.POS(); len(pos) > 0 && pos[0] == posSymbol {
			continue
		}
		if term := textnorm.Term(token.Surface); term != "" {
			terms = append(terms, term)
		}
	}
	return terms
}

// Count tallies how often each token occurs.
func Count(tokens []string) map[string]int64 {
	freq := make(map[string]int64, len(tokens))
	for _, token := range tokens {
		freq[token]++
	}
	return freq
}
