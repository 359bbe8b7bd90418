// Copyright (c) 2026 mta. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package analyze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKagomeTokenizer(t *testing.T) {
	tokenizer, err := NewKagomeTokenizer()
	require.NoError(t, err)

	terms := tokenizer.Tokenize("猫が好き。猫。")
	assert.Equal(t, []string{"猫", "が", "好き", "猫"}, terms)
}

func TestKagomeTokenizer_Empty(t *testing.T) {
	tokenizer, err := NewKagomeTokenizer()
	require.NoError(t, err)

	assert.Empty(t, tokenizer.Tokenize("  。、"))
}
