// Copyright (c) 2026 mta. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package textnorm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/mta/pkg/textnorm"
)

func TestTerm(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"full_width_latin", "ＡＢＣ", "ABC"},
		{"half_width_katakana", "ｶﾀｶﾅ", "カタカナ"},
		{"kanji_unchanged", "猫", "猫"},
		{"ideographic_space", "　", ""},
		{"trim", " 犬\n", "犬"},
		{"control_removed", "猫\x00", "猫"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, textnorm.Term(tt.in))
		})
	}
}
