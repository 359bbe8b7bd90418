// Copyright (c) 2026 mta. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package term

// Term is one tokenizer output unit and its lifetime occurrence count across
// the whole corpus. Terms are created on first encounter and never deleted.
type Term struct {
	Text       string `json:"term"`
	TotalCount int64  `json:"total_count"`
}
