// Copyright (c) 2026 mta. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// TermTable represents the 'term' table
type TermTable struct {
	Table      string
	Term       string
	TotalCount string
}

// Term is the schema definition for term
var Term = TermTable{
	Table:      "term",
	Term:       "term",
	TotalCount: "totalcount",
}

func (t TermTable) Columns() []string {
	return []string{t.Term, t.TotalCount}
}
