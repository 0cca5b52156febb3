package app

import (
	"regexp"
	"strings"
)

// Batch convocation inserts produce long multi-row statements; spans carry
// a compacted copy cut at this length.
const tracedQueryLimit = 512

var sqlWhitespace = regexp.MustCompile(`\s+`)

func formatDBQueryForTrace(query string) string {
	return compactQuery(query, tracedQueryLimit)
}

func compactQuery(query string, limit int) string {
	query = strings.TrimSpace(query)
	if query == "" {
		return query
	}

	compact := sqlWhitespace.ReplaceAllString(query, " ")
	if limit <= 0 || len(compact) <= limit {
		return compact
	}

	return compact[:limit] + "..."
}
