package entry

import (
	"github.com/Masterminds/squirrel"

	postgres "github.com/heartmarshall/wordassist-backend/internal/adapter/postgres"
	"github.com/heartmarshall/wordassist-backend/internal/domain"
)

// fieldColumns maps searchable fields to entry columns (aliased as e).
var fieldColumns = map[domain.SearchField]string{
	domain.SearchFieldWord:    "e.word",
	domain.SearchFieldDetails: "e.details",
	domain.SearchFieldSummary: "e.summary",
	domain.SearchFieldCode:    "e.code",
}

// Predicate is a composed WHERE condition over entries.
type Predicate struct {
	Where squirrel.Sqlizer
	// MatchAll is set when the query has neither a tag nor a keyword.
	MatchAll bool
}

// BuildPredicate translates a search request into a WHERE condition:
//
//	[tag_id = ?] AND [(f1 op ? OR f2 op ? ...)]
//
// Exact mode compares with "=" (case-sensitive); partial mode uses ILIKE
// with an escaped %keyword% pattern. An empty field set searches all four
// fields. With neither tag nor keyword the condition is (1=1).
func BuildPredicate(q domain.EntryQuery) Predicate {
	cond := squirrel.And{}

	if q.TagID != nil {
		cond = append(cond, squirrel.Eq{"e.tag_id": *q.TagID})
	}

	if q.Keyword != "" {
		fields := q.Fields.Effective()
		anyField := make(squirrel.Or, 0, len(fields))
		for _, f := range fields {
			anyField = append(anyField, keywordCond(fieldColumns[f], q.Keyword, q.Mode))
		}
		cond = append(cond, anyField)
	}

	return Predicate{Where: cond, MatchAll: q.IsMatchAll()}
}

func keywordCond(column, keyword string, mode domain.MatchMode) squirrel.Sqlizer {
	if mode == domain.MatchExact {
		return squirrel.Eq{column: keyword}
	}
	return squirrel.ILike{column: postgres.ContainsPattern(keyword)}
}
