package domain

// FieldSet is a set of search fields. The zero value is the empty set.
type FieldSet map[SearchField]struct{}

// NewFieldSet builds a set from the given fields, ignoring duplicates.
func NewFieldSet(fields ...SearchField) FieldSet {
	s := make(FieldSet, len(fields))
	for _, f := range fields {
		s[f] = struct{}{}
	}
	return s
}

// Has reports whether f is in the set.
func (s FieldSet) Has(f SearchField) bool {
	_, ok := s[f]
	return ok
}

// IsEmpty reports whether no field is selected.
func (s FieldSet) IsEmpty() bool {
	return len(s) == 0
}

// Effective returns the selected fields in canonical order. An empty set
// yields all four fields: deselecting every checkbox still searches
// everything rather than nothing.
func (s FieldSet) Effective() []SearchField {
	if s.IsEmpty() {
		return AllSearchFields
	}
	out := make([]SearchField, 0, len(s))
	for _, f := range AllSearchFields {
		if s.Has(f) {
			out = append(out, f)
		}
	}
	return out
}

// EntryQuery is a search request over entries. Nil TagID and empty
// Keyword mean "no constraint".
type EntryQuery struct {
	TagID   *int64
	Keyword string
	Mode    MatchMode
	Fields  FieldSet
}

// IsMatchAll reports whether the query has neither a tag nor a keyword.
func (q EntryQuery) IsMatchAll() bool {
	return q.TagID == nil && q.Keyword == ""
}

// AccountQuery filters users for administration.
type AccountQuery struct {
	Keyword string
	Mode    MatchMode
	Role    *UserRole
}

// TagQuery filters tags for administration.
type TagQuery struct {
	Keyword string
	Mode    MatchMode
}
