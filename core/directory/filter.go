package directory

import "strings"

// Entity is a record that can be filtered.
type Entity interface {
	// Attribute returns the record's value for the named dimension.
	Attribute(dimension string) string
	// SearchFields returns the texts a free-text query is matched against.
	SearchFields() []string
}

// Result is the outcome of filtering a record set.
// The zero Result (nil Records) means nothing was filtered yet.
type Result[E Entity] struct {
	Records []E `json:"results"`
	Count   int `json:"count"`
	Total   int `json:"total"`
}

// Filtered reports whether r holds the outcome of a filter pass.
func (r Result[E]) Filtered() bool { return r.Records != nil }

// Empty reports whether a filter pass matched nothing.
func (r Result[E]) Empty() bool { return r.Records != nil && len(r.Records) == 0 }

// Match reports whether e satisfies every active criterion of c.
func Match(e Entity, c Criteria) bool {
	for dim, val := range c.Values {
		if IsAll(val) {
			continue
		}
		if e.Attribute(dim) != val {
			return false
		}
	}
	return matchQuery(e, strings.ToLower(c.Query))
}

func matchQuery(e Entity, lowerQuery string) bool {
	if lowerQuery == "" {
		return true
	}
	for _, field := range e.SearchFields() {
		if strings.Contains(strings.ToLower(field), lowerQuery) {
			return true
		}
	}
	return false
}

// Apply returns the records matching c, in their original order.
// records is never modified; the returned Records slice is never nil.
func Apply[E Entity](records []E, c Criteria) Result[E] {
	matched := make([]E, 0, len(records))
	for _, rec := range records {
		if Match(rec, c) {
			matched = append(matched, rec)
		}
	}
	return Result[E]{Records: matched, Count: len(matched), Total: len(records)}
}
