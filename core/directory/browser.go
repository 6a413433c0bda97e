package directory

import "github.com/trezcool/portal/core"

// Browser holds the state of one directory page: the full record set, the
// current criteria and the last result. It recomputes the result on every change.
type Browser[E Entity] struct {
	schema   *Schema
	records  []E
	criteria Criteria
	result   Result[E]
}

// NewBrowser returns a Browser over a copy of records. Nothing is filtered until Refresh,
// SetQuery or SetCriterion is called.
func NewBrowser[E Entity](schema *Schema, records []E) *Browser[E] {
	recs := make([]E, len(records))
	copy(recs, records)
	return &Browser[E]{
		schema:   schema,
		records:  recs,
		criteria: NewCriteria(""),
	}
}

// SetQuery replaces the free-text query and refreshes the result.
func (b *Browser[E]) SetQuery(query string) Result[E] {
	b.criteria.Query = core.CleanString(query)
	return b.Refresh()
}

// SetCriterion selects value for dimension and refreshes the result.
// Unknown dimensions and non-enumerated values are rejected and leave the state untouched.
func (b *Browser[E]) SetCriterion(dimension, value string) (Result[E], error) {
	next := b.criteria.With(dimension, value)
	if err := b.schema.Validate(next); err != nil {
		return b.result, err
	}
	b.criteria = next
	return b.Refresh(), nil
}

// Reset clears every criterion and the query.
func (b *Browser[E]) Reset() Result[E] {
	b.criteria = NewCriteria("")
	return b.Refresh()
}

// Refresh recomputes the result for the current criteria.
func (b *Browser[E]) Refresh() Result[E] {
	b.result = Apply(b.records, b.criteria)
	return b.result
}

// Result returns the last computed result (zero if never filtered).
func (b *Browser[E]) Result() Result[E] { return b.result }

// Criteria returns the current criteria.
func (b *Browser[E]) Criteria() Criteria { return b.criteria }

// Total returns the size of the full record set.
func (b *Browser[E]) Total() int { return len(b.records) }
