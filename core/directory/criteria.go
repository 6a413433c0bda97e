// Package directory filters ordered record sets by categorical criteria and a free-text query.
package directory

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pkg/errors"

	"github.com/trezcool/portal/core"
)

// All is the sentinel value meaning "no constraint" on a dimension.
const All = "all"

var errInvalidCriteria = errors.New("invalid criteria")

// IsAll reports whether value leaves its dimension unconstrained.
func IsAll(value string) bool {
	value = strings.TrimSpace(value)
	return value == "" || strings.EqualFold(value, All)
}

// Dimension is a named categorical filter and its enumerated values.
type Dimension struct {
	Name   string   `json:"name"`
	Values []string `json:"values"`
}

// Allows reports whether value is the sentinel or one of the dimension's values.
func (d Dimension) Allows(value string) bool {
	if IsAll(value) {
		return true
	}
	for _, v := range d.Values {
		if v == value {
			return true
		}
	}
	return false
}

// Schema is the set of dimensions a record type can be filtered by.
type Schema struct {
	dims  []Dimension
	index map[string]int
}

// NewSchema returns a schema of dims, kept in the given order.
func NewSchema(dims ...Dimension) *Schema {
	s := &Schema{
		dims:  make([]Dimension, 0, len(dims)),
		index: make(map[string]int, len(dims)),
	}
	for _, d := range dims {
		s.index[d.Name] = len(s.dims)
		s.dims = append(s.dims, d)
	}
	return s
}

// Dimensions returns the schema's dimensions in declaration order.
func (s *Schema) Dimensions() []Dimension {
	dims := make([]Dimension, len(s.dims))
	copy(dims, s.dims)
	return dims
}

// Dimension returns the named dimension.
func (s *Schema) Dimension(name string) (Dimension, bool) {
	i, ok := s.index[name]
	if !ok {
		return Dimension{}, false
	}
	return s.dims[i], true
}

// Validate rejects unknown dimensions and values outside a dimension's enumeration.
func (s *Schema) Validate(c Criteria) error {
	names := make([]string, 0, len(c.Values))
	for name := range c.Values {
		names = append(names, name)
	}
	sort.Strings(names)

	var flds []core.FieldError
	for _, name := range names {
		dim, ok := s.Dimension(name)
		if !ok {
			flds = append(flds, core.FieldError{Field: name, Error: "unknown filter"})
			continue
		}
		if val := c.Values[name]; !dim.Allows(val) {
			flds = append(flds, core.FieldError{
				Field: name,
				Error: fmt.Sprintf("%q is not one of %s", val, strings.Join(dim.Values, ", ")),
			})
		}
	}
	if flds != nil {
		return core.NewValidationError(errInvalidCriteria, flds...)
	}
	return nil
}

// Criteria is the free-text query plus the selected value of each dimension.
// Dimensions missing from Values are unconstrained.
type Criteria struct {
	Query  string
	Values map[string]string
}

// NewCriteria returns criteria with query and every dimension unconstrained.
func NewCriteria(query string) Criteria {
	return Criteria{Query: query, Values: make(map[string]string)}
}

// With returns a copy of c with dimension set to value.
func (c Criteria) With(dimension, value string) Criteria {
	values := make(map[string]string, len(c.Values)+1)
	for k, v := range c.Values {
		values[k] = v
	}
	values[dimension] = value
	return Criteria{Query: c.Query, Values: values}
}

// Value returns the selected value of dimension, All when unset.
func (c Criteria) Value(dimension string) string {
	if v, ok := c.Values[dimension]; ok && !IsAll(v) {
		return v
	}
	return All
}

// IsEmpty reports whether c constrains nothing.
func (c Criteria) IsEmpty() bool {
	if c.Query != "" {
		return false
	}
	for _, v := range c.Values {
		if !IsAll(v) {
			return false
		}
	}
	return true
}
