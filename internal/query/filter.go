// Package query implements the filter builder and pagination planner: it turns
// raw request parameters into structured, backend-agnostic predicates and a
// bounded result window. Predicates are field/operator/value triples; the
// repository layer translates them into parameterized statements, so no SQL
// text is ever built from user input.
package query

import (
	"errors"
	"strings"
)

// ErrMissingFilterCriteria is returned when a capability requires at least one
// filter and the request supplies none. Handlers map it to a 400.
var ErrMissingFilterCriteria = errors.New("se requiere al menos un criterio de busqueda")

// MaxSearchWords caps how many search words are turned into predicates.
// Extra words are silently dropped; each word adds a LIKE scan so the cap
// bounds query cost.
const MaxSearchWords = 5

// Op identifies a predicate operator.
type Op string

const (
	// OpContainsFold matches when the field contains the value,
	// case-insensitively.
	OpContainsFold Op = "contains_fold"
	// OpEquals matches on exact equality.
	OpEquals Op = "equals"
	// OpStockPositive matches articles with positive stock in the
	// configured warehouse. Value is unused.
	OpStockPositive Op = "stock_positive"
	// OpFitmentAny matches articles linked to at least one of the given
	// application ids. Value is []int.
	OpFitmentAny Op = "fitment_any"
)

// Predicate field names. These are semantic names, not column names;
// the repository owns the mapping to the schema.
const (
	FieldDescripcion = "descripcion"
	FieldRubro       = "rubro"
	FieldStock       = "stock"
	FieldAplicacion  = "aplicacion"
	FieldPath        = "path"
)

// Predicate is one filter condition. All predicates of a Criteria are AND-ed.
type Predicate struct {
	Field string
	Op    Op
	Value interface{}
}

// Criteria is the normalized filter description for one request.
type Criteria struct {
	Predicates []Predicate
	// WordCount is how many search words were retained (after the cap);
	// surfaced in the response meta.
	WordCount int
}

// SplitWords splits free-text search into whitespace-delimited words,
// discards empties and keeps at most MaxSearchWords.
func SplitWords(s string) []string {
	fields := strings.Fields(s)
	if len(fields) > MaxSearchWords {
		fields = fields[:MaxSearchWords]
	}
	return fields
}

// ParaArticulos builds the criteria for the article listing capability.
// At least one of search text, application ids or rubro id must be present.
func ParaArticulos(search string, soloConStock bool, rubroID int, aplicacionIDs []int) (Criteria, error) {
	words := SplitWords(search)
	if len(words) == 0 && len(aplicacionIDs) == 0 && rubroID == 0 {
		return Criteria{}, ErrMissingFilterCriteria
	}

	c := Criteria{WordCount: len(words)}
	for _, w := range words {
		c.Predicates = append(c.Predicates, Predicate{Field: FieldDescripcion, Op: OpContainsFold, Value: w})
	}
	if rubroID != 0 {
		c.Predicates = append(c.Predicates, Predicate{Field: FieldRubro, Op: OpEquals, Value: rubroID})
	}
	if len(aplicacionIDs) > 0 {
		c.Predicates = append(c.Predicates, Predicate{Field: FieldAplicacion, Op: OpFitmentAny, Value: aplicacionIDs})
	}
	if soloConStock {
		c.Predicates = append(c.Predicates, Predicate{Field: FieldStock, Op: OpStockPositive})
	}
	return c, nil
}

// ParaAplicaciones builds the criteria for the application search capability.
// Search text is mandatory here: an unfiltered scan over the fitment tree is
// never allowed.
func ParaAplicaciones(search string) (Criteria, error) {
	words := SplitWords(search)
	if len(words) == 0 {
		return Criteria{}, ErrMissingFilterCriteria
	}
	c := Criteria{WordCount: len(words)}
	for _, w := range words {
		c.Predicates = append(c.Predicates, Predicate{Field: FieldPath, Op: OpContainsFold, Value: w})
	}
	return c, nil
}

// ParaRubros builds the (optional) criteria for the category listing.
// No filter at all is valid: the whole flattened tree is returned.
func ParaRubros(search string) Criteria {
	words := SplitWords(search)
	c := Criteria{WordCount: len(words)}
	for _, w := range words {
		c.Predicates = append(c.Predicates, Predicate{Field: FieldPath, Op: OpContainsFold, Value: w})
	}
	return c
}
