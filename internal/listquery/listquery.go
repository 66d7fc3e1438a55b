// Package listquery implements the shared filter-then-sort pipeline applied
// to every list view: a case-insensitive substring search over an entity's
// declared searchable fields, followed by a stable sort by a named key.
// Field access is declared statically per entity kind through Spec; there is
// no reflection.
package listquery

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortKey names one of the orderings a list view offers.
type SortKey string

const (
	SortDate       SortKey = "date"
	SortPopularity SortKey = "popularity"
	SortAZ         SortKey = "a-z"
	SortZA         SortKey = "z-a"
)

// ValidSortKeys is the canonical set of accepted sort key strings.
var ValidSortKeys = map[string]bool{
	"date": true, "popularity": true, "a-z": true, "z-a": true,
}

// ParseSortKey converts a user-supplied sort key string into a SortKey.
func ParseSortKey(s string) (SortKey, error) {
	if !ValidSortKeys[s] {
		return "", fmt.Errorf("unknown sort key %q (expected date, popularity, a-z or z-a)", s)
	}
	return SortKey(s), nil
}

// Field extracts one searchable string from an entity. ok=false marks the
// field as absent; absent fields never match a query.
type Field[E any] func(E) (value string, ok bool)

// Spec declares how a pipeline reads an entity kind: which fields the
// substring search covers, which timestamp the date sort uses, and which
// name the alphabetic sorts compare.
type Spec[E any] struct {
	Fields      []Field[E]
	Timestamp   func(E) time.Time
	DisplayName func(E) string
}

// Pipeline applies the filter-then-sort policy for one entity kind.
// Alphabetic sorts use locale-aware collation for the language the pipeline
// was built with, so letter ordering follows the locale rather than raw
// code points.
type Pipeline[E any] struct {
	spec     Spec[E]
	collator *collate.Collator
}

// NewPipeline builds a pipeline from a field spec and a collation language.
func NewPipeline[E any](spec Spec[E], tag language.Tag) *Pipeline[E] {
	return &Pipeline[E]{spec: spec, collator: collate.New(tag)}
}

// Apply filters items by the query and orders the survivors by key. The
// input slice is never mutated; a fresh slice is returned. An empty query
// passes every item. Sorts are stable: entities that compare equal keep
// their original relative order, and the reserved "popularity" key leaves
// the input order untouched.
func (p *Pipeline[E]) Apply(items []E, query string, key SortKey) []E {
	out := p.filter(items, query)
	p.order(out, key)
	return out
}

func (p *Pipeline[E]) filter(items []E, query string) []E {
	if query == "" {
		out := make([]E, len(items))
		copy(out, items)
		return out
	}

	folded := strings.ToLower(query)
	out := make([]E, 0, len(items))
	for _, item := range items {
		for _, field := range p.spec.Fields {
			v, ok := field(item)
			if !ok {
				continue
			}
			if strings.Contains(strings.ToLower(v), folded) {
				out = append(out, item)
				break
			}
		}
	}
	return out
}

func (p *Pipeline[E]) order(items []E, key SortKey) {
	switch key {
	case SortDate:
		sort.SliceStable(items, func(i, j int) bool {
			return p.spec.Timestamp(items[i]).After(p.spec.Timestamp(items[j]))
		})
	case SortAZ:
		sort.SliceStable(items, func(i, j int) bool {
			return p.collator.CompareString(p.spec.DisplayName(items[i]), p.spec.DisplayName(items[j])) < 0
		})
	case SortZA:
		sort.SliceStable(items, func(i, j int) bool {
			return p.collator.CompareString(p.spec.DisplayName(items[i]), p.spec.DisplayName(items[j])) > 0
		})
	case SortPopularity:
		// Reserved key with no defined metric; keeps input order.
	}
}
