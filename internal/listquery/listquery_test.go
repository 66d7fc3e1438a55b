package listquery

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

type person struct {
	name    string
	email   *string
	created time.Time
}

func personSpec() Spec[person] {
	return Spec[person]{
		Fields: []Field[person]{
			func(p person) (string, bool) { return p.name, true },
			func(p person) (string, bool) {
				if p.email == nil {
					return "", false
				}
				return *p.email, true
			},
		},
		Timestamp:   func(p person) time.Time { return p.created },
		DisplayName: func(p person) string { return p.name },
	}
}

func strPtr(s string) *string { return &s }

func testPipeline() *Pipeline[person] {
	return NewPipeline(personSpec(), language.English)
}

func TestApply_EmptyQueryKeepsEverything(t *testing.T) {
	items := []person{
		{name: "Anna"}, {name: "Boris"}, {name: "Clara"},
	}

	out := testPipeline().Apply(items, "", SortPopularity)

	require.Len(t, out, len(items))
	assert.Equal(t, items, out, "empty query with popularity key is the identity")
}

func TestApply_SubstringMatchIsCaseInsensitive(t *testing.T) {
	items := []person{
		{name: "Anna", created: time.Unix(3, 0)},
		{name: "Boris", created: time.Unix(2, 0)},
		{name: "Anton", created: time.Unix(1, 0)},
	}

	out := testPipeline().Apply(items, "ann", SortAZ)

	require.Len(t, out, 1)
	assert.Equal(t, "Anna", out[0].name)

	out = testPipeline().Apply(items, "AN", SortAZ)
	require.Len(t, out, 2)
	assert.Equal(t, "Anna", out[0].name)
	assert.Equal(t, "Anton", out[1].name)
}

func TestApply_AbsentFieldsNeverMatch(t *testing.T) {
	items := []person{
		{name: "Anna", email: strPtr("anna@example.com")},
		{name: "Boris", email: nil},
	}

	out := testPipeline().Apply(items, "example.com", SortAZ)

	require.Len(t, out, 1)
	assert.Equal(t, "Anna", out[0].name)
}

func TestApply_DateSortIsDescendingAndStable(t *testing.T) {
	sameInstant := time.Unix(100, 0)
	items := []person{
		{name: "first-in", created: sameInstant},
		{name: "newest", created: time.Unix(200, 0)},
		{name: "second-in", created: sameInstant},
		{name: "oldest", created: time.Unix(50, 0)},
	}

	out := testPipeline().Apply(items, "", SortDate)

	require.Len(t, out, 4)
	assert.Equal(t, "newest", out[0].name)
	assert.Equal(t, "first-in", out[1].name, "ties keep insertion order")
	assert.Equal(t, "second-in", out[2].name)
	assert.Equal(t, "oldest", out[3].name)
}

func TestApply_AlphabeticSortBothDirections(t *testing.T) {
	items := []person{
		{name: "Clara"}, {name: "Anna"}, {name: "Boris"},
	}

	out := testPipeline().Apply(items, "", SortAZ)
	assert.Equal(t, []string{"Anna", "Boris", "Clara"}, names(out))

	out = testPipeline().Apply(items, "", SortZA)
	assert.Equal(t, []string{"Clara", "Boris", "Anna"}, names(out))
}

func TestApply_CollationIsLocaleAware(t *testing.T) {
	// Under Russian collation, Ё sorts between Е and Ж; a raw code-point
	// comparison would put it before А instead (U+0401 < U+0410).
	p := NewPipeline(personSpec(), language.Russian)
	items := []person{
		{name: "Яков"}, {name: "Ёлкина"}, {name: "Антонова"},
	}

	out := p.Apply(items, "", SortAZ)

	assert.Equal(t, []string{"Антонова", "Ёлкина", "Яков"}, names(out))
}

func TestApply_Idempotent(t *testing.T) {
	items := []person{
		{name: "Boris", created: time.Unix(2, 0)},
		{name: "Anna", created: time.Unix(3, 0)},
		{name: "Clara", created: time.Unix(1, 0)},
	}

	for _, key := range []SortKey{SortDate, SortAZ, SortZA} {
		once := testPipeline().Apply(items, "", key)
		twice := testPipeline().Apply(once, "", key)
		assert.Equal(t, once, twice, "sorting an already-sorted sequence by %s must be a no-op", key)
	}
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	items := []person{
		{name: "Clara"}, {name: "Anna"}, {name: "Boris"},
	}
	snapshot := make([]person, len(items))
	copy(snapshot, items)

	_ = testPipeline().Apply(items, "", SortAZ)

	assert.Equal(t, snapshot, items, "input slice must be left untouched")
}

func TestParseSortKey(t *testing.T) {
	key, err := ParseSortKey("a-z")
	require.NoError(t, err)
	assert.Equal(t, SortAZ, key)

	_, err = ParseSortKey("size")
	assert.Error(t, err)
}

func names(items []person) []string {
	out := make([]string, len(items))
	for i, p := range items {
		out[i] = p.name
	}
	return out
}
