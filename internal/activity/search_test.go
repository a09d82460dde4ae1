package activity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intp(v int) *int       { return &v }
func strp(v string) *string { return &v }

func TestFilterNoPredicates(t *testing.T) {
	f := Filter{Limit: 10, Offset: 20}
	assert.Empty(t, f.conditions())
}

// hour=0 is a real predicate, not an absent one.
func TestFilterHourZeroIsAPredicate(t *testing.T) {
	f := Filter{Hour: intp(0)}

	conds := f.conditions()
	require.Len(t, conds, 1)
	assert.Contains(t, conds[0].expr, "extract(hour from a.start_time)")
	assert.Equal(t, []any{0}, conds[0].args)
}

func TestFilterTimeParts(t *testing.T) {
	f := Filter{Year: intp(2024), Month: intp(1), Day: intp(31), Hour: intp(23)}

	conds := f.conditions()
	require.Len(t, conds, 4)
	assert.Contains(t, conds[0].expr, "year")
	assert.Contains(t, conds[1].expr, "month")
	assert.Contains(t, conds[2].expr, "day")
	assert.Contains(t, conds[3].expr, "hour")
}

func TestFilterSubstringPredicates(t *testing.T) {
	f := Filter{Title: strp("run"), StartLocation: strp("park")}

	conds := f.conditions()
	require.Len(t, conds, 2)
	assert.Equal(t, "a.title ILIKE ?", conds[0].expr)
	assert.Equal(t, []any{"%run%"}, conds[0].args)
	assert.Equal(t, "a.start_location ILIKE ?", conds[1].expr)
}

func TestFilterEmptyStringsAreNotPredicates(t *testing.T) {
	f := Filter{Title: strp(""), PersonalFeeling: strp("")}
	assert.Empty(t, f.conditions())
}

// Detail predicates must hit the lateral latest-detail alias, not the raw
// detail table.
func TestFilterDetailPredicatesTargetLatestRow(t *testing.T) {
	f := Filter{RelatedPeople: strp("alice"), PersonalFeeling: strp("calm")}

	conds := f.conditions()
	require.Len(t, conds, 2)
	assert.Contains(t, conds[0].expr, "ld.related_people")
	assert.Contains(t, conds[1].expr, "ld.personal_feeling")
}
