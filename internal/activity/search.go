package activity

import (
	"context"
)

// Filter is an AND-conjunction of optional search predicates. Pointer
// fields distinguish "not provided" from zero values: hour=0 is a real
// predicate, a nil Hour is no predicate at all.
type Filter struct {
	Year  *int
	Month *int
	Day   *int
	Hour  *int

	Title         *string
	Description   *string
	StartLocation *string
	EndLocation   *string

	// Matched against the latest detail row only.
	RelatedPeople   *string
	PersonalFeeling *string

	Limit  int
	Offset int
}

type condition struct {
	expr string
	args []any
}

func (f Filter) conditions() []condition {
	var conds []condition
	add := func(expr string, args ...any) {
		conds = append(conds, condition{expr: expr, args: args})
	}
	contains := func(column string, v *string) {
		if v != nil && *v != "" {
			add(column+" ILIKE ?", "%"+*v+"%")
		}
	}

	if f.Year != nil {
		add("extract(year from a.start_time) = ?", *f.Year)
	}
	if f.Month != nil {
		add("extract(month from a.start_time) = ?", *f.Month)
	}
	if f.Day != nil {
		add("extract(day from a.start_time) = ?", *f.Day)
	}
	if f.Hour != nil {
		add("extract(hour from a.start_time) = ?", *f.Hour)
	}

	contains("a.title", f.Title)
	contains("a.description", f.Description)
	contains("a.start_location", f.StartLocation)
	contains("a.end_location", f.EndLocation)

	if f.RelatedPeople != nil && *f.RelatedPeople != "" {
		add("array_to_string(ld.related_people, ' ') ILIKE ?", "%"+*f.RelatedPeople+"%")
	}
	contains("ld.personal_feeling", f.PersonalFeeling)

	return conds
}

// Search runs the filter against the user's activities, newest first,
// paginated. Detail predicates see only the latest detail per activity,
// joined laterally with the same ordering the list views use. With no
// predicates it degrades to the plain owner listing.
func (s *Service) Search(ctx context.Context, userID uint64, f Filter) ([]Activity, error) {
	limit, offset := sanitizePage(f.Limit, f.Offset)

	conds := f.conditions()
	if len(conds) == 0 {
		return s.ListByOwner(ctx, userID, limit, offset)
	}

	q := s.DB.WithContext(ctx).
		Table("activities AS a").
		Joins(`LEFT JOIN LATERAL (
			select * from activity_details d
			where d.activity_id = a.id
			order by d.recorded_at desc, d.id desc
			limit 1
		) ld ON true`).
		Where("a.user_id = ?", userID)
	for _, c := range conds {
		q = q.Where(c.expr, c.args...)
	}

	var acts []Activity
	err := q.Select("a.*").
		Order("a.start_time desc").
		Limit(limit).Offset(offset).
		Scan(&acts).Error
	if err != nil {
		return nil, err
	}
	return s.attachLatestDetails(ctx, acts)
}
