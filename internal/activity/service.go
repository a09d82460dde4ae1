package activity

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrNotFound   = errors.New("activity not found")
	ErrValidation = errors.New("invalid activity input")
)

const (
	DefaultLimit  = 10
	DefaultOffset = 0
)

type Service struct {
	DB *gorm.DB
}

type CreateInput struct {
	Title           string
	Description     *string
	StartTime       time.Time
	StartLocation   *string
	IsFixedSchedule bool
}

type DetailInput struct {
	Mood                   *string
	EnergyLevel            *string
	EnvironmentDescription *string
	RelatedPeople          []string
	PersonalFeeling        *string
}

type CompleteInput struct {
	EndTime     time.Time
	EndLocation *string
	Detail      DetailInput
}

// Create starts a checkpoint. No detail row is written here; details only
// arrive through Complete or direct detail edits.
func (s *Service) Create(ctx context.Context, userID uint64, in CreateInput) (*Activity, error) {
	if strings.TrimSpace(in.Title) == "" || in.StartTime.IsZero() {
		return nil, ErrValidation
	}

	now := time.Now()
	a := Activity{
		UserID:          userID,
		Title:           in.Title,
		Description:     in.Description,
		StartTime:       in.StartTime,
		StartLocation:   in.StartLocation,
		IsFixedSchedule: in.IsFixedSchedule,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := s.DB.WithContext(ctx).Create(&a).Error; err != nil {
		return nil, err
	}
	a.Details = []Detail{}
	return &a, nil
}

// Complete stamps the end of an activity and appends one detail row in the
// same transaction; either both writes land or neither does. Completing an
// already-completed activity is allowed: the end fields are overwritten and
// another check-in is appended.
func (s *Service) Complete(ctx context.Context, activityID, userID uint64, in CompleteInput) error {
	if in.EndTime.IsZero() {
		return ErrValidation
	}

	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var a Activity
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ? AND user_id = ?", activityID, userID).
			First(&a).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if in.EndTime.Before(a.StartTime) {
			return ErrValidation
		}

		now := time.Now()
		err = tx.Model(&Activity{}).
			Where("id = ? AND user_id = ?", activityID, userID).
			Updates(map[string]any{
				"end_time":     in.EndTime,
				"end_location": in.EndLocation,
				"updated_at":   now,
			}).Error
		if err != nil {
			return err
		}

		d := newDetail(activityID, in.Detail, now)
		return tx.Create(&d).Error
	})
}

// UpdateBasicInfo edits title/description/fixed-schedule only; times and
// locations are immutable through this path.
func (s *Service) UpdateBasicInfo(ctx context.Context, activityID, userID uint64, title string, description *string, isFixedSchedule bool) error {
	if strings.TrimSpace(title) == "" {
		return ErrValidation
	}

	res := s.DB.WithContext(ctx).Model(&Activity{}).
		Where("id = ? AND user_id = ?", activityID, userID).
		Updates(map[string]any{
			"title":             title,
			"description":       description,
			"is_fixed_schedule": isFixedSchedule,
			"updated_at":        time.Now(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdateDetail verifies the activity belongs to the user, then that the
// detail belongs to the activity. Both failures surface as ErrNotFound so
// callers cannot probe for rows they do not own.
func (s *Service) UpdateDetail(ctx context.Context, detailID, activityID, userID uint64, in DetailInput) error {
	var a Activity
	err := s.DB.WithContext(ctx).
		Select("id").
		Where("id = ? AND user_id = ?", activityID, userID).
		First(&a).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	res := s.DB.WithContext(ctx).Model(&Detail{}).
		Where("id = ? AND activity_id = ?", detailID, activityID).
		Updates(map[string]any{
			"mood":                    in.Mood,
			"energy_level":            in.EnergyLevel,
			"environment_description": in.EnvironmentDescription,
			"related_people":          toTextArray(in.RelatedPeople),
			"personal_feeling":        in.PersonalFeeling,
			"updated_at":              time.Now(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// GetByID returns the activity with its full detail history, newest first.
// A row owned by someone else is indistinguishable from a missing row.
func (s *Service) GetByID(ctx context.Context, activityID, userID uint64) (*Activity, error) {
	var a Activity
	err := s.DB.WithContext(ctx).
		Where("id = ? AND user_id = ?", activityID, userID).
		First(&a).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	a.Details = []Detail{}
	err = s.DB.WithContext(ctx).
		Where("activity_id = ?", activityID).
		Order("recorded_at desc, id desc").
		Find(&a.Details).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *Service) ListByOwner(ctx context.Context, userID uint64, limit, offset int) ([]Activity, error) {
	limit, offset = sanitizePage(limit, offset)

	var acts []Activity
	err := s.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("start_time desc").
		Limit(limit).Offset(offset).
		Find(&acts).Error
	if err != nil {
		return nil, err
	}
	return s.attachLatestDetails(ctx, acts)
}

// ListForDate returns activities whose start_time falls on the given local
// civil date (YYYY-MM-DD), ascending, unpaginated.
func (s *Service) ListForDate(ctx context.Context, userID uint64, date string) ([]Activity, error) {
	day, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		return nil, ErrValidation
	}
	next := day.AddDate(0, 0, 1)

	var acts []Activity
	err = s.DB.WithContext(ctx).
		Where("user_id = ? AND start_time >= ? AND start_time < ?", userID, day, next).
		Order("start_time asc").
		Find(&acts).Error
	if err != nil {
		return nil, err
	}
	return s.attachLatestDetails(ctx, acts)
}

func (s *Service) ListFixedSchedules(ctx context.Context, userID uint64) ([]Activity, error) {
	var acts []Activity
	err := s.DB.WithContext(ctx).
		Where("user_id = ? AND is_fixed_schedule = ?", userID, true).
		Order("start_time asc").
		Find(&acts).Error
	if err != nil {
		return nil, err
	}
	return s.attachLatestDetails(ctx, acts)
}

// Delete removes the activity row; its detail rows go with it via the
// ON DELETE CASCADE constraint installed at migration time.
func (s *Service) Delete(ctx context.Context, activityID, userID uint64) error {
	res := s.DB.WithContext(ctx).
		Where("id = ? AND user_id = ?", activityID, userID).
		Delete(&Activity{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// attachLatestDetails annotates each activity with at most its most recent
// detail row. DISTINCT ON keeps one row per activity; the id tiebreak makes
// equal recorded_at values resolve the same way on every call.
func (s *Service) attachLatestDetails(ctx context.Context, acts []Activity) ([]Activity, error) {
	for i := range acts {
		acts[i].Details = []Detail{}
	}
	if len(acts) == 0 {
		return acts, nil
	}

	ids := make([]uint64, 0, len(acts))
	for _, a := range acts {
		ids = append(ids, a.ID)
	}

	var latest []Detail
	err := s.DB.WithContext(ctx).Raw(`
		select distinct on (activity_id) *
		from activity_details
		where activity_id in ?
		order by activity_id, recorded_at desc, id desc
	`, ids).Scan(&latest).Error
	if err != nil {
		return nil, err
	}

	byActivity := make(map[uint64]Detail, len(latest))
	for _, d := range latest {
		byActivity[d.ActivityID] = d
	}
	for i := range acts {
		if d, ok := byActivity[acts[i].ID]; ok {
			acts[i].Details = []Detail{d}
		}
	}
	return acts, nil
}

func newDetail(activityID uint64, in DetailInput, now time.Time) Detail {
	return Detail{
		ActivityID:             activityID,
		Mood:                   in.Mood,
		EnergyLevel:            in.EnergyLevel,
		EnvironmentDescription: in.EnvironmentDescription,
		RelatedPeople:          toTextArray(in.RelatedPeople),
		PersonalFeeling:        in.PersonalFeeling,
		RecordedAt:             now,
		UpdatedAt:              now,
	}
}

// toTextArray never returns nil, so the column stays NOT NULL.
func toTextArray(people []string) pq.StringArray {
	if people == nil {
		return pq.StringArray{}
	}
	return pq.StringArray(people)
}

// sanitizePage clamps bad pagination values back to the defaults instead
// of erroring. An unset limit is zero, and zero must mean "default page",
// not LIMIT 0.
func sanitizePage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if offset < 0 {
		offset = DefaultOffset
	}
	return limit, offset
}
