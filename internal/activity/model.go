package activity

import (
	"time"

	"github.com/lib/pq"
)

// Activity is one logged block of time belonging to a single user. A row
// with no end_time is an in-progress checkpoint.
type Activity struct {
	ID              uint64     `gorm:"primaryKey" json:"id"`
	UserID          uint64     `gorm:"index;not null" json:"user_id"`
	Title           string     `gorm:"type:text;not null" json:"title"`
	Description     *string    `gorm:"type:text" json:"description"`
	StartTime       time.Time  `gorm:"index;not null" json:"start_time"`
	EndTime         *time.Time `gorm:"type:timestamptz" json:"end_time"`
	StartLocation   *string    `gorm:"type:text" json:"start_location"`
	EndLocation     *string    `gorm:"type:text" json:"end_location"`
	IsFixedSchedule bool       `gorm:"not null;default:false" json:"is_fixed_schedule"`
	CreatedAt       time.Time  `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt       time.Time  `gorm:"not null;default:now()" json:"updated_at"`

	// Attached by the service: full history on single reads, at most the
	// latest row on list views. Never nil in responses.
	Details []Detail `gorm:"-" json:"details"`
}

// Detail is one subjective check-in recorded against an activity. An
// activity accumulates zero or many of these over its lifetime.
type Detail struct {
	ID                     uint64         `gorm:"primaryKey" json:"id"`
	ActivityID             uint64         `gorm:"index;not null" json:"activity_id"`
	Mood                   *string        `gorm:"type:text" json:"mood"`
	EnergyLevel            *string        `gorm:"type:text" json:"energy_level"`
	EnvironmentDescription *string        `gorm:"type:text" json:"environment_description"`
	RelatedPeople          pq.StringArray `gorm:"type:text[];not null;default:'{}'" json:"related_people"`
	PersonalFeeling        *string        `gorm:"type:text" json:"personal_feeling"`
	RecordedAt             time.Time      `gorm:"index;not null;default:now()" json:"recorded_at"`
	UpdatedAt              time.Time      `gorm:"not null;default:now()" json:"updated_at"`
}

func (Detail) TableName() string { return "activity_details" }
