package option

// CustomOption is one entry of a per-user vocabulary list, e.g. a mood
// value under option_type "mood". (user_id, option_type, value) is unique.
type CustomOption struct {
	ID         uint64 `gorm:"primaryKey" json:"id"`
	UserID     uint64 `gorm:"index;not null" json:"user_id"`
	OptionType string `gorm:"type:text;not null" json:"option_type"`
	Value      string `gorm:"type:text;not null" json:"value"`
}

func (CustomOption) TableName() string { return "custom_options" }
