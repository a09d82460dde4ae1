package option

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
)

var (
	ErrNotFound   = errors.New("custom option not found")
	ErrConflict   = errors.New("custom option already exists")
	ErrValidation = errors.New("invalid custom option input")
)

type Service struct {
	DB *gorm.DB
}

func (s *Service) List(ctx context.Context, userID uint64) ([]CustomOption, error) {
	var opts []CustomOption
	err := s.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("option_type asc, value asc").
		Find(&opts).Error
	if err != nil {
		return nil, err
	}
	return opts, nil
}

// Add inserts a new option. A duplicate (user, type, value) trips the
// unique index and reports ErrConflict; the existing row is untouched.
func (s *Service) Add(ctx context.Context, userID uint64, optionType, value string) (*CustomOption, error) {
	if strings.TrimSpace(optionType) == "" || strings.TrimSpace(value) == "" {
		return nil, ErrValidation
	}

	opt := CustomOption{UserID: userID, OptionType: optionType, Value: value}
	if err := s.DB.WithContext(ctx).Create(&opt).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrConflict
		}
		return nil, err
	}
	return &opt, nil
}

func (s *Service) Delete(ctx context.Context, optionID, userID uint64) error {
	res := s.DB.WithContext(ctx).
		Where("id = ? AND user_id = ?", optionID, userID).
		Delete(&CustomOption{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
