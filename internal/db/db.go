package db

import (
	"fmt"
	"time"

	"daylog/internal/activity"
	"daylog/internal/auth"
	"daylog/internal/option"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens a bounded, process-wide pool. TranslateError lets stores
// match unique violations as gorm.ErrDuplicatedKey instead of poking at
// driver error codes.
func Connect(dsn string, maxOpenConns, maxIdleConns int) (*gorm.DB, error) {
	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return gdb, nil
}

// Close drains the underlying pool; called on shutdown.
func Close(gdb *gorm.DB) error {
	sqlDB, err := gdb.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func AutoMigrateAndIndexes(gdb *gorm.DB) error {
	// Tables
	if err := gdb.AutoMigrate(
		&auth.User{},
		&activity.Activity{},
		&activity.Detail{},
		&option.CustomOption{},
	); err != nil {
		return err
	}

	// Deleting an activity must take its detail rows with it.
	if err := gdb.Exec(`
do $$ begin
  if not exists (select 1 from pg_constraint where conname = 'fk_activity_details_activity') then
    alter table activity_details
      add constraint fk_activity_details_activity
      foreign key (activity_id) references activities(id) on delete cascade;
  end if;
end $$;
`).Error; err != nil {
		return err
	}

	// Duplicate options are a conflict, not an overwrite.
	if err := gdb.Exec(`create unique index if not exists uq_custom_options_user_type_value on custom_options(user_id, option_type, value);`).Error; err != nil {
		return err
	}

	// Helpful indexes
	stmts := []string{
		`create index if not exists idx_activities_user_start on activities(user_id, start_time desc);`,
		`create index if not exists idx_activities_user_fixed on activities(user_id, start_time) where is_fixed_schedule;`,
		`create index if not exists idx_details_activity_recorded on activity_details(activity_id, recorded_at desc, id desc);`,
	}
	for _, s := range stmts {
		if err := gdb.Exec(s).Error; err != nil {
			return fmt.Errorf("index exec failed: %w (sql=%s)", err, s)
		}
	}

	return nil
}
