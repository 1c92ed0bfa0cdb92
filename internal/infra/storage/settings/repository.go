package settings

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/rmarins/MEI-AgendaService/internal/domain"
	"github.com/rmarins/MEI-AgendaService/pkg/dbmetrics"
	"github.com/rmarins/MEI-AgendaService/pkg/psqlbuilder"
)

const (
	scheduleTable = "work_schedule"
	profileTable  = "profile"
)

// Both tables hold a single row for the professional; the fixed id keeps
// the upserts honest.
const singletonID = 1

// Repository stores the professional's settings in PostgreSQL.
type Repository struct {
	db DBExecutor
}

// NewRepository creates the settings repository.
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetSchedule fetches the saved work schedule. Returns ErrScheduleNotFound
// before the first save; callers fall back to the default schedule.
func (r *Repository) GetSchedule(ctx context.Context) (*domain.WorkSchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("start_hour", "end_hour", "slot_duration_minutes", "work_days").
		From(scheduleTable).
		Where(squirrel.Eq{"id": singletonID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetSchedule - build select query: %v", ErrBuildQuery, err)
	}

	var schedule domain.WorkSchedule
	var workDays pq.Int64Array

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&schedule.StartHour,
		&schedule.EndHour,
		&schedule.SlotDurationMinutes,
		&workDays,
	)
	if err == sql.ErrNoRows {
		return nil, ErrScheduleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetSchedule - scan schedule: %v", ErrScanRow, err)
	}

	schedule.WorkDays = make([]time.Weekday, 0, len(workDays))
	for _, d := range workDays {
		schedule.WorkDays = append(schedule.WorkDays, time.Weekday(d))
	}

	return &schedule, nil
}

// Get returns the effective work schedule: the saved one, or the default
// schedule before the first save. Slot calculations always need a schedule,
// so the not-found case is absorbed here.
func (r *Repository) Get(ctx context.Context) (*domain.WorkSchedule, error) {
	schedule, err := r.GetSchedule(ctx)
	if err == ErrScheduleNotFound {
		return domain.DefaultWorkSchedule(), nil
	}
	if err != nil {
		return nil, err
	}
	return schedule, nil
}

// SaveSchedule upserts the work schedule.
func (r *Repository) SaveSchedule(ctx context.Context, schedule *domain.WorkSchedule) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	workDays := make(pq.Int64Array, 0, len(schedule.WorkDays))
	for _, d := range schedule.WorkDays {
		workDays = append(workDays, int64(d))
	}

	query, args, err := psqlbuilder.Insert(scheduleTable).
		Columns("id", "start_hour", "end_hour", "slot_duration_minutes", "work_days").
		Values(singletonID, schedule.StartHour, schedule.EndHour, schedule.SlotDurationMinutes, workDays).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			start_hour = EXCLUDED.start_hour,
			end_hour = EXCLUDED.end_hour,
			slot_duration_minutes = EXCLUDED.slot_duration_minutes,
			work_days = EXCLUDED.work_days,
			updated_at = NOW()`).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: SaveSchedule - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: SaveSchedule - execute upsert: %v", ErrExecQuery, err)
	}

	return nil
}

// GetProfile fetches the merchant profile. Returns ErrProfileNotFound before
// the first save.
func (r *Repository) GetProfile(ctx context.Context) (*domain.Profile, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "city", "pix_key", "phone", "created_at", "updated_at").
		From(profileTable).
		Where(squirrel.Eq{"id": singletonID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetProfile - build select query: %v", ErrBuildQuery, err)
	}

	var profile domain.Profile
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&profile.ID,
		&profile.Name,
		&profile.City,
		&profile.PixKey,
		&profile.Phone,
		&createdAt,
		&updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetProfile - scan profile: %v", ErrScanRow, err)
	}

	profile.CreatedAt = createdAt.Time
	profile.UpdatedAt = updatedAt.Time

	return &profile, nil
}

// SaveProfile upserts the merchant profile.
func (r *Repository) SaveProfile(ctx context.Context, profile *domain.Profile) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(profileTable).
		Columns("id", "name", "city", "pix_key", "phone").
		Values(singletonID, profile.Name, profile.City, profile.PixKey, profile.Phone).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			city = EXCLUDED.city,
			pix_key = EXCLUDED.pix_key,
			phone = EXCLUDED.phone,
			updated_at = NOW()`).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: SaveProfile - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: SaveProfile - execute upsert: %v", ErrExecQuery, err)
	}

	return nil
}
