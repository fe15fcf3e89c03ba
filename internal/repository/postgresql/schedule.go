package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/timecardhq/timecard-backend-go/internal/domain/schedule"
	"github.com/timecardhq/timecard-backend-go/internal/pkg/database"
)

// scheduleOverlapConstraint is the exclusion constraint enforcing
// non-overlapping shifts per user:
//
//	EXCLUDE USING gist (user_id WITH =, tstzrange(shift_start, shift_end) WITH &&)
//	WHERE (status != 'cancelled')
//
// The tstzrange is half-open by default, so back-to-back shifts pass. The
// service runs HasOverlapping first for a friendly error, but two racing
// writes both passing that check cannot both commit; the loser surfaces
// here as ErrScheduleConflict.
const scheduleOverlapConstraint = "schedules_no_overlap_per_user"

func isScheduleOverlap(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23P01" && pgErr.ConstraintName == scheduleOverlapConstraint
}

const scheduleColumns = `s.id, s.user_id, s.shift_start, s.shift_end, s.status,
		s.break_duration_minutes, s.location, s.notes, s.created_by_id,
		s.created_at, s.modified_at,
		u.first_name || ' ' || u.last_name AS employee_name,
		c.first_name || ' ' || c.last_name AS created_by_name`

const scheduleJoin = ` FROM schedules s
		JOIN users u ON u.id = s.user_id
		JOIN users c ON c.id = s.created_by_id `

type scheduleRepositoryImpl struct {
	db *database.DB
}

func NewScheduleRepository(db *database.DB) schedule.ScheduleRepository {
	return &scheduleRepositoryImpl{db: db}
}

func scanSchedule(row pgx.Row) (schedule.Schedule, error) {
	var s schedule.Schedule
	err := row.Scan(
		&s.ID,
		&s.UserID,
		&s.ShiftStart,
		&s.ShiftEnd,
		&s.Status,
		&s.BreakDurationMinutes,
		&s.Location,
		&s.Notes,
		&s.CreatedByID,
		&s.CreatedAt,
		&s.ModifiedAt,
		&s.EmployeeName,
		&s.CreatedByName,
	)
	return s, err
}

func (r *scheduleRepositoryImpl) Create(ctx context.Context, sched schedule.Schedule) (schedule.Schedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		WITH inserted AS (
			INSERT INTO schedules (
				user_id, shift_start, shift_end, status,
				break_duration_minutes, location, notes, created_by_id
			)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING *
		)
		SELECT ` + scheduleColumns + `
		FROM inserted s
		JOIN users u ON u.id = s.user_id
		JOIN users c ON c.id = s.created_by_id
	`

	created, err := scanSchedule(q.QueryRow(ctx, query,
		sched.UserID,
		sched.ShiftStart,
		sched.ShiftEnd,
		sched.Status,
		sched.BreakDurationMinutes,
		sched.Location,
		sched.Notes,
		sched.CreatedByID,
	))
	if err != nil {
		if isScheduleOverlap(err) {
			return schedule.Schedule{}, schedule.ErrScheduleConflict
		}
		return schedule.Schedule{}, err
	}

	return created, nil
}

func (r *scheduleRepositoryImpl) GetByID(ctx context.Context, id string) (schedule.Schedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + scheduleColumns + scheduleJoin + `WHERE s.id = $1`

	s, err := scanSchedule(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return schedule.Schedule{}, schedule.ErrScheduleNotFound
		}
		return schedule.Schedule{}, err
	}
	return s, nil
}

func (r *scheduleRepositoryImpl) ListByUser(ctx context.Context, userID string) ([]schedule.Schedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + scheduleColumns + scheduleJoin + `
		WHERE s.user_id = $1
		ORDER BY s.shift_start DESC`

	return r.querySchedules(ctx, q, query, userID)
}

func (r *scheduleRepositoryImpl) GetByUserAndDateRange(ctx context.Context, userID string, start, end time.Time) ([]schedule.Schedule, error) {
	q := GetQuerier(ctx, r.db)

	// Intersection, not containment: a shift spanning the range boundary
	// still belongs to the range.
	query := `SELECT ` + scheduleColumns + scheduleJoin + `
		WHERE s.user_id = $1 AND s.shift_start <= $3 AND s.shift_end >= $2
		ORDER BY s.shift_start ASC`

	return r.querySchedules(ctx, q, query, userID, start, end)
}

func (r *scheduleRepositoryImpl) GetByUsersAndDateRange(ctx context.Context, userIDs []string, start, end time.Time) ([]schedule.Schedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + scheduleColumns + scheduleJoin + `
		WHERE s.user_id = ANY($1) AND s.shift_start <= $3 AND s.shift_end >= $2
		ORDER BY s.shift_start ASC, s.user_id ASC`

	return r.querySchedules(ctx, q, query, userIDs, start, end)
}

func (r *scheduleRepositoryImpl) Search(ctx context.Context, filter schedule.SearchFilter) ([]schedule.Schedule, error) {
	q := GetQuerier(ctx, r.db)

	var conditions []string
	var args []interface{}
	argIdx := 1

	if filter.UserID != nil {
		conditions = append(conditions, fmt.Sprintf("s.user_id = $%d", argIdx))
		args = append(args, *filter.UserID)
		argIdx++
	}
	if filter.StartDate != nil {
		conditions = append(conditions, fmt.Sprintf("s.shift_end >= $%d::date", argIdx))
		args = append(args, *filter.StartDate)
		argIdx++
	}
	if filter.EndDate != nil {
		conditions = append(conditions, fmt.Sprintf("s.shift_start < ($%d::date + INTERVAL '1 day')", argIdx))
		args = append(args, *filter.EndDate)
		argIdx++
	}
	if filter.Status != nil {
		conditions = append(conditions, fmt.Sprintf("s.status = $%d", argIdx))
		args = append(args, *filter.Status)
		argIdx++
	}

	query := `SELECT ` + scheduleColumns + scheduleJoin
	if len(conditions) > 0 {
		query += "WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY s.shift_start DESC"

	return r.querySchedules(ctx, q, query, args...)
}

// HasOverlapping implements the half-open interval test: two shifts overlap
// iff start1 < end2 AND start2 < end1, so back-to-back shifts do not
// conflict.
func (r *scheduleRepositoryImpl) HasOverlapping(ctx context.Context, userID string, shiftStart, shiftEnd time.Time, excludeID *string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS(
			SELECT 1 FROM schedules
			WHERE user_id = $1
			  AND status != 'cancelled'
			  AND shift_start < $3
			  AND $2 < shift_end
			  AND ($4::uuid IS NULL OR id != $4)
		)
	`

	var exists bool
	err := q.QueryRow(ctx, query, userID, shiftStart, shiftEnd, excludeID).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

func (r *scheduleRepositoryImpl) querySchedules(ctx context.Context, q database.Querier, query string, args ...interface{}) ([]schedule.Schedule, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var schedules []schedule.Schedule
	for rows.Next() {
		s, err := scanSchedule(rows)
		if err != nil {
			return nil, err
		}
		schedules = append(schedules, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return schedules, nil
}

func (r *scheduleRepositoryImpl) Update(ctx context.Context, sched schedule.Schedule) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE schedules
		SET user_id = $1, shift_start = $2, shift_end = $3, status = $4,
			break_duration_minutes = $5, location = $6, notes = $7, modified_at = NOW()
		WHERE id = $8
	`

	tag, err := q.Exec(ctx, query,
		sched.UserID,
		sched.ShiftStart,
		sched.ShiftEnd,
		sched.Status,
		sched.BreakDurationMinutes,
		sched.Location,
		sched.Notes,
		sched.ID,
	)
	if err != nil {
		if isScheduleOverlap(err) {
			return schedule.ErrScheduleConflict
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return schedule.ErrScheduleNotFound
	}
	return nil
}

func (r *scheduleRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM schedules WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return schedule.ErrScheduleNotFound
	}
	return nil
}
