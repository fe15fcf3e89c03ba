package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/timecardhq/timecard-backend-go/internal/domain/timeentry"
	"github.com/timecardhq/timecard-backend-go/internal/pkg/database"
)

// openEntryIndex is the partial unique index enforcing one open entry per
// user. Concurrent clock-ins race on the insert and the loser gets a
// unique violation instead of a double entry.
const openEntryIndex = "time_entries_one_open_per_user"

const timeEntryColumns = `t.id, t.user_id, t.employee_id, t.clock_in, t.clock_out,
		t.lunch_clock_in, t.lunch_clock_out, t.break_duration_minutes, t.status,
		t.created_at, t.updated_at,
		u.first_name || ' ' || u.last_name AS employee_name`

const timeEntryJoin = ` FROM time_entries t JOIN users u ON u.id = t.user_id `

type timeEntryRepositoryImpl struct {
	db *database.DB
}

func NewTimeEntryRepository(db *database.DB) timeentry.TimeEntryRepository {
	return &timeEntryRepositoryImpl{db: db}
}

func scanTimeEntry(row pgx.Row) (timeentry.TimeEntry, error) {
	var e timeentry.TimeEntry
	err := row.Scan(
		&e.ID,
		&e.UserID,
		&e.EmployeeID,
		&e.ClockIn,
		&e.ClockOut,
		&e.LunchClockIn,
		&e.LunchClockOut,
		&e.BreakDurationMinutes,
		&e.Status,
		&e.CreatedAt,
		&e.UpdatedAt,
		&e.EmployeeName,
	)
	return e, err
}

// Create implements timeentry.TimeEntryRepository. Inserting a second open
// entry for the same user violates the partial unique index and surfaces as
// ErrAlreadyClockedIn, which makes check-then-insert race free.
func (r *timeEntryRepositoryImpl) Create(ctx context.Context, entry timeentry.TimeEntry) (timeentry.TimeEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		WITH inserted AS (
			INSERT INTO time_entries (
				user_id, employee_id, clock_in, clock_out,
				lunch_clock_in, lunch_clock_out, break_duration_minutes, status
			)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING *
		)
		SELECT ` + timeEntryColumns + `
		FROM inserted t JOIN users u ON u.id = t.user_id
	`

	created, err := scanTimeEntry(q.QueryRow(ctx, query,
		entry.UserID,
		entry.EmployeeID,
		entry.ClockIn,
		entry.ClockOut,
		entry.LunchClockIn,
		entry.LunchClockOut,
		entry.BreakDurationMinutes,
		entry.Status,
	))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == openEntryIndex {
			return timeentry.TimeEntry{}, timeentry.ErrAlreadyClockedIn
		}
		return timeentry.TimeEntry{}, err
	}

	return created, nil
}

func (r *timeEntryRepositoryImpl) GetByID(ctx context.Context, id string) (timeentry.TimeEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + timeEntryColumns + timeEntryJoin + `WHERE t.id = $1`

	e, err := scanTimeEntry(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return timeentry.TimeEntry{}, timeentry.ErrEntryNotFound
		}
		return timeentry.TimeEntry{}, err
	}
	return e, nil
}

func (r *timeEntryRepositoryImpl) GetOpenEntry(ctx context.Context, userID string) (timeentry.TimeEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + timeEntryColumns + timeEntryJoin + `WHERE t.user_id = $1 AND t.clock_out IS NULL`

	e, err := scanTimeEntry(q.QueryRow(ctx, query, userID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return timeentry.TimeEntry{}, timeentry.ErrEntryNotFound
		}
		return timeentry.TimeEntry{}, err
	}
	return e, nil
}

func (r *timeEntryRepositoryImpl) ListByUser(ctx context.Context, userID string, filter timeentry.ListFilter) ([]timeentry.TimeEntry, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"t.user_id = $1"}
	args := []interface{}{userID}
	argIdx := 2

	if filter.StartDate != nil {
		conditions = append(conditions, fmt.Sprintf("t.clock_in >= $%d", argIdx))
		args = append(args, *filter.StartDate)
		argIdx++
	}
	if filter.EndDate != nil {
		conditions = append(conditions, fmt.Sprintf("t.clock_in < ($%d::date + INTERVAL '1 day')", argIdx))
		args = append(args, *filter.EndDate)
		argIdx++
	}
	if filter.Status != nil {
		conditions = append(conditions, fmt.Sprintf("t.status = $%d", argIdx))
		args = append(args, *filter.Status)
		argIdx++
	}

	whereClause := "WHERE " + strings.Join(conditions, " AND ")

	var total int64
	countQuery := `SELECT COUNT(*) FROM time_entries t ` + whereClause
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	query := fmt.Sprintf(`SELECT `+timeEntryColumns+timeEntryJoin+`%s ORDER BY t.clock_in DESC LIMIT $%d OFFSET $%d`,
		whereClause, argIdx, argIdx+1)
	args = append(args, filter.Limit, offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var entries []timeentry.TimeEntry
	for rows.Next() {
		e, err := scanTimeEntry(rows)
		if err != nil {
			return nil, 0, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return entries, total, nil
}

func (r *timeEntryRepositoryImpl) GetByUserAndDateRange(ctx context.Context, userID string, start, end time.Time) ([]timeentry.TimeEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + timeEntryColumns + timeEntryJoin + `
		WHERE t.user_id = $1 AND t.clock_in >= $2 AND t.clock_in <= $3
		ORDER BY t.clock_in ASC`

	return r.queryEntries(ctx, q, query, userID, start, end)
}

func (r *timeEntryRepositoryImpl) GetByEmployeeAndDateRange(ctx context.Context, employeeID int, start, end time.Time) ([]timeentry.TimeEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + timeEntryColumns + timeEntryJoin + `
		WHERE t.employee_id = $1 AND t.clock_in >= $2 AND t.clock_in <= $3
		ORDER BY t.clock_in ASC`

	return r.queryEntries(ctx, q, query, employeeID, start, end)
}

func (r *timeEntryRepositoryImpl) GetByDateRange(ctx context.Context, start, end time.Time) ([]timeentry.TimeEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + timeEntryColumns + timeEntryJoin + `
		WHERE t.clock_in >= $1 AND t.clock_in <= $2
		ORDER BY t.clock_in ASC`

	return r.queryEntries(ctx, q, query, start, end)
}

func (r *timeEntryRepositoryImpl) queryEntries(ctx context.Context, q database.Querier, query string, args ...interface{}) ([]timeentry.TimeEntry, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []timeentry.TimeEntry
	for rows.Next() {
		e, err := scanTimeEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

func (r *timeEntryRepositoryImpl) Update(ctx context.Context, entry timeentry.TimeEntry) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE time_entries
		SET clock_in = $1, clock_out = $2, lunch_clock_in = $3, lunch_clock_out = $4,
			break_duration_minutes = $5, status = $6, updated_at = NOW()
		WHERE id = $7
	`

	tag, err := q.Exec(ctx, query,
		entry.ClockIn,
		entry.ClockOut,
		entry.LunchClockIn,
		entry.LunchClockOut,
		entry.BreakDurationMinutes,
		entry.Status,
		entry.ID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == openEntryIndex {
			return timeentry.ErrAlreadyClockedIn
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return timeentry.ErrEntryNotFound
	}
	return nil
}

func (r *timeEntryRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM time_entries WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return timeentry.ErrEntryNotFound
	}
	return nil
}
