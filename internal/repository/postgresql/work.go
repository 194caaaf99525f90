package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/worklogix/attendance-backend-go/internal/domain/work"
	"github.com/worklogix/attendance-backend-go/internal/pkg/database"
)

type workRepository struct {
	db *database.DB
}

func NewWorkRepository(db *database.DB) work.WorkRepository {
	return &workRepository{db: db}
}

const workColumns = `id, date, username, hours, work_type, hours2, work_type2, day_type, description`

// FindByUsernameAndDateRange implements work.WorkRepository.
func (r *workRepository) FindByUsernameAndDateRange(ctx context.Context, username string, from, to time.Time) ([]work.WorkEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + workColumns + `
		FROM work_entries
		WHERE username = $1 AND date BETWEEN $2 AND $3
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, username, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query work entries: %w", err)
	}
	defer rows.Close()

	var entries []work.WorkEntry
	for rows.Next() {
		entry, err := scanWorkEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

// FindByID implements work.WorkRepository.
func (r *workRepository) FindByID(ctx context.Context, id int64) (work.WorkEntry, error) {
	q := GetQuerier(ctx, r.db)

	row := q.QueryRow(ctx, `SELECT `+workColumns+` FROM work_entries WHERE id = $1`, id)
	entry, err := scanWorkEntry(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return work.WorkEntry{}, work.ErrWorkEntryNotFound
		}
		return work.WorkEntry{}, fmt.Errorf("failed to get work entry: %w", err)
	}
	return entry, nil
}

// Save implements work.WorkRepository.
func (r *workRepository) Save(ctx context.Context, entry work.WorkEntry) (work.WorkEntry, error) {
	q := GetQuerier(ctx, r.db)

	if entry.ID == 0 {
		query := `
			INSERT INTO work_entries (date, username, hours, work_type, hours2, work_type2, day_type, description)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING id
		`
		err := q.QueryRow(ctx, query,
			entry.Date, entry.Username, entry.Hours, string(entry.WorkType),
			entry.Hours2, string(entry.WorkType2), string(entry.DayType), entry.Description,
		).Scan(&entry.ID)
		if err != nil {
			return work.WorkEntry{}, fmt.Errorf("failed to insert work entry: %w", err)
		}
		return entry, nil
	}

	query := `
		UPDATE work_entries
		SET hours = $2, work_type = $3, hours2 = $4, work_type2 = $5, day_type = $6, description = $7
		WHERE id = $1
	`
	if _, err := q.Exec(ctx, query,
		entry.ID, entry.Hours, string(entry.WorkType),
		entry.Hours2, string(entry.WorkType2), string(entry.DayType), entry.Description,
	); err != nil {
		return work.WorkEntry{}, fmt.Errorf("failed to update work entry: %w", err)
	}
	return entry, nil
}

// CreateIfAbsent implements work.WorkRepository. The unique constraint on
// (username, date) makes racing lazy-default creations converge on a
// single row; both statements run in one transaction so the loser of the
// race reads the winner's row.
func (r *workRepository) CreateIfAbsent(ctx context.Context, entry work.WorkEntry) (work.WorkEntry, error) {
	var stored work.WorkEntry

	err := WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		insert := `
			INSERT INTO work_entries (date, username, hours, work_type, hours2, work_type2, day_type, description)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			ON CONFLICT (username, date) DO NOTHING
			RETURNING id
		`
		err := tx.QueryRow(ctx, insert,
			entry.Date, entry.Username, entry.Hours, string(entry.WorkType),
			entry.Hours2, string(entry.WorkType2), string(entry.DayType), entry.Description,
		).Scan(&entry.ID)
		if err == nil {
			stored = entry
			return nil
		}
		if err != pgx.ErrNoRows {
			return fmt.Errorf("failed to insert work entry: %w", err)
		}

		// lost the race, read the existing row
		row := tx.QueryRow(ctx,
			`SELECT `+workColumns+` FROM work_entries WHERE username = $1 AND date = $2`,
			entry.Username, entry.Date)
		stored, err = scanWorkEntry(row)
		if err != nil {
			return fmt.Errorf("failed to read existing work entry: %w", err)
		}
		return nil
	})
	if err != nil {
		return work.WorkEntry{}, err
	}
	return stored, nil
}

// DeleteByID implements work.WorkRepository.
func (r *workRepository) DeleteByID(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM work_entries WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete work entry: %w", err)
	}
	return nil
}

func scanWorkEntry(row pgx.Row) (work.WorkEntry, error) {
	var entry work.WorkEntry
	var workType, workType2, dayType string
	err := row.Scan(
		&entry.ID, &entry.Date, &entry.Username, &entry.Hours, &workType,
		&entry.Hours2, &workType2, &dayType, &entry.Description,
	)
	if err != nil {
		return work.WorkEntry{}, err
	}
	entry.WorkType = work.WorkType(workType)
	entry.WorkType2 = work.WorkType(workType2)
	entry.DayType = work.DayType(dayType)
	return entry, nil
}
