package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/worklogix/attendance-backend-go/internal/domain/pass"
	"github.com/worklogix/attendance-backend-go/internal/pkg/database"
)

// passRepository reads the badge system's access-event view. The view is
// maintained by the access system; this side never writes it.
type passRepository struct {
	db *database.DB
}

func NewPassRepository(db *database.DB) pass.PassRepository {
	return &passRepository{db: db}
}

const passColumns = `id, category_id, category_name, chip, event_time, person_code, person_name, department, username`

// FindByUsernameAndRange implements pass.PassRepository.
func (r *passRepository) FindByUsernameAndRange(ctx context.Context, username string, from, to time.Time) ([]pass.Pass, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + passColumns + `
		FROM view_passes
		WHERE username = $1 AND event_time >= $2 AND event_time < $3
		ORDER BY event_time
	`

	rows, err := q.Query(ctx, query, username, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query access events: %w", err)
	}
	defer rows.Close()

	return scanPasses(rows)
}

// FindLatest implements pass.PassRepository.
func (r *passRepository) FindLatest(ctx context.Context, username string, limit int) ([]pass.Pass, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + passColumns + `
		FROM view_passes
		WHERE ($1 = '' OR username = $1)
		ORDER BY event_time DESC
		LIMIT $2
	`

	rows, err := q.Query(ctx, query, username, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query latest access events: %w", err)
	}
	defer rows.Close()

	return scanPasses(rows)
}

// FindOnsite implements pass.PassRepository. The last event of today per
// person decides presence: an arrival means they are still in.
func (r *passRepository) FindOnsite(ctx context.Context) ([]pass.Pass, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + passColumns + ` FROM (
			SELECT DISTINCT ON (person_code) ` + passColumns + `
			FROM view_passes
			WHERE event_time >= date_trunc('day', now())
			ORDER BY person_code, event_time DESC
		) latest
		WHERE category_id IN (1, 3)
		ORDER BY person_name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query onsite presence: %w", err)
	}
	defer rows.Close()

	return scanPasses(rows)
}

func scanPasses(rows pgx.Rows) ([]pass.Pass, error) {
	var events []pass.Pass
	for rows.Next() {
		var ev pass.Pass
		var category int
		if err := rows.Scan(
			&ev.ID, &category, &ev.CategoryName, &ev.Chip, &ev.Time,
			&ev.PersonCode, &ev.PersonName, &ev.Department, &ev.Username,
		); err != nil {
			return nil, fmt.Errorf("failed to scan access event: %w", err)
		}
		ev.Category = pass.Category(category)
		events = append(events, ev)
	}
	return events, rows.Err()
}
