package postgres

import (
	"context"
	"database/sql"
	"time"

	"campusdocs/internal/model"
	"campusdocs/internal/repository"
)

// EventPostgres is a PostgreSQL implementation of repository.EventRepository.
type EventPostgres struct {
	db *sql.DB
}

// NewEventPostgres creates a new EventPostgres repository.
func NewEventPostgres(db *sql.DB) *EventPostgres {
	return &EventPostgres{db: db}
}

var _ repository.EventRepository = (*EventPostgres)(nil)

const eventColumns = `id, name, venue, starts_at, notified_at, created_at`

func scanEvent(row rowScanner) (*model.Event, error) {
	var (
		ev       model.Event
		notified sql.NullTime
	)
	if err := row.Scan(&ev.ID, &ev.Name, &ev.Venue, &ev.StartsAt, &notified, &ev.CreatedAt); err != nil {
		return nil, err
	}
	if notified.Valid {
		t := notified.Time
		ev.NotifiedAt = &t
	}
	return &ev, nil
}

func (r *EventPostgres) Create(ctx context.Context, ev *model.Event) (*model.Event, error) {
	const q = `
		INSERT INTO events (id, name, venue, starts_at, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + eventColumns
	return scanEvent(r.db.QueryRowContext(ctx, q, ev.ID, ev.Name, ev.Venue, ev.StartsAt, ev.CreatedAt))
}

func (r *EventPostgres) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.Event], error) {
	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM events`).Scan(&total); err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, `SELECT `+eventColumns+` FROM events ORDER BY starts_at ASC, id ASC LIMIT $1 OFFSET $2`, pq.Limit, pq.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Event, 0)
	for rows.Next() {
		ev, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *ev)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &repository.PageResult[model.Event]{Items: items, Total: total}, nil
}

func (r *EventPostgres) ListStartingBetween(ctx context.Context, from, to time.Time) ([]model.Event, error) {
	q := `SELECT ` + eventColumns + ` FROM events
		WHERE notified_at IS NULL AND starts_at > $1 AND starts_at <= $2
		ORDER BY starts_at ASC`
	rows, err := r.db.QueryContext(ctx, q, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []model.Event
	for rows.Next() {
		ev, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *ev)
	}
	return items, rows.Err()
}

// MarkNotified stamps an event. Already notified events keep their first stamp.
func (r *EventPostgres) MarkNotified(ctx context.Context, id string, at time.Time) error {
	const q = `UPDATE events SET notified_at = $2 WHERE id = $1 AND notified_at IS NULL`
	_, err := r.db.ExecContext(ctx, q, id, at)
	return err
}
