package repository

import (
	"context"
	"time"

	"campusdocs/internal/model"
)

// EventRepository stores the events scanned by the notifier.
type EventRepository interface {
	Create(ctx context.Context, ev *model.Event) (*model.Event, error)
	List(ctx context.Context, pq PageQuery) (*PageResult[model.Event], error)
	// ListStartingBetween returns events not yet notified whose start lies in (from, to].
	ListStartingBetween(ctx context.Context, from, to time.Time) ([]model.Event, error)
	MarkNotified(ctx context.Context, id string, at time.Time) error
}
