package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"campusdocs/internal/model"
	"campusdocs/internal/repository"
)

// EventListResult is a page of events.
type EventListResult struct {
	Items []model.Event `json:"data"`
	Total int           `json:"total"`
}

// EventService registers the events the notifier watches.
type EventService interface {
	Create(ctx context.Context, req model.EventRequest) (*model.Event, error)
	List(ctx context.Context, limit, offset int) (*EventListResult, error)
}

type eventService struct {
	repo repository.EventRepository
	now  func() time.Time
}

// NewEventService constructs a new EventService.
func NewEventService(repo repository.EventRepository) EventService {
	return &eventService{repo: repo, now: time.Now}
}

func (s *eventService) Create(ctx context.Context, req model.EventRequest) (*model.Event, error) {
	startsAt, err := req.Validate()
	if err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, &model.Event{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Venue:     req.Venue,
		StartsAt:  startsAt,
		CreatedAt: s.now().UTC(),
	})
}

func (s *eventService) List(ctx context.Context, limit, offset int) (*EventListResult, error) {
	if limit <= 0 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	res, err := s.repo.List(ctx, repository.PageQuery{Limit: limit, Offset: offset})
	if err != nil {
		return nil, err
	}
	return &EventListResult{Items: res.Items, Total: res.Total}, nil
}
