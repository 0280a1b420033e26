// Package notifier announces events that are about to start.
//
// It polls the event table on an interval; there is no push channel.
package notifier

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"campusdocs/internal/model"
	"campusdocs/internal/repository"
)

// Sender delivers one announcement.
type Sender interface {
	Notify(ctx context.Context, ev model.Event) error
}

// LogSender writes announcements to the log.
type LogSender struct {
	Log zerolog.Logger
}

func (s LogSender) Notify(_ context.Context, ev model.Event) error {
	s.Log.Info().
		Str("event_id", ev.ID).
		Str("event", ev.Name).
		Str("venue", ev.Venue).
		Time("starts_at", ev.StartsAt).
		Msg("event_starting_soon")
	return nil
}

// Metrics counts notification outcomes. A nil *Metrics records nothing.
type Metrics struct {
	notifications *prometheus.CounterVec
}

// NewMetrics registers the notifier metrics on reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		notifications: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "notifier_notifications_total",
				Help: "Upcoming-event notifications by outcome.",
			},
			[]string{"status"},
		),
	}
	if err := reg.Register(m.notifications); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Metrics) inc(status string) {
	if m != nil {
		m.notifications.WithLabelValues(status).Inc()
	}
}

// Poller finds events starting within Window and notifies each once.
type Poller struct {
	events  repository.EventRepository
	claims  Claimer
	sender  Sender
	window  time.Duration
	metrics *Metrics
	log     zerolog.Logger
	now     func() time.Time
}

// NewPoller constructs a Poller.
func NewPoller(events repository.EventRepository, claims Claimer, sender Sender, window time.Duration, metrics *Metrics, log zerolog.Logger) *Poller {
	return &Poller{
		events:  events,
		claims:  claims,
		sender:  sender,
		window:  window,
		metrics: metrics,
		log:     log.With().Str("component", "notifier").Logger(),
		now:     time.Now,
	}
}

// Scan runs one poll and returns how many events were announced.
// Per-event failures are logged and left for the next scan.
func (p *Poller) Scan(ctx context.Context) (int, error) {
	now := p.now().UTC()
	due, err := p.events.ListStartingBetween(ctx, now, now.Add(p.window))
	if err != nil {
		return 0, err
	}

	sent := 0
	for _, ev := range due {
		key := "event:" + ev.ID
		ok, err := p.claims.Claim(ctx, key, p.window)
		if err != nil {
			p.metrics.inc("error")
			p.log.Error().Err(err).Str("event_id", ev.ID).Msg("notify_claim_failed")
			continue
		}
		if !ok {
			p.metrics.inc("skipped")
			continue
		}

		if err := p.sender.Notify(ctx, ev); err != nil {
			p.metrics.inc("error")
			p.log.Error().Err(err).Str("event_id", ev.ID).Msg("notify_failed")
			if relErr := p.claims.Release(ctx, key); relErr != nil {
				p.log.Warn().Err(relErr).Str("event_id", ev.ID).Msg("notify_release_failed")
			}
			continue
		}
		if err := p.events.MarkNotified(ctx, ev.ID, now); err != nil {
			// The claim stays until its TTL, so other instances do not resend meanwhile.
			p.log.Error().Err(err).Str("event_id", ev.ID).Msg("notify_mark_failed")
		}
		p.metrics.inc("sent")
		sent++
	}
	return sent, nil
}
