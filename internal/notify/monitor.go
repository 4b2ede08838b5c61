// The backlog sweep: a recurring task that drains queued email jobs
// head-first.
package notify

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
)

// Monitor periodically drains the durable email backlog.
type Monitor struct {
	Sender *Sender

	// Interval between sweeps; 30s by default.
	Interval time.Duration
	// MaxAttempts is the absolute per-entry ceiling; an entry reaching it is
	// dropped permanently.
	MaxAttempts int
}

// NewMonitor constructs a backlog monitor.
func NewMonitor(s *Sender, interval time.Duration, maxAttempts int) *Monitor {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	if maxAttempts < 1 {
		maxAttempts = 5
	}
	return &Monitor{Sender: s, Interval: interval, MaxAttempts: maxAttempts}
}

// Run sweeps the backlog every Interval until ctx is cancelled. Overlap is
// impossible: the next tick only fires after the previous sweep returned.
func (m *Monitor) Run(ctx context.Context) {
	t := time.NewTicker(m.Interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			m.Sweep(ctx)
		}
	}
}

// Sweep drains the backlog head-first. Each head entry gets one bounded-retry
// delivery: success pops it and the sweep continues with the next head; a
// failure increments the entry's counter and ends the sweep (the entry keeps
// its place for the next tick) unless the counter has reached the ceiling, in
// which case the entry is dropped permanently and the sweep moves on.
//
// The backlog is re-read around every delivery rather than held as a
// snapshot: SendWithRetry may append a job while an attempt is in flight,
// and saving a stale copy here would erase it.
func (m *Monitor) Sweep(ctx context.Context) {
	for ctx.Err() == nil {
		head, ok, err := m.Sender.backlogHead(ctx)
		if err != nil {
			log.Error().Err(err).Msg("loading email backlog")
			return
		}
		if !ok {
			return
		}

		if err := m.Sender.attempt(ctx, head.Job); err == nil {
			if err := m.Sender.popBacklogHead(ctx); err != nil {
				log.Error().Err(err).Msg("saving email backlog")
				return
			}
			emailsSent.WithLabelValues("backlog").Inc()
			log.Info().Str("template", head.Job.TemplateID).Msg("queued email delivered")
			continue
		}

		attempts, dropped, err := m.Sender.failBacklogHead(ctx, m.MaxAttempts)
		if err != nil {
			log.Error().Err(err).Msg("saving email backlog")
			return
		}
		if dropped {
			log.Error().
				Str("template", head.Job.TemplateID).
				Int("attempts", attempts).
				Msg("dropping email after repeated failures")
			continue
		}
		// The failing head keeps its place for the next tick.
		return
	}
}
