// Bounded-retry email sending and the durable backlog it feeds.
//
// An email job gets a fixed number of immediate attempts with exponential
// backoff between them (1s, then 2s by default). A job that exhausts its
// attempts is appended to the backlog blob with a zeroed sweep counter
// instead of being dropped; the sweep in monitor.go picks it up later.
package notify

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/Waldo881/Surf-Turf/internal/domain"
	"github.com/Waldo881/Surf-Turf/internal/store"
)

// Sender couples a Mailer with the retry policy and the durable backlog.
type Sender struct {
	DB     *gorm.DB
	Mailer Mailer

	// MaxRetries is the number of immediate attempts per job (>= 1).
	MaxRetries int
	// BackoffBase is the delay before the first retry; each further retry
	// doubles it.
	BackoffBase time.Duration

	// mu serializes every read-modify-write of the backlog blob. The sweep
	// and SendWithRetry run on different goroutines; without the lock one
	// side can save a stale copy and erase the other's append.
	mu sync.Mutex

	// sleep stands in for the backoff wait in tests.
	sleep func(ctx context.Context, d time.Duration) error
}

// NewSender constructs a sender with the given retry policy.
func NewSender(db *gorm.DB, m Mailer, maxRetries int, backoffBase time.Duration) *Sender {
	if maxRetries < 1 {
		maxRetries = 1
	}
	if backoffBase <= 0 {
		backoffBase = time.Second
	}
	return &Sender{
		DB:          db,
		Mailer:      m,
		MaxRetries:  maxRetries,
		BackoffBase: backoffBase,
		sleep:       sleepCtx,
	}
}

// SendWithRetry attempts the job with bounded retry; when every attempt
// fails the job is enqueued to the durable backlog (attempt counter 0) and
// the final error is returned. The caller sees an error only after the job
// is safely queued.
func (s *Sender) SendWithRetry(ctx context.Context, job domain.EmailJob) error {
	err := s.attempt(ctx, job)
	if err == nil {
		return nil
	}

	emailFailures.Inc()
	if qerr := s.enqueue(ctx, job); qerr != nil {
		log.Error().Err(qerr).Msg("queueing failed email for retry")
	}
	return err
}

// attempt runs the bounded retry loop without touching the backlog. The waits
// between attempts yield to ctx so shutdown does not hang on a backoff timer.
func (s *Sender) attempt(ctx context.Context, job domain.EmailJob) error {
	var lastErr error
	delay := s.BackoffBase
	for i := 0; i < s.MaxRetries; i++ {
		if err := s.Mailer.Send(ctx, job); err == nil {
			return nil
		} else {
			lastErr = err
			log.Warn().Err(err).Int("attempt", i+1).Str("template", job.TemplateID).Msg("email attempt failed")
		}
		if i == s.MaxRetries-1 {
			break
		}
		if err := s.sleep(ctx, delay); err != nil {
			return err
		}
		delay *= 2
	}
	return lastErr
}

// enqueue appends the job to the backlog blob and refreshes the depth gauge.
func (s *Sender) enqueue(ctx context.Context, job domain.EmailJob) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var backlog []domain.BacklogEntry
	if _, err := store.Load(ctx, s.DB, store.KeyEmailBacklog, &backlog); err != nil {
		return err
	}
	backlog = append(backlog, domain.BacklogEntry{Job: job, Attempts: 0})
	if err := store.Save(ctx, s.DB, store.KeyEmailBacklog, backlog); err != nil {
		return err
	}
	backlogDepth.Set(float64(len(backlog)))
	return nil
}

// backlogHead returns the current head entry, if any. Delivery attempts run
// outside the lock, so the sweep calls this fresh before each one.
func (s *Sender) backlogHead(ctx context.Context) (domain.BacklogEntry, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var backlog []domain.BacklogEntry
	if _, err := store.Load(ctx, s.DB, store.KeyEmailBacklog, &backlog); err != nil {
		return domain.BacklogEntry{}, false, err
	}
	backlogDepth.Set(float64(len(backlog)))
	if len(backlog) == 0 {
		return domain.BacklogEntry{}, false, nil
	}
	return backlog[0], true, nil
}

// popBacklogHead removes the delivered head entry. The head cannot have moved
// since backlogHead: enqueue only appends, and sweeps never overlap.
func (s *Sender) popBacklogHead(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var backlog []domain.BacklogEntry
	if _, err := store.Load(ctx, s.DB, store.KeyEmailBacklog, &backlog); err != nil {
		return err
	}
	if len(backlog) == 0 {
		return nil
	}
	backlog = backlog[1:]
	if err := store.Save(ctx, s.DB, store.KeyEmailBacklog, backlog); err != nil {
		return err
	}
	backlogDepth.Set(float64(len(backlog)))
	return nil
}

// failBacklogHead bumps the head's attempt counter, dropping the entry once
// the counter reaches max. It reports the new counter value and whether the
// entry was dropped.
func (s *Sender) failBacklogHead(ctx context.Context, max int) (int, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var backlog []domain.BacklogEntry
	if _, err := store.Load(ctx, s.DB, store.KeyEmailBacklog, &backlog); err != nil {
		return 0, false, err
	}
	if len(backlog) == 0 {
		return 0, false, nil
	}
	backlog[0].Attempts++
	attempts := backlog[0].Attempts
	dropped := attempts >= max
	if dropped {
		backlog = backlog[1:]
	}
	if err := store.Save(ctx, s.DB, store.KeyEmailBacklog, backlog); err != nil {
		return attempts, dropped, err
	}
	backlogDepth.Set(float64(len(backlog)))
	return attempts, dropped, nil
}

// sleepCtx waits for d or until ctx is done, whichever comes first.
func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
