package notify

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Waldo881/Surf-Turf/internal/domain"
	"github.com/Waldo881/Surf-Turf/internal/store"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:notify_%s?mode=memory&cache=shared", uuid.NewString())

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&store.Blob{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}

// fakeMailer fails the first failN sends, then succeeds.
type fakeMailer struct {
	failN int
	calls int
	sleeps []time.Duration
}

func (m *fakeMailer) Send(ctx context.Context, job domain.EmailJob) error {
	m.calls++
	if m.calls <= m.failN {
		return errors.New("smtp unavailable")
	}
	return nil
}

func newTestSender(t *testing.T, mailer Mailer) *Sender {
	t.Helper()
	s := NewSender(newTestDB(t), mailer, 3, time.Second)
	// Capture backoffs instead of sleeping.
	s.sleep = func(ctx context.Context, d time.Duration) error {
		if fm, ok := mailer.(*fakeMailer); ok {
			fm.sleeps = append(fm.sleeps, d)
		}
		return nil
	}
	return s
}

func testJob() domain.EmailJob {
	return domain.EmailJob{
		ServiceID:  "svc",
		TemplateID: "tpl_customer",
		Params:     map[string]string{"order_id": "ST1"},
	}
}

func loadBacklog(t *testing.T, db *gorm.DB) []domain.BacklogEntry {
	t.Helper()
	var backlog []domain.BacklogEntry
	if _, err := store.Load(context.Background(), db, store.KeyEmailBacklog, &backlog); err != nil {
		t.Fatalf("load backlog: %v", err)
	}
	return backlog
}

func TestSendWithRetry_SucceedsAfterTwoFailures(t *testing.T) {
	m := &fakeMailer{failN: 2}
	s := newTestSender(t, m)

	if err := s.SendWithRetry(context.Background(), testJob()); err != nil {
		t.Fatalf("expected success on third attempt, got %v", err)
	}
	if m.calls != 3 {
		t.Fatalf("calls = %d, want 3", m.calls)
	}
	// Exponential backoff between attempts: base, then doubled.
	if len(m.sleeps) != 2 || m.sleeps[0] != time.Second || m.sleeps[1] != 2*time.Second {
		t.Fatalf("backoffs = %v, want [1s 2s]", m.sleeps)
	}
	if got := loadBacklog(t, s.DB); len(got) != 0 {
		t.Fatalf("backlog should stay empty on success, got %d", len(got))
	}
}

func TestSendWithRetry_ExhaustionQueuesJob(t *testing.T) {
	m := &fakeMailer{failN: 99}
	s := newTestSender(t, m)

	err := s.SendWithRetry(context.Background(), testJob())
	if err == nil {
		t.Fatalf("expected error after exhausting retries")
	}
	if m.calls != 3 {
		t.Fatalf("calls = %d, want 3", m.calls)
	}

	backlog := loadBacklog(t, s.DB)
	if len(backlog) != 1 {
		t.Fatalf("backlog len = %d, want 1", len(backlog))
	}
	if backlog[0].Attempts != 0 {
		t.Fatalf("queued entry starts at 0 sweep attempts, got %d", backlog[0].Attempts)
	}
	if backlog[0].Job.TemplateID != "tpl_customer" {
		t.Fatalf("queued wrong job: %+v", backlog[0].Job)
	}
}

func TestSendWithRetry_FirstAttemptSuccessSkipsBackoff(t *testing.T) {
	m := &fakeMailer{}
	s := newTestSender(t, m)

	if err := s.SendWithRetry(context.Background(), testJob()); err != nil {
		t.Fatalf("send: %v", err)
	}
	if m.calls != 1 || len(m.sleeps) != 0 {
		t.Fatalf("expected single attempt without backoff, calls=%d sleeps=%v", m.calls, m.sleeps)
	}
}

func TestAttempt_CancelledContextStopsRetrying(t *testing.T) {
	m := &fakeMailer{failN: 99}
	s := NewSender(newTestDB(t), m, 3, time.Second)
	// Real sleepCtx against an already-cancelled context.
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := s.attempt(ctx, testJob())
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if m.calls != 1 {
		t.Fatalf("calls = %d, want 1 (no retries after cancel)", m.calls)
	}
}
