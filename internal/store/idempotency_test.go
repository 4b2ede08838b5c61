package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Waldo881/Surf-Turf/internal/domain"
	"gorm.io/gorm"
)

func newIdemDB(t *testing.T) *gorm.DB {
	t.Helper()
	db := newTestDB(t)
	if err := db.AutoMigrate(&domain.Idempotency{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}

func TestIdempotency_CreateAndGet(t *testing.T) {
	db := newIdemDB(t)
	ctx := context.Background()

	rec, err := CreateIdempotency(ctx, db, "guest", "k1", "ST123", 201, time.Hour)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if rec.OrderID != "ST123" || rec.Status != 201 {
		t.Fatalf("unexpected record: %+v", rec)
	}

	got, err := GetIdempotency(ctx, db, "guest", "k1", time.Now().UTC())
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.OrderID != "ST123" {
		t.Fatalf("OrderID = %q, want ST123", got.OrderID)
	}
}

func TestIdempotency_DuplicateKeyRejected(t *testing.T) {
	db := newIdemDB(t)
	ctx := context.Background()

	if _, err := CreateIdempotency(ctx, db, "guest", "k1", "ST1", 201, time.Hour); err != nil {
		t.Fatalf("create 1: %v", err)
	}
	_, err := CreateIdempotency(ctx, db, "guest", "k1", "ST2", 201, time.Hour)
	if !errors.Is(err, ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}

	// Same key for a different user is a separate tuple.
	if _, err := CreateIdempotency(ctx, db, "other", "k1", "ST3", 201, time.Hour); err != nil {
		t.Fatalf("create other user: %v", err)
	}
}

func TestIdempotency_ExpiredNotReturned(t *testing.T) {
	db := newIdemDB(t)
	ctx := context.Background()

	if _, err := CreateIdempotency(ctx, db, "guest", "old", "ST1", 201, time.Millisecond); err != nil {
		t.Fatalf("create: %v", err)
	}

	_, err := GetIdempotency(ctx, db, "guest", "old", time.Now().UTC().Add(time.Second))
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for expired record, got %v", err)
	}
}

func TestIdempotency_BlankKey(t *testing.T) {
	db := newIdemDB(t)

	_, err := GetIdempotency(context.Background(), db, "guest", "  ", time.Now().UTC())
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for blank key, got %v", err)
	}
}
