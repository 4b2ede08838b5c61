// Package store implements the persistence layer, backed by GORM. This file
// provides the string-keyed JSON blob store.
//
// Every piece of durable session state (cart contents, order history,
// channel configuration, admin session, email backlog) lives under a
// well-known key as a single JSON value. Consumers restoring state must
// tolerate an absent key (treat as empty/default) and malformed JSON (fall
// back to defaults rather than fail), and both are handled here.
//
// All functions are context-aware and accept a *gorm.DB handle, making them
// safe for use within transactions or connection-scoped operations. They
// follow the "thin repository" approach: no business logic, only persistence.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"reflect"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Well-known blob keys. The names are part of the on-disk contract and are
// carried over from the storefront's original local-storage layout so an
// exported state dump stays recognizable.
const (
	KeyCart          = "surfTurfCart"
	KeyOrders        = "surfTurfOrders"
	KeyEmailConfig   = "surfTurfEmailConfig"
	KeyWebhookConfig = "surfTurfWebhookConfig"
	KeyShopConfig    = "surfTurfShopConfig"
	KeyAdminSession  = "surfTurfAdminSession"
	KeyEmailBacklog  = "surfTurfEmailBacklog"
)

// ErrNotFound is returned when a requested record does not exist.
// It aliases gorm.ErrRecordNotFound for convenience and consistency
// across the service layer and handlers.
var ErrNotFound = gorm.ErrRecordNotFound

// Blob is one durable key/value row. Value always holds JSON.
type Blob struct {
	Key       string    `gorm:"type:TEXT NOT NULL;primaryKey"`
	Value     string    `gorm:"type:TEXT NOT NULL"`
	UpdatedAt time.Time `gorm:"type:DATETIME NOT NULL"`
}

// TableName returns the database table name for Blob.
func (Blob) TableName() string { return "blobs" }

// Load unmarshals the blob stored under key into dest, which must be a
// non-nil pointer.
//
// It returns (false, nil) when the key is absent or its value is not valid
// JSON for dest; in both cases dest is left untouched so the caller's
// zero/default value stands. Decoding goes through a scratch value because
// encoding/json partially populates the target before reporting a type
// error, which would half-apply a corrupt blob over pre-seeded defaults.
// A malformed value is logged and then treated exactly like a missing one.
// The error return is reserved for real database failures.
func Load(ctx context.Context, db *gorm.DB, key string, dest any) (bool, error) {
	var b Blob
	err := db.WithContext(ctx).First(&b, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	scratch := reflect.New(reflect.ValueOf(dest).Elem().Type())
	if uerr := json.Unmarshal([]byte(b.Value), scratch.Interface()); uerr != nil {
		log.Warn().Str("key", key).Err(uerr).Msg("malformed blob, using defaults")
		return false, nil
	}
	reflect.ValueOf(dest).Elem().Set(scratch.Elem())
	return true, nil
}

// Save marshals v and upserts it under key.
func Save(ctx context.Context, db *gorm.DB, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	b := Blob{Key: key, Value: string(raw), UpdatedAt: time.Now().UTC()}
	return db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&b).Error
}

// Delete removes the blob stored under key. Deleting an absent key is a no-op.
func Delete(ctx context.Context, db *gorm.DB, key string) error {
	return db.WithContext(ctx).Delete(&Blob{}, "key = ?", key).Error
}
