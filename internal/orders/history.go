// Package orders owns the order history and the place-order orchestration.
// This file is the history store: an append-only list of completed orders in
// the blob store. Orders are never mutated after being appended, only read
// back by id or listed.
package orders

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Waldo881/Surf-Turf/internal/domain"
	"github.com/Waldo881/Surf-Turf/internal/store"
)

// ErrOrderNotFound is returned when no order with the requested id exists.
var ErrOrderNotFound = errors.New("order not found")

// Append adds order to the end of the persisted history list. An absent or
// unreadable history blob is treated as empty, never as an error.
func Append(ctx context.Context, db *gorm.DB, order domain.Order) error {
	var history []domain.Order
	if _, err := store.Load(ctx, db, store.KeyOrders, &history); err != nil {
		return err
	}
	history = append(history, order)
	return store.Save(ctx, db, store.KeyOrders, history)
}

// Get returns the order with the given id, or ErrOrderNotFound.
func Get(ctx context.Context, db *gorm.DB, id string) (*domain.Order, error) {
	var history []domain.Order
	if _, err := store.Load(ctx, db, store.KeyOrders, &history); err != nil {
		return nil, err
	}
	for i := range history {
		if history[i].ID == id {
			o := history[i]
			return &o, nil
		}
	}
	return nil, ErrOrderNotFound
}

// List returns a page of orders, newest first, along with the total count.
// page and pageSize below their minimums are coerced to 1 and 20.
func List(ctx context.Context, db *gorm.DB, page, pageSize int) ([]domain.Order, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 20
	}

	var history []domain.Order
	if _, err := store.Load(ctx, db, store.KeyOrders, &history); err != nil {
		return nil, 0, err
	}
	total := int64(len(history))

	// History is stored oldest-first; present newest-first.
	reversed := make([]domain.Order, 0, len(history))
	for i := len(history) - 1; i >= 0; i-- {
		reversed = append(reversed, history[i])
	}

	start := (page - 1) * pageSize
	if start >= len(reversed) {
		return []domain.Order{}, total, nil
	}
	end := start + pageSize
	if end > len(reversed) {
		end = len(reversed)
	}
	return reversed[start:end], total, nil
}
