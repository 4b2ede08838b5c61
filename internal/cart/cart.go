// Package cart implements the cart manager: an in-memory list of line items
// mutated by add/update/remove commands and mirrored to the blob store after
// every mutation, so the live cart and its persisted copy are never out of
// sync.
//
// The manager is the single owner of the cart state. All mutators take the
// internal mutex and complete persistence before returning, which gives the
// same serialization the original single-threaded event loop provided for
// free.
package cart

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/Waldo881/Surf-Turf/internal/domain"
	"github.com/Waldo881/Surf-Turf/internal/store"
)

// ErrCartEmpty is returned when an operation requires a non-empty cart
// (clearing, checking out).
var ErrCartEmpty = errors.New("cart is empty")

// ErrNoClearPending is returned by ConfirmClear when no clear request is
// outstanding.
var ErrNoClearPending = errors.New("no pending clear request")

// Service owns the session cart. Construct it with New, which restores any
// persisted cart from the store.
type Service struct {
	db *gorm.DB

	mu           sync.Mutex
	items        []domain.LineItem
	clearPending bool
	lastID       int64

	// nowMillis stands in for time.Now in tests.
	nowMillis func() int64
}

// New returns a cart service backed by db, restored from the persisted cart
// when one exists. An absent or unreadable cart blob starts empty.
func New(ctx context.Context, db *gorm.DB) (*Service, error) {
	s := &Service{
		db:        db,
		nowMillis: func() int64 { return time.Now().UnixMilli() },
	}
	var items []domain.LineItem
	found, err := store.Load(ctx, db, store.KeyCart, &items)
	if err != nil {
		return nil, err
	}
	if found {
		s.items = items
		for _, it := range items {
			if it.ID > s.lastID {
				s.lastID = it.ID
			}
		}
	}
	return s, nil
}

// AddItem adds one unit of (name, variant) at unitPrice. If a row for the
// same product already exists its quantity is incremented; otherwise a new
// row with quantity 1 and a fresh id is appended. The cart is persisted
// before AddItem returns.
func (s *Service) AddItem(ctx context.Context, name, variant string, unitPrice int) (domain.LineItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].SameProduct(name, variant) {
			s.items[i].Quantity++
			if err := s.persist(ctx); err != nil {
				s.items[i].Quantity--
				return domain.LineItem{}, err
			}
			s.logAdded(s.items[i])
			return s.items[i], nil
		}
	}

	item := domain.LineItem{
		ID:        s.nextID(),
		Name:      name,
		Variant:   variant,
		UnitPrice: unitPrice,
		Quantity:  1,
	}
	s.items = append(s.items, item)
	if err := s.persist(ctx); err != nil {
		s.items = s.items[:len(s.items)-1]
		return domain.LineItem{}, err
	}
	s.logAdded(item)
	return item, nil
}

// UpdateQuantity applies delta to the row with the given id. An unknown id is
// a no-op. A resulting quantity of zero or below removes the row, exactly as
// RemoveItem would.
func (s *Service) UpdateQuantity(ctx context.Context, id int64, delta int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID != id {
			continue
		}
		if s.items[i].Quantity+delta <= 0 {
			return s.removeLocked(ctx, id)
		}
		s.items[i].Quantity += delta
		if err := s.persist(ctx); err != nil {
			s.items[i].Quantity -= delta
			return err
		}
		return nil
	}
	return nil
}

// RemoveItem deletes the row with the given id. An unknown id is a no-op.
func (s *Service) RemoveItem(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.removeLocked(ctx, id)
}

// RequestClear begins the two-step clear interaction. It fails with
// ErrCartEmpty when there is nothing to clear; otherwise the service waits
// for ConfirmClear or CancelClear.
func (s *Service) RequestClear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.items) == 0 {
		return ErrCartEmpty
	}
	s.clearPending = true
	return nil
}

// ConfirmClear empties the cart. It only acts after RequestClear; a confirm
// without a pending request is rejected so a stray second click cannot wipe
// the cart.
func (s *Service) ConfirmClear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.clearPending {
		return ErrNoClearPending
	}
	s.clearPending = false
	prev := s.items
	s.items = nil
	if err := s.persist(ctx); err != nil {
		s.items = prev
		return err
	}
	log.Info().Msg("cart cleared")
	return nil
}

// CancelClear abandons a pending clear request. Safe to call at any time.
func (s *Service) CancelClear() {
	s.mu.Lock()
	s.clearPending = false
	s.mu.Unlock()
}

// Empty empties the cart without the confirmation handshake. It is used
// after a successful order, where the user's submit already expressed
// intent.
func (s *Service) Empty(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev := s.items
	s.items = nil
	s.clearPending = false
	if err := s.persist(ctx); err != nil {
		s.items = prev
		return err
	}
	return nil
}

// Items returns a copy of the current rows in insertion order.
func (s *Service) Items() []domain.LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.LineItem, len(s.items))
	copy(out, s.items)
	return out
}

// Total returns the derived cart total: the sum of unitPrice*quantity over
// all rows. An empty cart totals 0.
func (s *Service) Total() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.totalLocked()
}

// Len returns the number of distinct rows.
func (s *Service) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

func (s *Service) totalLocked() int {
	total := 0
	for _, it := range s.items {
		total += it.LineTotal()
	}
	return total
}

func (s *Service) removeLocked(ctx context.Context, id int64) error {
	prev := s.items
	kept := make([]domain.LineItem, 0, len(s.items))
	for _, it := range s.items {
		if it.ID != id {
			kept = append(kept, it)
		}
	}
	if len(kept) == len(prev) {
		return nil
	}
	s.items = kept
	if err := s.persist(ctx); err != nil {
		s.items = prev
		return err
	}
	return nil
}

// persist mirrors the cart to the blob store. Callers hold s.mu.
func (s *Service) persist(ctx context.Context) error {
	items := s.items
	if items == nil {
		items = []domain.LineItem{}
	}
	return store.Save(ctx, s.db, store.KeyCart, items)
}

// nextID derives a fresh row id from the wall clock, bumping past the last
// issued id so two adds within the same millisecond stay distinct.
func (s *Service) nextID() int64 {
	id := s.nowMillis()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}

func (s *Service) logAdded(it domain.LineItem) {
	log.Info().
		Str("item", it.Name).
		Str("variant", it.Variant).
		Int("quantity", it.Quantity).
		Msg("added to cart")
}
