// Package store owns the persisted list of line items. It is the single
// source of truth for the cart; every total is a pure function of its state.
package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/elanicia/storefront/cart/internal/domain"
	"github.com/elanicia/storefront/cart/internal/notifier"
	"github.com/elanicia/storefront/cart/internal/repository"
	"github.com/elanicia/storefront/cart/pkg/money"
	"github.com/elanicia/storefront/internal/errors"
	"github.com/elanicia/storefront/internal/log"
)

// Store serializes all mutations behind a single-writer mutex, so callers
// never observe a half-updated cart. Every completed mutation persists the
// cart and publishes exactly one change event after the lock is released.
//
// When the storage backend becomes unreachable the store degrades to
// in-memory for the rest of the session: mutations keep succeeding, the
// degradation is logged once, and nothing survives a restart.
type Store struct {
	mu       sync.Mutex
	items    []domain.LineItem
	storage  repository.Storage
	notifier *notifier.Notifier
	validate *validator.Validate

	degraded     bool
	degradedOnce sync.Once
}

// New reads the persisted cart through storage. A missing or corrupt key
// yields an empty cart; an unreachable backend degrades the store immediately.
func New(c context.Context, storage repository.Storage, n *notifier.Notifier) *Store {
	s := &Store{
		storage:  storage,
		notifier: n,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}

	logger := zerolog.Ctx(c).
		With().
		Str(log.KEY_TAG, "Store New").
		Str(log.KEY_PROCESS, "loading cart from storage").
		Logger()

	logger.Info().Msg("loading cart from storage")
	items, err := storage.Load(c)
	if err != nil {
		s.markDegraded(c, err)
		s.items = []domain.LineItem{}
		return s
	}
	s.items = domain.Normalize(c, items)
	logger.Info().Int(log.KEY_CART_ITEMS, len(s.items)).Msg("loaded cart from storage")
	return s
}

// GetAll returns a defensive copy of the cart in insertion order.
func (s *Store) GetAll() []domain.LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := make([]domain.LineItem, 0, len(s.items))
	for _, item := range s.items {
		items = append(items, item.Clone())
	}
	return items
}

// Count returns the sum of all quantities.
func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for _, item := range s.items {
		count += int(item.Quantity)
	}
	return count
}

// Degraded reports whether persistence has been lost for this session.
func (s *Store) Degraded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.degraded
}

// Add inserts item with the given quantity, or increments the existing
// quantity when the id is already present. The stored price and cached
// originalPrice of an existing item never change. Quantity below 1 counts
// as 1. Only a malformed item is an error; a malformed price string is not,
// it is logged and the amount is cached as 0.
func (s *Store) Add(c context.Context, item domain.LineItem, quantity int32) error {
	logger := zerolog.Ctx(c).
		With().
		Str(log.KEY_TAG, "Store Add").
		Str(log.KEY_ITEM_ID, item.ID).
		Str(log.KEY_ITEM_NAME, item.Name).
		Int32(log.KEY_QUANTITY, quantity).
		Logger()

	if quantity < 1 {
		quantity = 1
	}
	item.Quantity = quantity

	if err := s.validate.StructCtx(c, item); err != nil {
		err = fmt.Errorf("failed validating line item with error=%w", err)
		logger.Error().Err(err).Msg(err.Error())
		return err
	}

	s.mu.Lock()
	if pos, ok := s.find(item.ID); ok {
		s.items[pos].Quantity += quantity
		logger.Info().
			Int32("newQuantity", s.items[pos].Quantity).
			Msg("incremented quantity of existing line item")
	} else {
		amount, err := money.ParseAmount(item.Price)
		if err != nil {
			logger.Warn().Err(err).Str(log.KEY_PRICE, item.Price).
				Msg("price is malformed, caching amount 0")
			amount = decimal.Zero
		}
		item.OriginalPrice = amount
		s.items = append(s.items, item.Clone())
		logger.Info().Msg("inserted new line item")
	}
	s.persist(c)
	s.mu.Unlock()

	s.publish()
	return nil
}

// Remove deletes the item with the given id. An absent id is a no-op, not an
// error; the cart is persisted and published either way, which keeps Remove
// idempotent.
func (s *Store) Remove(c context.Context, id string) {
	logger := zerolog.Ctx(c).
		With().
		Str(log.KEY_TAG, "Store Remove").
		Str(log.KEY_ITEM_ID, id).
		Logger()

	s.mu.Lock()
	if pos, ok := s.find(id); ok {
		s.items = append(s.items[:pos], s.items[pos+1:]...)
		logger.Info().Msg("removed line item")
	} else {
		logger.Info().Msg("line item not in cart, nothing to remove")
	}
	s.persist(c)
	s.mu.Unlock()

	s.publish()
}

// SetQuantity replaces the quantity of the item with the given id. A quantity
// of zero or less removes the item; an absent id is a no-op.
func (s *Store) SetQuantity(c context.Context, id string, quantity int32) {
	if quantity <= 0 {
		s.Remove(c, id)
		return
	}

	logger := zerolog.Ctx(c).
		With().
		Str(log.KEY_TAG, "Store SetQuantity").
		Str(log.KEY_ITEM_ID, id).
		Int32(log.KEY_QUANTITY, quantity).
		Logger()

	s.mu.Lock()
	pos, ok := s.find(id)
	if !ok {
		s.mu.Unlock()
		logger.Info().Msg("line item not in cart, nothing to update")
		return
	}
	s.applyQuantityLocked(c, pos, quantity)
	s.mu.Unlock()

	logger.Info().Msg("updated line item quantity")
	s.publish()
}

// ChangeQuantity applies a delta on top of the current quantity. An absent id
// is a no-op; a result of zero or less removes the item. Reading the current
// quantity and applying the result happen in one critical section, so
// concurrent deltas never lose an update.
func (s *Store) ChangeQuantity(c context.Context, id string, delta int32) {
	logger := zerolog.Ctx(c).
		With().
		Str(log.KEY_TAG, "Store ChangeQuantity").
		Str(log.KEY_ITEM_ID, id).
		Int32(log.KEY_DELTA, delta).
		Logger()

	s.mu.Lock()
	pos, ok := s.find(id)
	if !ok {
		s.mu.Unlock()
		logger.Info().Msg("line item not in cart, nothing to change")
		return
	}
	s.applyQuantityLocked(c, pos, s.items[pos].Quantity+delta)
	s.mu.Unlock()

	logger.Info().Msg("changed line item quantity")
	s.publish()
}

// Clear empties the cart and deletes the storage key.
func (s *Store) Clear(c context.Context) {
	logger := zerolog.Ctx(c).
		With().
		Str(log.KEY_TAG, "Store Clear").
		Logger()

	s.mu.Lock()
	s.items = []domain.LineItem{}
	if !s.degraded {
		if err := s.storage.Delete(c); err != nil {
			s.markDegraded(c, err)
		}
	}
	s.mu.Unlock()

	logger.Info().Msg("cleared cart")
	s.publish()
}

// applyQuantityLocked must be called with the lock held. A quantity of zero
// or less removes the item at pos; otherwise it replaces the quantity. The
// cart is persisted either way; the caller publishes after unlocking.
func (s *Store) applyQuantityLocked(c context.Context, pos int, quantity int32) {
	if quantity <= 0 {
		s.items = append(s.items[:pos], s.items[pos+1:]...)
	} else {
		s.items[pos].Quantity = quantity
	}
	s.persist(c)
}

// find must be called with the lock held.
func (s *Store) find(id string) (int, bool) {
	for i, item := range s.items {
		if item.ID == id {
			return i, true
		}
	}
	return 0, false
}

// persist must be called with the lock held. Persistence failure never fails
// the mutation; it switches the store to in-memory mode for the session.
func (s *Store) persist(c context.Context) {
	if s.degraded {
		return
	}
	if err := s.storage.Save(c, s.items); err != nil {
		s.markDegraded(c, err)
	}
}

func (s *Store) markDegraded(c context.Context, err error) {
	s.degraded = true
	s.degradedOnce.Do(func() {
		err = fmt.Errorf("%w: %w", errors.ErrStorageUnavailable, err)
		zerolog.Ctx(c).
			Warn().
			Err(err).
			Str(log.KEY_TAG, "Store markDegraded").
			Msg("cart storage unavailable, continuing in-memory for this session")
	})
}

func (s *Store) publish() {
	if s.notifier != nil {
		s.notifier.Publish()
	}
}
