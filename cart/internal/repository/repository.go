// Package repository persists the serialized cart under one fixed key.
//
// Reading a missing or corrupt key yields an empty cart; only an unreachable
// backend surfaces as an error, which the store answers by degrading to
// in-memory for the session.
package repository

import (
	"context"

	"github.com/elanicia/storefront/cart/internal/domain"
)

type Storage interface {
	Load(c context.Context) ([]domain.LineItem, error)
	Save(c context.Context, items []domain.LineItem) error
	Delete(c context.Context) error
}
