package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elanicia/storefront/cart/internal/domain"
	"github.com/elanicia/storefront/cart/internal/notifier"
	"github.com/elanicia/storefront/cart/internal/pricing"
	"github.com/elanicia/storefront/cart/internal/render"
	"github.com/elanicia/storefront/cart/internal/repository"
	"github.com/elanicia/storefront/cart/internal/store"
)

type recordingSink struct {
	mu       sync.Mutex
	messages []string
}

func (s *recordingSink) Notify(_ context.Context, message string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, message)
	return nil
}

func (s *recordingSink) Messages() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	messages := make([]string, len(s.messages))
	copy(messages, s.messages)
	return messages
}

func newTestService(t *testing.T) (CartService, *recordingSink, *int) {
	t.Helper()
	c := context.Background()
	cartStore := store.New(c, repository.NewMemoryStorage(), notifier.New())
	engine := pricing.NewEngine(decimal.NewFromInt(50))
	sink := &recordingSink{}
	pulses := 0
	svc := NewCartService(
		cartStore,
		engine,
		render.NewRenderer(engine),
		sink,
		func() { pulses++ },
	)
	return svc, sink, &pulses
}

func TestAddItemNotifiesAndPulses(t *testing.T) {
	c := context.Background()
	svc, sink, pulses := newTestService(t)

	err := svc.AddItem(c, domain.LineItem{
		ID:    "w1",
		Name:  "Test",
		Price: "د.إ 1,000",
	}, 1)

	require.NoError(t, err)
	assert.Equal(t, 1, *pulses)
	require.Eventually(t, func() bool {
		return len(sink.Messages()) == 1
	}, time.Second, 10*time.Millisecond)
	assert.Equal(t, "added to cart: Test", sink.Messages()[0])
}

func TestAddItemInvalidItemFails(t *testing.T) {
	c := context.Background()
	svc, sink, pulses := newTestService(t)

	err := svc.AddItem(c, domain.LineItem{ID: "w1"}, 1)

	require.Error(t, err)
	assert.Zero(t, *pulses)
	assert.Empty(t, sink.Messages())
	assert.True(t, svc.GetCart(c).ShowEmptyState)
}

func TestMergeAndSnapshotScenario(t *testing.T) {
	c := context.Background()
	svc, _, _ := newTestService(t)

	item := domain.LineItem{ID: "w1", Name: "Test", Price: "د.إ 1,000"}
	require.NoError(t, svc.AddItem(c, item, 1))
	require.NoError(t, svc.AddItem(c, item, 2))

	vm := svc.GetCart(c)
	require.Len(t, vm.Rows, 1)
	assert.Equal(t, "w1", vm.Rows[0].ID)
	assert.Equal(t, int32(3), vm.Rows[0].Quantity)

	snapshot := svc.GetSnapshot(c)
	assert.Equal(t, 3, snapshot.TotalItems)
	assert.True(t, decimal.NewFromInt(1000).Equal(snapshot.Subtotal))
	assert.True(t, decimal.NewFromInt(50).Equal(snapshot.ShippingFee))
	assert.True(t, decimal.NewFromInt(1050).Equal(snapshot.Total))
}

func TestClearCartScenario(t *testing.T) {
	c := context.Background()
	svc, _, _ := newTestService(t)
	require.NoError(t, svc.AddItem(c, domain.LineItem{
		ID: "w1", Name: "Test", Price: "100",
	}, 2))

	svc.ClearCart(c)

	vm := svc.GetCart(c)
	assert.Empty(t, vm.Rows)
	assert.True(t, vm.ShowEmptyState)
	assert.False(t, vm.CheckoutEnabled)

	snapshot := svc.GetSnapshot(c)
	assert.Zero(t, snapshot.TotalItems)
	assert.True(t, snapshot.Subtotal.IsZero())
	assert.True(t, snapshot.ShippingFee.IsZero())
	assert.True(t, snapshot.Total.IsZero())
}

func TestQuantityOperations(t *testing.T) {
	c := context.Background()
	svc, _, _ := newTestService(t)
	require.NoError(t, svc.AddItem(c, domain.LineItem{
		ID: "w1", Name: "Test", Price: "100",
	}, 3))

	svc.SetQuantity(c, "w1", 7)
	assert.Equal(t, 7, svc.GetSnapshot(c).TotalItems)

	svc.ChangeQuantity(c, "w1", -2)
	assert.Equal(t, 5, svc.GetSnapshot(c).TotalItems)

	svc.SetQuantity(c, "w1", 0)
	assert.True(t, svc.GetCart(c).ShowEmptyState)

	svc.RemoveItem(c, "w1")
	assert.True(t, svc.GetCart(c).ShowEmptyState)
}
