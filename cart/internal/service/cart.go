package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/elanicia/storefront/cart/internal/common/otel"
	"github.com/elanicia/storefront/cart/internal/domain"
	"github.com/elanicia/storefront/cart/internal/pricing"
	"github.com/elanicia/storefront/cart/internal/render"
	"github.com/elanicia/storefront/cart/internal/store"
	commonErrors "github.com/elanicia/storefront/internal/errors"
	"github.com/elanicia/storefront/internal/log"
	"github.com/elanicia/storefront/notification"
)

// CartService orchestrates the cart store, pricing engine and renderer, and
// drives the cosmetic side-channels (toast, icon pulse) after an add.
type CartService struct {
	store    *store.Store
	engine   pricing.Engine
	renderer render.Renderer
	sink     notification.Sink
	pulse    func()
}

// NewCartService wires the service. sink and pulse may be nil; both are
// best-effort collaborators, not part of the mutation contract.
func NewCartService(
	store *store.Store,
	engine pricing.Engine,
	renderer render.Renderer,
	sink notification.Sink,
	pulse func(),
) CartService {
	return CartService{
		store:    store,
		engine:   engine,
		renderer: renderer,
		sink:     sink,
		pulse:    pulse,
	}
}

func (svc CartService) AddItem(
	c context.Context,
	item domain.LineItem,
	quantity int32,
) error {
	c, span := otel.Tracer.Start(c, "CartService AddItem")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KEY_TAG, "CartService AddItem").
		Str(log.KEY_ITEM_ID, item.ID).
		Int32(log.KEY_QUANTITY, quantity).
		Logger()

	logger = logger.With().Str(log.KEY_PROCESS, "adding item to cart").Logger()
	logger.Info().Msg("adding item to cart")
	c = logger.WithContext(c)
	if err := svc.store.Add(c, item, quantity); err != nil {
		err = fmt.Errorf("failed adding item to cart with error=%w", err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return err
	}
	mutationCounter.WithLabelValues("add").Inc()
	logger.Info().Msg("added item to cart")

	svc.notifyAdded(c, item.Name)
	if svc.pulse != nil {
		svc.pulse()
	}
	return nil
}

func (svc CartService) RemoveItem(c context.Context, id string) {
	c, span := otel.Tracer.Start(c, "CartService RemoveItem")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KEY_TAG, "CartService RemoveItem").
		Str(log.KEY_ITEM_ID, id).
		Logger()

	logger.Info().Msg("removing item from cart")
	c = logger.WithContext(c)
	svc.store.Remove(c, id)
	mutationCounter.WithLabelValues("remove").Inc()
	logger.Info().Msg("removed item from cart")
}

func (svc CartService) SetQuantity(c context.Context, id string, quantity int32) {
	c, span := otel.Tracer.Start(c, "CartService SetQuantity")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KEY_TAG, "CartService SetQuantity").
		Str(log.KEY_ITEM_ID, id).
		Int32(log.KEY_QUANTITY, quantity).
		Logger()

	logger.Info().Msg("setting item quantity")
	c = logger.WithContext(c)
	svc.store.SetQuantity(c, id, quantity)
	mutationCounter.WithLabelValues("set_quantity").Inc()
	logger.Info().Msg("set item quantity")
}

func (svc CartService) ChangeQuantity(c context.Context, id string, delta int32) {
	c, span := otel.Tracer.Start(c, "CartService ChangeQuantity")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KEY_TAG, "CartService ChangeQuantity").
		Str(log.KEY_ITEM_ID, id).
		Int32(log.KEY_DELTA, delta).
		Logger()

	logger.Info().Msg("changing item quantity")
	c = logger.WithContext(c)
	svc.store.ChangeQuantity(c, id, delta)
	mutationCounter.WithLabelValues("change_quantity").Inc()
	logger.Info().Msg("changed item quantity")
}

func (svc CartService) ClearCart(c context.Context) {
	c, span := otel.Tracer.Start(c, "CartService ClearCart")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KEY_TAG, "CartService ClearCart").
		Logger()

	logger.Info().Msg("clearing cart")
	c = logger.WithContext(c)
	svc.store.Clear(c)
	mutationCounter.WithLabelValues("clear").Inc()
	logger.Info().Msg("cleared cart")
}

// GetCart builds the display view model from the current cart.
func (svc CartService) GetCart(c context.Context) render.ViewModel {
	c, span := otel.Tracer.Start(c, "CartService GetCart")
	defer span.End()

	return svc.renderer.BuildViewModel(svc.store.GetAll())
}

// GetSnapshot recomputes the pricing snapshot from the current cart.
func (svc CartService) GetSnapshot(c context.Context) pricing.Snapshot {
	c, span := otel.Tracer.Start(c, "CartService GetSnapshot")
	defer span.End()

	return svc.engine.ComputeSnapshot(svc.store.GetAll())
}

// notifyAdded fires the toast without blocking the mutation; a failing sink
// is logged and otherwise ignored.
func (svc CartService) notifyAdded(c context.Context, name string) {
	if svc.sink == nil {
		return
	}
	c = context.WithoutCancel(c)
	go func() {
		logger := zerolog.Ctx(c).
			With().
			Str(log.KEY_TAG, "CartService notifyAdded").
			Logger()
		if err := svc.sink.Notify(c, "added to cart: "+name); err != nil {
			logger.Warn().Err(err).Msg("failed notifying user")
		}
	}()
}
