package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/tdngo/gomarket-api/internal/clock"
	domain "github.com/tdngo/gomarket-api/internal/entity"
)

type CheckoutInput struct {
	Cart            []domain.CartItem
	ShippingAddress domain.ShippingAddress
	UserID          string
	TotalPrice      float64
	PaymentInfo     domain.PaymentInfo
}

// Checkout partitions a multi-shop cart into per-shop orders. Each sibling
// order inherits the shared shipping/buyer/payment fields and the combined
// cart total verbatim (no per-seller subtotal is computed).
type Checkout struct {
	orders OrderRepo
	cache  OrderCache
	events EventPublisher
	clock  clock.Clock
}

func NewCheckout(orders OrderRepo, cache OrderCache, events EventPublisher, clk clock.Clock) *Checkout {
	return &Checkout{orders: orders, cache: cache, events: events, clock: clk}
}

func (uc *Checkout) Execute(ctx context.Context, in CheckoutInput) ([]domain.Order, error) {
	if len(in.Cart) == 0 || in.UserID == "" || in.TotalPrice <= 0 {
		return nil, domain.ErrValidation
	}
	if in.ShippingAddress == (domain.ShippingAddress{}) || in.PaymentInfo == (domain.PaymentInfo{}) {
		return nil, domain.ErrValidation
	}

	// Partition by shop, preserving cart encounter order.
	byShop := map[string][]domain.CartItem{}
	var shopIDs []string
	for _, item := range in.Cart {
		if _, ok := byShop[item.ShopID]; !ok {
			shopIDs = append(shopIDs, item.ShopID)
		}
		byShop[item.ShopID] = append(byShop[item.ShopID], item)
	}

	now := uc.clock.Now()
	created := make([]domain.Order, 0, len(shopIDs))
	for _, shopID := range shopIDs {
		order := domain.Order{
			ID:              uuid.NewString(),
			ShopID:          shopID,
			Cart:            byShop[shopID],
			ShippingAddress: in.ShippingAddress,
			UserID:          in.UserID,
			TotalPrice:      in.TotalPrice,
			Status:          domain.StatusProcessing,
			PaymentInfo:     in.PaymentInfo,
			PaidAt:          now,
			CreatedAt:       now,
		}
		// No transactionality across the loop: a failure partway through
		// leaves the already-created sibling orders committed.
		if err := uc.orders.Create(ctx, &order); err != nil {
			return created, err
		}

		_ = uc.cache.SetStatus(ctx, order.ID, string(order.Status))
		_ = uc.events.PublishOrderCreated(ctx, OrderCreatedMsg{
			OrderID:    order.ID,
			ShopID:     order.ShopID,
			UserID:     order.UserID,
			TotalPrice: order.TotalPrice,
		})
		created = append(created, order)
	}
	return created, nil
}
