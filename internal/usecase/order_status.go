package usecase

import (
	"context"
	"errors"

	"github.com/tdngo/gomarket-api/internal/clock"
	domain "github.com/tdngo/gomarket-api/internal/entity"
	"github.com/tdngo/gomarket-api/internal/logging"
)

// OrderLifecycle owns the order state machine and the side effects its
// transitions trigger on product counters and the seller balance.
//
// There is no transactionality between the status write and its side
// effects; a failure in between leaves them out of step.
type OrderLifecycle struct {
	orders    OrderRepo
	inventory ProductInventory
	shops     ShopRepo
	cache     OrderCache
	clock     clock.Clock
}

func NewOrderLifecycle(orders OrderRepo, inv ProductInventory, shops ShopRepo, cache OrderCache, clk clock.Clock) *OrderLifecycle {
	return &OrderLifecycle{orders: orders, inventory: inv, shops: shops, cache: cache, clock: clk}
}

// UpdateStatus applies a seller-driven transition.
func (uc *OrderLifecycle) UpdateStatus(ctx context.Context, orderID string, status domain.OrderStatus) (*domain.Order, error) {
	order, err := uc.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if status == domain.StatusTransferred {
		for _, item := range order.Cart {
			err := uc.inventory.AdjustCounters(ctx, item.ProductID, -item.Qty, item.Qty)
			if errors.Is(err, domain.ErrProductNotFound) {
				// Missing product record: skip the adjustment and move on.
				logging.FromCtx(ctx).Warn("stock adjustment skipped, product missing",
					"order_id", order.ID, "product_id", item.ProductID)
				continue
			}
			if err != nil {
				return nil, err
			}
		}
	}

	order.Status = status

	if status == domain.StatusDelivered {
		now := uc.clock.Now()
		order.DeliveredAt = &now
		order.PaymentInfo.Status = "Succeeded"

		// Balance is overwritten with this order's proceeds, not accumulated.
		proceeds := order.TotalPrice - order.ServiceCharge()
		if err := uc.shops.SetAvailableBalance(ctx, order.ShopID, proceeds); err != nil {
			return nil, err
		}
	}

	if err := uc.orders.Update(ctx, order); err != nil {
		return nil, err
	}
	_ = uc.cache.SetStatus(ctx, order.ID, string(order.Status))
	return order, nil
}

// RequestRefund applies a buyer-driven transition. The supplied status is
// stored as-is; callers send "Refund Requested" by convention.
func (uc *OrderLifecycle) RequestRefund(ctx context.Context, orderID string, status domain.OrderStatus) (*domain.Order, error) {
	order, err := uc.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	order.Status = status
	if err := uc.orders.Update(ctx, order); err != nil {
		return nil, err
	}
	_ = uc.cache.SetStatus(ctx, order.ID, string(order.Status))
	return order, nil
}

// AcceptRefund applies the seller-driven refund settlement. When the stored
// status equals "Refund Success" every cart line gets its counters restored:
// stock back up, sold-out back down.
func (uc *OrderLifecycle) AcceptRefund(ctx context.Context, orderID string, status domain.OrderStatus) (*domain.Order, error) {
	order, err := uc.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	order.Status = status
	if err := uc.orders.Update(ctx, order); err != nil {
		return nil, err
	}

	if status == domain.StatusRefundDone {
		for _, item := range order.Cart {
			err := uc.inventory.AdjustCounters(ctx, item.ProductID, item.Qty, -item.Qty)
			if errors.Is(err, domain.ErrProductNotFound) {
				logging.FromCtx(ctx).Warn("refund restock skipped, product missing",
					"order_id", order.ID, "product_id", item.ProductID)
				continue
			}
			if err != nil {
				return nil, err
			}
		}
	}

	_ = uc.cache.SetStatus(ctx, order.ID, string(order.Status))
	return order, nil
}
