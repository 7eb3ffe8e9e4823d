package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/tdngo/gomarket-api/internal/clock"
	domain "github.com/tdngo/gomarket-api/internal/entity"
)

func seedOrder(repo *fakeOrderRepo) *domain.Order {
	o := &domain.Order{
		ID:     "order-1",
		ShopID: "shop-a",
		Cart: []domain.CartItem{
			{ProductID: "p1", ShopID: "shop-a", Qty: 2, Price: 25},
			{ProductID: "p2", ShopID: "shop-a", Qty: 3, Price: 10},
		},
		UserID:     "user-1",
		TotalPrice: 100,
		Status:     domain.StatusProcessing,
	}
	repo.orders[o.ID] = o
	return o
}

func TestOrderLifecycle_UpdateStatus(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 3, 2, 9, 0, 0, 0, time.UTC)

	t.Run("transfer to delivery partner adjusts product counters", func(t *testing.T) {
		repo := newFakeOrderRepo()
		seedOrder(repo)
		inv := newFakeInventory()
		uc := NewOrderLifecycle(repo, inv, newFakeShopRepo(), newFakeCache(), clock.NewFixed(now))

		order, err := uc.UpdateStatus(context.Background(), "order-1", domain.StatusTransferred)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if order.Status != domain.StatusTransferred {
			t.Fatalf("expected status %q, got %q", domain.StatusTransferred, order.Status)
		}
		if inv.stock["p1"] != -2 || inv.sold["p1"] != 2 {
			t.Fatalf("p1 counters: stock %d sold %d, want -2/+2", inv.stock["p1"], inv.sold["p1"])
		}
		if inv.stock["p2"] != -3 || inv.sold["p2"] != 3 {
			t.Fatalf("p2 counters: stock %d sold %d, want -3/+3", inv.stock["p2"], inv.sold["p2"])
		}
	})

	t.Run("missing product is skipped silently", func(t *testing.T) {
		repo := newFakeOrderRepo()
		seedOrder(repo)
		inv := newFakeInventory()
		inv.missing["p1"] = true
		uc := NewOrderLifecycle(repo, inv, newFakeShopRepo(), newFakeCache(), clock.NewFixed(now))

		order, err := uc.UpdateStatus(context.Background(), "order-1", domain.StatusTransferred)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if order.Status != domain.StatusTransferred {
			t.Fatalf("transition should proceed despite missing product")
		}
		if inv.stock["p2"] != -3 {
			t.Fatalf("remaining products should still be adjusted, got %d", inv.stock["p2"])
		}
	})

	t.Run("delivered stamps timestamp and overwrites seller balance", func(t *testing.T) {
		repo := newFakeOrderRepo()
		seedOrder(repo)
		shop := &domain.Shop{ID: "shop-a", AvailableBalance: 0}
		shops := newFakeShopRepo(shop)
		uc := NewOrderLifecycle(repo, newFakeInventory(), shops, newFakeCache(), clock.NewFixed(now))

		order, err := uc.UpdateStatus(context.Background(), "order-1", domain.StatusDelivered)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if order.DeliveredAt == nil || !order.DeliveredAt.Equal(now) {
			t.Fatalf("expected deliveredAt %v, got %v", now, order.DeliveredAt)
		}
		if order.PaymentInfo.Status != "Succeeded" {
			t.Fatalf("expected payment status Succeeded, got %q", order.PaymentInfo.Status)
		}
		if shop.AvailableBalance != 90 {
			t.Fatalf("expected balance 0.9*100=90, got %v", shop.AvailableBalance)
		}
	})

	t.Run("delivered overwrites rather than accumulates", func(t *testing.T) {
		repo := newFakeOrderRepo()
		seedOrder(repo)
		shop := &domain.Shop{ID: "shop-a", AvailableBalance: 500}
		uc := NewOrderLifecycle(repo, newFakeInventory(), newFakeShopRepo(shop), newFakeCache(), clock.NewFixed(now))

		if _, err := uc.UpdateStatus(context.Background(), "order-1", domain.StatusDelivered); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if shop.AvailableBalance != 90 {
			t.Fatalf("prior balance must be overwritten, got %v", shop.AvailableBalance)
		}
	})

	t.Run("unknown order", func(t *testing.T) {
		uc := NewOrderLifecycle(newFakeOrderRepo(), newFakeInventory(), newFakeShopRepo(), newFakeCache(), clock.NewFixed(now))
		if _, err := uc.UpdateStatus(context.Background(), "nope", domain.StatusDelivered); err != domain.ErrOrderNotFound {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})
}

func TestOrderLifecycle_Refunds(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 3, 2, 9, 0, 0, 0, time.UTC)

	t.Run("request stores caller-supplied status as-is", func(t *testing.T) {
		repo := newFakeOrderRepo()
		seedOrder(repo)
		uc := NewOrderLifecycle(repo, newFakeInventory(), newFakeShopRepo(), newFakeCache(), clock.NewFixed(now))

		order, err := uc.RequestRefund(context.Background(), "order-1", domain.StatusRefundReq)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if order.Status != domain.StatusRefundReq {
			t.Fatalf("expected %q, got %q", domain.StatusRefundReq, order.Status)
		}
	})

	t.Run("refund success restores counters", func(t *testing.T) {
		repo := newFakeOrderRepo()
		seedOrder(repo)
		inv := newFakeInventory()
		uc := NewOrderLifecycle(repo, inv, newFakeShopRepo(), newFakeCache(), clock.NewFixed(now))

		// Forward transition, then the inverse.
		if _, err := uc.UpdateStatus(context.Background(), "order-1", domain.StatusTransferred); err != nil {
			t.Fatalf("transfer: %v", err)
		}
		if _, err := uc.AcceptRefund(context.Background(), "order-1", domain.StatusRefundDone); err != nil {
			t.Fatalf("refund: %v", err)
		}

		for _, pid := range []string{"p1", "p2"} {
			if inv.stock[pid] != 0 || inv.sold[pid] != 0 {
				t.Fatalf("%s counters not restored: stock %d sold %d", pid, inv.stock[pid], inv.sold[pid])
			}
		}
	})

	t.Run("other refund statuses leave counters alone", func(t *testing.T) {
		repo := newFakeOrderRepo()
		seedOrder(repo)
		inv := newFakeInventory()
		uc := NewOrderLifecycle(repo, inv, newFakeShopRepo(), newFakeCache(), clock.NewFixed(now))

		if _, err := uc.AcceptRefund(context.Background(), "order-1", "Refund Rejected"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(inv.stock) != 0 {
			t.Fatalf("no counter changes expected, got %v", inv.stock)
		}
	})
}
