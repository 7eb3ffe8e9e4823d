package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/tdngo/gomarket-api/internal/clock"
	domain "github.com/tdngo/gomarket-api/internal/entity"
)

func TestWithdrawals_Create(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 3, 3, 14, 0, 0, 0, time.UTC)

	t.Run("debits the seller balance up front", func(t *testing.T) {
		shop := &domain.Shop{ID: "shop-a", AvailableBalance: 250}
		uc := NewWithdrawals(newFakeWithdrawRepo(), newFakeShopRepo(shop), clock.NewFixed(now))

		w, err := uc.Create(context.Background(), "shop-a", 100)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if shop.AvailableBalance != 150 {
			t.Fatalf("expected balance 150, got %v", shop.AvailableBalance)
		}
		if w.Status != domain.WithdrawProcessing {
			t.Fatalf("expected status %q, got %q", domain.WithdrawProcessing, w.Status)
		}
		if w.ID == "" {
			t.Fatal("expected generated id")
		}
		if !w.CreatedAt.Equal(now) || !w.UpdatedAt.Equal(now) {
			t.Fatalf("timestamps not stamped from clock: %v / %v", w.CreatedAt, w.UpdatedAt)
		}
	})

	t.Run("rejects bad input", func(t *testing.T) {
		uc := NewWithdrawals(newFakeWithdrawRepo(), newFakeShopRepo(), clock.NewFixed(now))

		if _, err := uc.Create(context.Background(), "", 100); err != domain.ErrValidation {
			t.Fatalf("empty shop: expected ErrValidation, got %v", err)
		}
		if _, err := uc.Create(context.Background(), "shop-a", 0); err != domain.ErrValidation {
			t.Fatalf("zero amount: expected ErrValidation, got %v", err)
		}
		if _, err := uc.Create(context.Background(), "shop-a", -5); err != domain.ErrValidation {
			t.Fatalf("negative amount: expected ErrValidation, got %v", err)
		}
	})

	t.Run("unknown shop", func(t *testing.T) {
		uc := NewWithdrawals(newFakeWithdrawRepo(), newFakeShopRepo(), clock.NewFixed(now))
		if _, err := uc.Create(context.Background(), "ghost", 50); err != domain.ErrShopNotFound {
			t.Fatalf("expected ErrShopNotFound, got %v", err)
		}
	})
}

func TestWithdrawals_Settle(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 3, 3, 14, 0, 0, 0, time.UTC)

	t.Run("marks the request succeeded", func(t *testing.T) {
		shop := &domain.Shop{ID: "shop-a", AvailableBalance: 250}
		uc := NewWithdrawals(newFakeWithdrawRepo(), newFakeShopRepo(shop), clock.NewFixed(now))

		w, err := uc.Create(context.Background(), "shop-a", 100)
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		settled, err := uc.Settle(context.Background(), w.ID)
		if err != nil {
			t.Fatalf("settle: %v", err)
		}
		if settled.Status != domain.WithdrawSucceed {
			t.Fatalf("expected status %q, got %q", domain.WithdrawSucceed, settled.Status)
		}
		// Settlement never credits the balance back.
		if shop.AvailableBalance != 150 {
			t.Fatalf("balance must stay debited, got %v", shop.AvailableBalance)
		}
	})

	t.Run("unknown request", func(t *testing.T) {
		uc := NewWithdrawals(newFakeWithdrawRepo(), newFakeShopRepo(), clock.NewFixed(now))
		if _, err := uc.Settle(context.Background(), "nope"); err != domain.ErrWithdrawNotFound {
			t.Fatalf("expected ErrWithdrawNotFound, got %v", err)
		}
	})
}
