package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/tdngo/gomarket-api/internal/clock"
	domain "github.com/tdngo/gomarket-api/internal/entity"
)

func validCheckoutInput() CheckoutInput {
	return CheckoutInput{
		Cart: []domain.CartItem{
			{ProductID: "p1", ShopID: "shop-a", Name: "mug", Qty: 2, Price: 25},
			{ProductID: "p2", ShopID: "shop-b", Name: "pen", Qty: 1, Price: 50},
		},
		ShippingAddress: domain.ShippingAddress{Country: "NL", City: "Utrecht", Address: "Main 1", ZipCode: "1234"},
		UserID:          "user-1",
		TotalPrice:      100,
		PaymentInfo:     domain.PaymentInfo{ID: "pay-1", Status: "Succeeded", Type: "Card"},
	}
}

func TestCheckout_Execute(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("one order per distinct seller", func(t *testing.T) {
		repo := newFakeOrderRepo()
		pub := &fakePublisher{}
		uc := NewCheckout(repo, newFakeCache(), pub, clock.NewFixed(now))

		in := validCheckoutInput()
		in.Cart = append(in.Cart, domain.CartItem{ProductID: "p3", ShopID: "shop-a", Qty: 1, Price: 10})

		orders, err := uc.Execute(context.Background(), in)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(orders) != 2 {
			t.Fatalf("expected 2 orders for 2 sellers, got %d", len(orders))
		}
		if orders[0].ShopID != "shop-a" || orders[1].ShopID != "shop-b" {
			t.Fatalf("expected shop order [shop-a shop-b], got [%s %s]", orders[0].ShopID, orders[1].ShopID)
		}
		if len(orders[0].Cart) != 2 || len(orders[1].Cart) != 1 {
			t.Fatalf("expected cart split 2/1, got %d/%d", len(orders[0].Cart), len(orders[1].Cart))
		}
		for _, o := range orders {
			for _, item := range o.Cart {
				if item.ShopID != o.ShopID {
					t.Fatalf("order %s contains foreign item for shop %s", o.ID, item.ShopID)
				}
			}
		}
	})

	t.Run("siblings copy the combined total verbatim", func(t *testing.T) {
		repo := newFakeOrderRepo()
		uc := NewCheckout(repo, newFakeCache(), &fakePublisher{}, clock.NewFixed(now))

		orders, err := uc.Execute(context.Background(), validCheckoutInput())
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		for _, o := range orders {
			if o.TotalPrice != 100 {
				t.Fatalf("expected totalPrice 100 on every sibling, got %v", o.TotalPrice)
			}
		}
	})

	t.Run("siblings share shipping, buyer and payment context", func(t *testing.T) {
		repo := newFakeOrderRepo()
		uc := NewCheckout(repo, newFakeCache(), &fakePublisher{}, clock.NewFixed(now))

		in := validCheckoutInput()
		orders, err := uc.Execute(context.Background(), in)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		for _, o := range orders {
			if o.ShippingAddress != in.ShippingAddress {
				t.Fatalf("shipping address not inherited")
			}
			if o.UserID != in.UserID {
				t.Fatalf("buyer not inherited")
			}
			if o.PaymentInfo != in.PaymentInfo {
				t.Fatalf("payment info not inherited")
			}
			if o.Status != domain.StatusProcessing {
				t.Fatalf("expected initial status Processing, got %s", o.Status)
			}
			if !o.CreatedAt.Equal(now) {
				t.Fatalf("expected createdAt %v, got %v", now, o.CreatedAt)
			}
		}
	})

	t.Run("missing fields fail validation", func(t *testing.T) {
		uc := NewCheckout(newFakeOrderRepo(), newFakeCache(), &fakePublisher{}, clock.NewFixed(now))

		for name, mutate := range map[string]func(*CheckoutInput){
			"empty cart":       func(in *CheckoutInput) { in.Cart = nil },
			"no buyer":         func(in *CheckoutInput) { in.UserID = "" },
			"zero total":       func(in *CheckoutInput) { in.TotalPrice = 0 },
			"no shipping":      func(in *CheckoutInput) { in.ShippingAddress = domain.ShippingAddress{} },
			"no payment info":  func(in *CheckoutInput) { in.PaymentInfo = domain.PaymentInfo{} },
		} {
			in := validCheckoutInput()
			mutate(&in)
			if _, err := uc.Execute(context.Background(), in); err != domain.ErrValidation {
				t.Fatalf("%s: expected ErrValidation, got %v", name, err)
			}
		}
	})

	t.Run("publishes one created event per order", func(t *testing.T) {
		pub := &fakePublisher{}
		uc := NewCheckout(newFakeOrderRepo(), newFakeCache(), pub, clock.NewFixed(now))

		orders, err := uc.Execute(context.Background(), validCheckoutInput())
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(pub.orderCreated) != len(orders) {
			t.Fatalf("expected %d events, got %d", len(orders), len(pub.orderCreated))
		}
	})
}
