package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/tdngo/gomarket-api/internal/clock"
	domain "github.com/tdngo/gomarket-api/internal/entity"
)

// Withdrawals decrements the seller balance on request and flips the status
// on settlement. No balance increment is modeled on completion.
type Withdrawals struct {
	withdraws WithdrawRepo
	shops     ShopRepo
	clock     clock.Clock
}

func NewWithdrawals(withdraws WithdrawRepo, shops ShopRepo, clk clock.Clock) *Withdrawals {
	return &Withdrawals{withdraws: withdraws, shops: shops, clock: clk}
}

func (uc *Withdrawals) Create(ctx context.Context, shopID string, amount float64) (*domain.Withdraw, error) {
	if shopID == "" || amount <= 0 {
		return nil, domain.ErrValidation
	}
	if _, err := uc.shops.GetByID(ctx, shopID); err != nil {
		return nil, err
	}

	if err := uc.shops.IncAvailableBalance(ctx, shopID, -amount); err != nil {
		return nil, err
	}

	now := uc.clock.Now()
	w := domain.Withdraw{
		ID:        uuid.NewString(),
		ShopID:    shopID,
		Amount:    amount,
		Status:    domain.WithdrawProcessing,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.withdraws.Create(ctx, &w); err != nil {
		return nil, err
	}
	return &w, nil
}

func (uc *Withdrawals) Settle(ctx context.Context, id string) (*domain.Withdraw, error) {
	return uc.withdraws.UpdateStatus(ctx, id, domain.WithdrawSucceed)
}
