package usecase

import (
	"context"

	domain "github.com/tdngo/gomarket-api/internal/entity"
)

type fakeOrderRepo struct {
	orders    map[string]*domain.Order
	createErr error
	seq       []string
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: map[string]*domain.Order{}}
}

func (f *fakeOrderRepo) Create(ctx context.Context, o *domain.Order) error {
	if f.createErr != nil {
		return f.createErr
	}
	cp := *o
	f.orders[o.ID] = &cp
	f.seq = append(f.seq, o.ID)
	return nil
}

func (f *fakeOrderRepo) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	o, ok := f.orders[id]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	cp := *o
	return &cp, nil
}

func (f *fakeOrderRepo) Update(ctx context.Context, o *domain.Order) error {
	if _, ok := f.orders[o.ID]; !ok {
		return domain.ErrOrderNotFound
	}
	cp := *o
	f.orders[o.ID] = &cp
	return nil
}

func (f *fakeOrderRepo) UpdatePaymentStatus(ctx context.Context, orderID, paymentID, status string) error {
	o, ok := f.orders[orderID]
	if !ok {
		return domain.ErrOrderNotFound
	}
	o.PaymentInfo.Status = status
	if paymentID != "" {
		o.PaymentInfo.ID = paymentID
	}
	return nil
}

func (f *fakeOrderRepo) ListByUser(ctx context.Context, userID string) ([]domain.Order, error) {
	return nil, nil
}

func (f *fakeOrderRepo) ListByShop(ctx context.Context, shopID string) ([]domain.Order, error) {
	return nil, nil
}

func (f *fakeOrderRepo) ListAll(ctx context.Context) ([]domain.Order, error) { return nil, nil }

type fakeInventory struct {
	stock   map[string]int
	sold    map[string]int
	missing map[string]bool
}

func newFakeInventory() *fakeInventory {
	return &fakeInventory{stock: map[string]int{}, sold: map[string]int{}, missing: map[string]bool{}}
}

func (f *fakeInventory) AdjustCounters(ctx context.Context, productID string, stockDelta, soldDelta int) error {
	if f.missing[productID] {
		return domain.ErrProductNotFound
	}
	f.stock[productID] += stockDelta
	f.sold[productID] += soldDelta
	return nil
}

type fakeShopRepo struct {
	shops map[string]*domain.Shop
}

func newFakeShopRepo(shops ...*domain.Shop) *fakeShopRepo {
	f := &fakeShopRepo{shops: map[string]*domain.Shop{}}
	for _, s := range shops {
		f.shops[s.ID] = s
	}
	return f
}

func (f *fakeShopRepo) GetByID(ctx context.Context, id string) (*domain.Shop, error) {
	s, ok := f.shops[id]
	if !ok {
		return nil, domain.ErrShopNotFound
	}
	return s, nil
}

func (f *fakeShopRepo) SetAvailableBalance(ctx context.Context, shopID string, balance float64) error {
	s, ok := f.shops[shopID]
	if !ok {
		return domain.ErrShopNotFound
	}
	s.AvailableBalance = balance
	return nil
}

func (f *fakeShopRepo) IncAvailableBalance(ctx context.Context, shopID string, delta float64) error {
	s, ok := f.shops[shopID]
	if !ok {
		return domain.ErrShopNotFound
	}
	s.AvailableBalance += delta
	return nil
}

type fakeCache struct {
	statuses map[string]string
}

func newFakeCache() *fakeCache {
	return &fakeCache{statuses: map[string]string{}}
}

func (f *fakeCache) SetStatus(ctx context.Context, orderID, status string) error {
	f.statuses[orderID] = status
	return nil
}

func (f *fakeCache) GetStatus(ctx context.Context, orderID string) (string, error) {
	s, ok := f.statuses[orderID]
	if !ok {
		return "", domain.ErrNotFound
	}
	return s, nil
}

type fakePublisher struct {
	orderCreated        []OrderCreatedMsg
	conversationUpdated []ConversationUpdatedMsg
}

func (f *fakePublisher) PublishOrderCreated(ctx context.Context, msg OrderCreatedMsg) error {
	f.orderCreated = append(f.orderCreated, msg)
	return nil
}

func (f *fakePublisher) PublishConversationUpdated(ctx context.Context, msg ConversationUpdatedMsg) error {
	f.conversationUpdated = append(f.conversationUpdated, msg)
	return nil
}

type fakeWithdrawRepo struct {
	withdraws map[string]*domain.Withdraw
}

func newFakeWithdrawRepo() *fakeWithdrawRepo {
	return &fakeWithdrawRepo{withdraws: map[string]*domain.Withdraw{}}
}

func (f *fakeWithdrawRepo) Create(ctx context.Context, w *domain.Withdraw) error {
	cp := *w
	f.withdraws[w.ID] = &cp
	return nil
}

func (f *fakeWithdrawRepo) UpdateStatus(ctx context.Context, id string, status domain.WithdrawStatus) (*domain.Withdraw, error) {
	w, ok := f.withdraws[id]
	if !ok {
		return nil, domain.ErrWithdrawNotFound
	}
	w.Status = status
	cp := *w
	return &cp, nil
}

func (f *fakeWithdrawRepo) ListAll(ctx context.Context) ([]domain.Withdraw, error) { return nil, nil }
