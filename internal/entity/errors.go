package domain

import "errors"

var (
	ErrValidation       = errors.New("missing required fields")
	ErrNotFound         = errors.New("not found")
	ErrOrderNotFound    = errors.New("order not found")
	ErrProductNotFound  = errors.New("product not found")
	ErrShopNotFound     = errors.New("shop not found")
	ErrUserNotFound     = errors.New("user not found")
	ErrWithdrawNotFound = errors.New("withdraw not found")
	ErrEmailTaken       = errors.New("email already registered")
	ErrCouponTaken      = errors.New("coupon name already exists")
	ErrBadCredentials   = errors.New("invalid email or password")
)
