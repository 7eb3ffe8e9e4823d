package domain

import "time"

// Coupon is a percentage discount code scoped to one shop. Name is the
// unique lookup key.
type Coupon struct {
	ID              string    `bson:"_id" json:"id"`
	ShopID          string    `bson:"shop_id" json:"shopId"`
	Name            string    `bson:"name" json:"name"`
	Value           float64   `bson:"value" json:"value"`
	MinAmount       float64   `bson:"min_amount,omitempty" json:"minAmount,omitempty"`
	MaxAmount       float64   `bson:"max_amount,omitempty" json:"maxAmount,omitempty"`
	SelectedProduct string    `bson:"selected_product,omitempty" json:"selectedProduct,omitempty"`
	CreatedAt       time.Time `bson:"created_at" json:"createdAt"`
}

func (c *Coupon) Validate() error {
	if c.ShopID == "" || c.Name == "" || c.Value <= 0 {
		return ErrValidation
	}
	return nil
}
