package domain

import "time"

// Product carries the catalog fields plus the inventory view (Stock/SoldOut)
// that order status transitions mutate.
type Product struct {
	ID            string    `bson:"_id" json:"id"`
	ShopID        string    `bson:"shop_id" json:"shopId"`
	Name          string    `bson:"name" json:"name"`
	Description   string    `bson:"description" json:"description"`
	Category      string    `bson:"category" json:"category"`
	Tags          string    `bson:"tags,omitempty" json:"tags,omitempty"`
	OriginalPrice float64   `bson:"original_price" json:"originalPrice"`
	DiscountPrice float64   `bson:"discount_price" json:"discountPrice"`
	Stock         int       `bson:"stock" json:"stock"`
	SoldOut       int       `bson:"sold_out" json:"soldOut"`
	CreatedAt     time.Time `bson:"created_at" json:"createdAt"`
}

func (p *Product) Validate() error {
	if p.ShopID == "" || p.Name == "" || p.Category == "" {
		return ErrValidation
	}
	return nil
}

// Event is a flash-sale listing: product-shaped with a sale window.
type Event struct {
	ID            string    `bson:"_id" json:"id"`
	ShopID        string    `bson:"shop_id" json:"shopId"`
	Name          string    `bson:"name" json:"name"`
	Description   string    `bson:"description" json:"description"`
	Category      string    `bson:"category" json:"category"`
	OriginalPrice float64   `bson:"original_price" json:"originalPrice"`
	DiscountPrice float64   `bson:"discount_price" json:"discountPrice"`
	Stock         int       `bson:"stock" json:"stock"`
	SoldOut       int       `bson:"sold_out" json:"soldOut"`
	StartDate     time.Time `bson:"start_date" json:"startDate"`
	FinishDate    time.Time `bson:"finish_date" json:"finishDate"`
	Status        string    `bson:"status" json:"status"`
	CreatedAt     time.Time `bson:"created_at" json:"createdAt"`
}

const EventStatusRunning = "Running"

func (e *Event) Validate() error {
	if e.ShopID == "" || e.Name == "" || e.StartDate.IsZero() || e.FinishDate.IsZero() {
		return ErrValidation
	}
	return nil
}
