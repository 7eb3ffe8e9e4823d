package domain

import "time"

type OrderStatus string

const (
	StatusProcessing  OrderStatus = "Processing"
	StatusTransferred OrderStatus = "Transferred to delivery partner"
	StatusDelivered   OrderStatus = "Delivered"
	StatusRefundReq   OrderStatus = "Refund Requested"
	StatusRefundDone  OrderStatus = "Refund Success"
)

// ServiceChargeRate is the platform cut deducted from seller proceeds on delivery.
const ServiceChargeRate = 0.10

type CartItem struct {
	ProductID string  `bson:"product_id" json:"productId"`
	ShopID    string  `bson:"shop_id" json:"shopId"`
	Name      string  `bson:"name" json:"name"`
	Qty       int     `bson:"qty" json:"qty"`
	Price     float64 `bson:"price" json:"price"`
}

type ShippingAddress struct {
	Country string `bson:"country" json:"country"`
	City    string `bson:"city" json:"city"`
	Address string `bson:"address" json:"address"`
	ZipCode string `bson:"zip_code" json:"zipCode"`
}

type PaymentInfo struct {
	ID     string `bson:"id,omitempty" json:"id,omitempty"`
	Status string `bson:"status,omitempty" json:"status,omitempty"`
	Type   string `bson:"type,omitempty" json:"type,omitempty"`
}

// Order is a single-seller record of purchased items, addressing, payment and
// fulfillment status. A multi-seller checkout produces sibling orders sharing
// the same buyer/shipping/payment context.
type Order struct {
	ID              string          `bson:"_id" json:"id"`
	ShopID          string          `bson:"shop_id" json:"shopId"`
	Cart            []CartItem      `bson:"cart" json:"cart"`
	ShippingAddress ShippingAddress `bson:"shipping_address" json:"shippingAddress"`
	UserID          string          `bson:"user_id" json:"userId"`
	TotalPrice      float64         `bson:"total_price" json:"totalPrice"`
	Status          OrderStatus     `bson:"status" json:"status"`
	PaymentInfo     PaymentInfo     `bson:"payment_info" json:"paymentInfo"`
	PaidAt          time.Time       `bson:"paid_at" json:"paidAt"`
	DeliveredAt     *time.Time      `bson:"delivered_at,omitempty" json:"deliveredAt,omitempty"`
	CreatedAt       time.Time       `bson:"created_at" json:"createdAt"`
}

// ServiceCharge returns the platform deduction for this order's total.
func (o *Order) ServiceCharge() float64 {
	return o.TotalPrice * ServiceChargeRate
}
