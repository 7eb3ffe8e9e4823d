package domain

import "time"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type Address struct {
	ID          string `bson:"id" json:"id"`
	Country     string `bson:"country" json:"country"`
	City        string `bson:"city" json:"city"`
	Address1    string `bson:"address1" json:"address1"`
	Address2    string `bson:"address2,omitempty" json:"address2,omitempty"`
	ZipCode     string `bson:"zip_code" json:"zipCode"`
	AddressType string `bson:"address_type" json:"addressType"`
}

type User struct {
	ID           string    `bson:"_id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	PhoneNumber  string    `bson:"phone_number,omitempty" json:"phoneNumber,omitempty"`
	Role         string    `bson:"role" json:"role"`
	Addresses    []Address `bson:"addresses" json:"addresses"`
	CreatedAt    time.Time `bson:"created_at" json:"createdAt"`
}

type WithdrawMethod struct {
	BankName          string `bson:"bank_name" json:"bankName"`
	BankAccountNumber string `bson:"bank_account_number" json:"bankAccountNumber"`
	BankHolderName    string `bson:"bank_holder_name" json:"bankHolderName"`
}

// Shop is the seller account. AvailableBalance is mutated only by the
// "Delivered" order transition and by withdrawal creation.
type Shop struct {
	ID               string          `bson:"_id" json:"id"`
	Name             string          `bson:"name" json:"name"`
	Email            string          `bson:"email" json:"email"`
	PasswordHash     string          `bson:"password_hash" json:"-"`
	Description      string          `bson:"description,omitempty" json:"description,omitempty"`
	Address          string          `bson:"address" json:"address"`
	PhoneNumber      string          `bson:"phone_number,omitempty" json:"phoneNumber,omitempty"`
	ZipCode          string          `bson:"zip_code" json:"zipCode"`
	AvailableBalance float64         `bson:"available_balance" json:"availableBalance"`
	WithdrawMethod   *WithdrawMethod `bson:"withdraw_method,omitempty" json:"withdrawMethod,omitempty"`
	CreatedAt        time.Time       `bson:"created_at" json:"createdAt"`
}
