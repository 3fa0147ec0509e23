package model

import (
	"strings"
	"time"

	"maludy/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID         = "id"
	FieldNo         = "no"
	FieldActivityID = "activity_id"
	FieldReceiptURL = "receipt_url"
)

const (
	PaymentMethodCash   = "CASH"
	PaymentMethodPaypal = "PAYPAL"

	PaymentStatusPending   = "PENDING"
	PaymentStatusPaid      = "PAID"
	PaymentStatusCancelled = "CANCELLED"
)

// NormalizePaymentStatus folds the historical free-form casings and the
// "canceled" spelling onto the closed enum. Unrecognized input maps to PENDING.
func NormalizePaymentStatus(raw string) string {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case PaymentStatusPaid:
		return PaymentStatusPaid
	case PaymentStatusCancelled, "CANCELED":
		return PaymentStatusCancelled
	default:
		return PaymentStatusPending
	}
}

type Booking struct {
	ID         string `db:"id"`
	No         string `db:"no"`
	ActivityID string `db:"activity_id"`

	CustomerName  string `db:"customer_name"`
	CustomerEmail string `db:"customer_email"`
	CustomerPhone string `db:"customer_phone"`

	Date           time.Time `db:"date"`
	Schedule       string    `db:"schedule"`
	PickupLocation string    `db:"pickup_location"`

	Seniors  int `db:"seniors"`
	Adults   int `db:"adults"`
	Youths   int `db:"youths"`
	Children int `db:"children"`
	Babies   int `db:"babies"`

	PaymentMethod string `db:"payment_method"`
	PaymentStatus string `db:"payment_status"`
	TotalPrice    int    `db:"total_price"`

	ReceiptURL string `db:"receipt_url"`

	ActivityName string `db:"activity_name" table:"activities" column:"title"`

	model.Metadata
}

func (Booking) GetJoinQuery() string {
	return "LEFT JOIN activities ON activities.id = bookings.activity_id"
}
