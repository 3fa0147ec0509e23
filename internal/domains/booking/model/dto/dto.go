package dto

import (
	"time"

	"github.com/google/uuid"

	"maludy/internal/domains/booking/model"
	"maludy/internal/domains/booking/pricing"
	"maludy/shared/constant"
	"maludy/shared/failure"
	gModel "maludy/shared/model"
	"maludy/shared/timezone"
)

type GuestCounts struct {
	Seniors  int `json:"seniors"  validate:"gte=0"`
	Adults   int `json:"adults"   validate:"gte=0"`
	Youths   int `json:"youths"   validate:"gte=0"`
	Children int `json:"children" validate:"gte=0"`
	Babies   int `json:"babies"   validate:"gte=0"`
}

func (g GuestCounts) ToCounts() pricing.Counts {
	return pricing.Counts{
		Seniors:  g.Seniors,
		Adults:   g.Adults,
		Youths:   g.Youths,
		Children: g.Children,
		Babies:   g.Babies,
	}
}

type CreateBookingRequest struct {
	ActivityID    string `json:"activityId"    validate:"required"`
	CustomerName  string `json:"customerName"  validate:"required,min=2,max=120"`
	CustomerEmail string `json:"customerEmail" validate:"required,email"`
	CustomerPhone string `json:"customerPhone" validate:"required,min=7"`

	Date           string `json:"date"           validate:"required"`
	Schedule       string `json:"schedule"       validate:"required"`
	PickupLocation string `json:"pickupLocation" validate:"required,min=2"`

	Seniors  int `json:"seniors"  validate:"gte=0"`
	Adults   int `json:"adults"   validate:"gte=0"`
	Youths   int `json:"youths"   validate:"gte=0"`
	Children int `json:"children" validate:"gte=0"`
	Babies   int `json:"babies"   validate:"gte=0"`

	TotalPrice    int    `json:"totalPrice"    validate:"gte=0"`
	PaymentMethod string `json:"paymentMethod" validate:"required,oneof=CASH PAYPAL"`

	// PaymentStatus is accepted for wire compatibility but ignored: bookings
	// are always created PENDING.
	PaymentStatus string `json:"paymentStatus" validate:"omitempty"`
}

func (c *CreateBookingRequest) Counts() pricing.Counts {
	return pricing.Counts{
		Seniors:  c.Seniors,
		Adults:   c.Adults,
		Youths:   c.Youths,
		Children: c.Children,
		Babies:   c.Babies,
	}
}

// ParseDate accepts either a bare calendar day or a full RFC 3339 timestamp,
// interpreted in the application timezone.
func (c *CreateBookingRequest) ParseDate() (time.Time, error) {
	date, err := timezone.Parse(constant.CalendarDayFormat, c.Date)
	if err == nil {
		return date, nil
	}

	return timezone.Parse(constant.DateFormat, c.Date)
}

// CrossFieldViolations evaluates the business rules that span multiple fields.
// All violations are reported together; the headcount and chaperone rules both
// attach to "adults", matching the paths callers already display against.
func (c *CreateBookingRequest) CrossFieldViolations(date time.Time) []failure.FieldViolation {
	var violations []failure.FieldViolation

	if timezone.StartOfDay(date).Before(timezone.Today()) {
		violations = append(violations, failure.FieldViolation{
			Field:   "date",
			Message: "date must be today or later",
		})
	}

	counts := c.Counts()

	if counts.TotalPeople() < 1 {
		violations = append(violations, failure.FieldViolation{
			Field:   "adults",
			Message: "at least 1 person is required",
		})
	}

	if counts.Dependents() > 0 && counts.Chaperones() == 0 {
		violations = append(violations, failure.FieldViolation{
			Field:   "adults",
			Message: "at least 1 adult or senior is required when minors or babies are present",
		})
	}

	return violations
}

func (c *CreateBookingRequest) ToModel(no string, date time.Time, user string) model.Booking {
	return model.Booking{
		ID:         uuid.NewString(),
		No:         no,
		ActivityID: c.ActivityID,

		CustomerName:  c.CustomerName,
		CustomerEmail: c.CustomerEmail,
		CustomerPhone: c.CustomerPhone,

		Date:           timezone.StartOfDay(date),
		Schedule:       c.Schedule,
		PickupLocation: c.PickupLocation,

		Seniors:  c.Seniors,
		Adults:   c.Adults,
		Youths:   c.Youths,
		Children: c.Children,
		Babies:   c.Babies,

		PaymentMethod: c.PaymentMethod,
		PaymentStatus: model.PaymentStatusPending,
		TotalPrice:    c.TotalPrice,

		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type CreateBookingResponse struct {
	No     string `json:"no"`
	PDFURL string `json:"pdfUrl"`
}

type CustomerResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type BookingResponse struct {
	No             string           `json:"no"`
	ActivityName   string           `json:"activityName"`
	DateISO        string           `json:"dateISO"`
	Schedule       string           `json:"schedule"`
	PickupLocation string           `json:"pickupLocation"`
	PaymentStatus  string           `json:"paymentStatus"`
	PaymentMethod  string           `json:"paymentMethod"`
	TotalPrice     int              `json:"totalPrice"`
	ReceiptURL     string           `json:"receiptUrl,omitempty"`
	Guests         GuestCounts      `json:"guests"`
	Customer       CustomerResponse `json:"customer"`
}

func (r *BookingResponse) FromModel(mod model.Booking) {
	r.No = mod.No
	r.ActivityName = mod.ActivityName
	r.DateISO = mod.Date.Format(constant.DateFormat)
	r.Schedule = mod.Schedule
	r.PickupLocation = mod.PickupLocation
	r.PaymentStatus = model.NormalizePaymentStatus(mod.PaymentStatus)
	r.PaymentMethod = mod.PaymentMethod
	r.TotalPrice = mod.TotalPrice
	r.ReceiptURL = mod.ReceiptURL
	r.Guests = GuestCounts{
		Seniors:  mod.Seniors,
		Adults:   mod.Adults,
		Youths:   mod.Youths,
		Children: mod.Children,
		Babies:   mod.Babies,
	}
	r.Customer = CustomerResponse{
		Name:  mod.CustomerName,
		Email: mod.CustomerEmail,
		Phone: mod.CustomerPhone,
	}
}

type QuoteRequest struct {
	ActivityID string `json:"activityId" validate:"required"`
	GuestCounts
}

type QuoteResponse struct {
	TotalPrice   int `json:"totalPrice"`
	TotalPeople  int `json:"totalPeople"`
	PayingPeople int `json:"payingPeople"`
}

func (r *QuoteResponse) FromQuote(quote pricing.Quote) {
	r.TotalPrice = quote.TotalPrice
	r.TotalPeople = quote.TotalPeople
	r.PayingPeople = quote.PayingPeople
}
