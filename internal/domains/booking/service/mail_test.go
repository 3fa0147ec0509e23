package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"maludy/config"
	"maludy/internal/domains/booking/model"
	"maludy/shared/constant"
)

func TestBuildBookingEmails(t *testing.T) {
	cfg := &config.Config{
		Agency: config.Agency{
			Name:     "Maludy Tour",
			Initials: "MT",
			Email:    "maludytour@gmail.com",
			Phone:    "+18297732814",
			Web:      "https://www.maludytour.com",
		},
	}

	booking := model.Booking{
		No:             "MT-ABCD2345",
		CustomerName:   "Jane Roe",
		CustomerEmail:  "jane@example.com",
		CustomerPhone:  "+10000000000",
		Date:           time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC),
		Schedule:       "09:00",
		PickupLocation: "Hotel Lobby",
		Adults:         2,
		Children:       1,
		PaymentMethod:  model.PaymentMethodCash,
		TotalPrice:     135,
	}

	t.Run("renders agency branding and booking details", func(t *testing.T) {
		customer, company, err := buildBookingEmails(cfg, booking, "Saona Island", "https://cdn.example.com/receipts/MT-ABCD2345.pdf")
		require.NoError(t, err)

		assert.Equal(t, []string{"jane@example.com"}, customer.To)
		assert.Equal(t, "Booking confirmation #MT-ABCD2345", customer.Subject)
		assert.Contains(t, customer.HTML, cfg.Agency.Name)
		assert.Contains(t, customer.HTML, cfg.Agency.Email)
		assert.Contains(t, customer.HTML, cfg.Agency.Phone)
		assert.Contains(t, customer.HTML, cfg.Agency.Web)
		assert.Contains(t, customer.HTML, "Saona Island")
		assert.Contains(t, customer.HTML, "2026-09-12")
		assert.Contains(t, customer.HTML, "<td>3</td>")

		assert.Equal(t, []string{cfg.Agency.Email}, company.To)
		assert.Equal(t, "New booking: #MT-ABCD2345", company.Subject)
		assert.Contains(t, company.HTML, booking.CustomerName)
		assert.Contains(t, company.HTML, booking.CustomerEmail)
		assert.Contains(t, company.HTML, model.PaymentMethodCash)
	})

	t.Run("attaches the receipt to both emails", func(t *testing.T) {
		customer, company, err := buildBookingEmails(cfg, booking, "Saona Island", "https://cdn.example.com/receipts/MT-ABCD2345.pdf")
		require.NoError(t, err)

		require.Len(t, customer.Attachments, 1)
		assert.Equal(t, "MT-ABCD2345.pdf", customer.Attachments[0].Filename)
		assert.Equal(t, "https://cdn.example.com/receipts/MT-ABCD2345.pdf", customer.Attachments[0].Path)
		assert.Equal(t, constant.ContentTypePDF, customer.Attachments[0].ContentType)
		assert.Equal(t, customer.Attachments, company.Attachments)
	})
}
