package dto_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"maludy/internal/domains/booking/model/dto"
	"maludy/shared/timezone"
)

func validRequest() dto.CreateBookingRequest {
	return dto.CreateBookingRequest{
		ActivityID:     "a1",
		CustomerName:   "Jane Roe",
		CustomerEmail:  "jane@example.com",
		CustomerPhone:  "+18095551234",
		Schedule:       "9:00 AM",
		PickupLocation: "Bavaro",
		Adults:         2,
		PaymentMethod:  "CASH",
	}
}

func TestCreateBookingRequest_CrossFieldViolations_DateBoundary(t *testing.T) {
	tests := []struct {
		name       string
		date       time.Time
		wantFields []string
	}{
		{
			name: "today at midnight passes",
			date: timezone.Today(),
		},
		{
			name: "later today passes",
			date: timezone.Today().Add(10 * time.Hour),
		},
		{
			name:       "yesterday at 23:59 fails",
			date:       timezone.Today().AddDate(0, 0, -1).Add(23*time.Hour + 59*time.Minute),
			wantFields: []string{"date"},
		},
		{
			name: "tomorrow passes",
			date: timezone.Today().AddDate(0, 0, 1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()

			violations := req.CrossFieldViolations(tt.date)

			require.Len(t, violations, len(tt.wantFields))
			for i, field := range tt.wantFields {
				assert.Equal(t, field, violations[i].Field)
			}
		})
	}
}

func TestCreateBookingRequest_CrossFieldViolations_Party(t *testing.T) {
	t.Run("children without chaperone", func(t *testing.T) {
		req := validRequest()
		req.Adults = 0
		req.Children = 2

		violations := req.CrossFieldViolations(timezone.Today())

		require.Len(t, violations, 1)
		assert.Equal(t, "adults", violations[0].Field)
	})

	t.Run("senior counts as chaperone", func(t *testing.T) {
		req := validRequest()
		req.Adults = 0
		req.Seniors = 1
		req.Children = 2

		violations := req.CrossFieldViolations(timezone.Today())

		assert.Empty(t, violations)
	})

	t.Run("empty party", func(t *testing.T) {
		req := validRequest()
		req.Adults = 0

		violations := req.CrossFieldViolations(timezone.Today())

		require.Len(t, violations, 1)
		assert.Equal(t, "adults", violations[0].Field)
	})
}
