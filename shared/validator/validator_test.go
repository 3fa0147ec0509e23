package validator_test

import (
	"errors"
	"strings"
	"testing"

	"maludy/shared/failure"
	"maludy/shared/validator"
)

type bookingContact struct {
	Name  string `validate:"required,min=2,max=120"      json:"customerName"`
	Email string `validate:"required,email"              json:"customerEmail"`
	Phone string `validate:"required,min=7"              json:"customerPhone"`
	Plan  string `validate:"omitempty,oneof=CASH PAYPAL" json:"paymentMethod"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name        string
		data        bookingContact
		expectError bool
	}{
		{
			name: "valid struct",
			data: bookingContact{
				Name:  "John Doe",
				Email: "john@example.com",
				Phone: "+1809555123",
				Plan:  "CASH",
			},
			expectError: false,
		},
		{
			name: "missing required field",
			data: bookingContact{
				Email: "john@example.com",
				Phone: "+1809555123",
			},
			expectError: true,
		},
		{
			name: "invalid email",
			data: bookingContact{
				Name:  "John Doe",
				Email: "invalid-email",
				Phone: "+1809555123",
			},
			expectError: true,
		},
		{
			name: "phone too short",
			data: bookingContact{
				Name:  "John Doe",
				Email: "john@example.com",
				Phone: "123",
			},
			expectError: true,
		},
		{
			name: "invalid payment method",
			data: bookingContact{
				Name:  "John Doe",
				Email: "john@example.com",
				Phone: "+1809555123",
				Plan:  "BITCOIN",
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(&tt.data)

			if tt.expectError && err == nil {
				t.Error("expected error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestValidateStruct_CollectsAllViolations(t *testing.T) {
	data := bookingContact{
		Name:  "J",
		Email: "not-an-email",
		Phone: "123",
	}

	err := validator.ValidateStruct(&data)
	if err == nil {
		t.Fatal("expected error")
	}

	var validation *failure.Validation
	if !errors.As(err, &validation) {
		t.Fatalf("expected *failure.Validation, got %T", err)
	}

	if len(validation.Violations) != 3 {
		t.Fatalf("expected 3 violations, got %d: %v", len(validation.Violations), validation.Violations)
	}

	fields := map[string]bool{}
	for _, v := range validation.Violations {
		fields[v.Field] = true
	}

	for _, want := range []string{"customerName", "customerEmail", "customerPhone"} {
		if !fields[want] {
			t.Errorf("expected violation for JSON field %s, got %v", want, fields)
		}
	}
}

func TestValidate_DecodesAndValidates(t *testing.T) {
	body := strings.NewReader(`{"customerName":"John Doe","customerEmail":"john@example.com","customerPhone":"+1809555123"}`)

	var data bookingContact
	if err := validator.Validate(body, &data); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if data.Name != "John Doe" {
		t.Errorf("decode failed: %+v", data)
	}

	if err := validator.Validate(strings.NewReader("{not json"), &data); err == nil {
		t.Error("expected decode error")
	}
}
