package base64_test

import (
	"testing"

	"maludy/shared/base64"
)

func TestGetContentType(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "png data uri",
			input:    "data:image/png;base64,iVBORw0KGgo=",
			expected: "image/png",
		},
		{
			name:     "jpeg data uri",
			input:    "data:image/jpeg;base64,/9j/4AAQ",
			expected: "image/jpeg",
		},
		{
			name:     "no base64 marker",
			input:    "data:image/png",
			expected: "",
		},
		{
			name:     "plain string",
			input:    "hello",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base64.GetContentType(tt.input); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestDecode(t *testing.T) {
	raw, err := base64.Decode("data:text/plain;base64,aG9sYQ==")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if string(raw) != "hola" {
		t.Errorf("expected 'hola', got %q", raw)
	}

	if _, err := base64.Decode("data:text/plain;base64,!!!"); err == nil {
		t.Error("expected error for invalid payload")
	}
}
