package rescode_test

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"maludy/internal/domains/booking/rescode"
)

func TestGenerate_Format(t *testing.T) {
	pattern := regexp.MustCompile(`^MT-[ABCDEFGHJKLMNPQRSTUVWXYZ23456789]{8}$`)

	for i := 0; i < 10000; i++ {
		code := rescode.Generate("MT")

		assert.True(t, pattern.MatchString(code), "unexpected code %q", code)
	}
}

func TestGenerate_UppercasesPrefix(t *testing.T) {
	code := rescode.Generate("mt")

	assert.True(t, strings.HasPrefix(code, "MT-"))
}

func TestGenerate_NoAmbiguousSymbols(t *testing.T) {
	for i := 0; i < 1000; i++ {
		code := rescode.Generate("MT")

		assert.NotContains(t, code[3:], "0")
		assert.NotContains(t, code[3:], "O")
		assert.NotContains(t, code[3:], "1")
		assert.NotContains(t, code[3:], "I")
		assert.NotContains(t, code[3:], "L")
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "lowercase", in: "mt-abcd2345", want: "MT-ABCD2345"},
		{name: "surrounding whitespace", in: "  MT-ABCD2345  ", want: "MT-ABCD2345"},
		{name: "inner whitespace", in: "MT- ABCD 2345", want: "MT-ABCD2345"},
		{name: "tabs and newlines", in: "\tMT-ABCD2345\n", want: "MT-ABCD2345"},
		{name: "empty", in: "   ", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, rescode.Normalize(tt.in))
		})
	}
}
