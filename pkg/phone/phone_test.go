package phone

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "local 08 prefix", in: "08123456789", want: "+628123456789"},
		{name: "bare country code", in: "6281234567890", want: "+6281234567890"},
		{name: "already canonical", in: "+6281234567890", want: "+6281234567890"},
		{name: "bare local number", in: "81234567890", want: "+6281234567890"},
		{name: "spaces and dashes", in: "0812-3456 789", want: "+628123456789"},
		{name: "dots", in: "0812.3456.789", want: "+628123456789"},
		{name: "empty", in: "", want: ""},
		{name: "whitespace only", in: "   ", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	numbers := []string{"08123456789", "6281234567890", "81234567890"}

	for _, n := range numbers {
		once := Normalize(n)
		assert.Equal(t, once, Normalize(once))
	}
}
