package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	cases := []struct {
		amount   int64
		currency string
		want     string
	}{
		{5000, "VND", "5.000 VND"},
		{10000, "VND", "10.000 VND"},
		{1250000, "VND", "1.250.000 VND"},
		{0, "VND", "0 VND"},
		{750, "", "750"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, Format(tc.amount, tc.currency))
	}
}
