package convert

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTPS_KnownValues(t *testing.T) {
	cases := []struct {
		wpm  int
		want string
	}{
		{0, "0.00"},
		{60, "1.30"},
		{139, "3.01"},
		{141, "3.06"},
		{158, "3.42"},
		{200, "4.33"},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, FormatTPS(TPS(float64(c.wpm))), "wpm=%d", c.wpm)
	}
}

func TestTPS_RoundingGranularity(t *testing.T) {
	// Two decimals exactly, never more.
	assert.InDelta(t, 3.01, TPS(139), 1e-12)
	assert.InDelta(t, 1.30, TPS(60), 1e-12)
}

func TestFormatTPS_AlwaysTwoDecimals(t *testing.T) {
	assert.Equal(t, "1.30", FormatTPS(1.3))
	assert.Equal(t, "0.00", FormatTPS(0))
	assert.Equal(t, "4.33", FormatTPS(4.33))
}
