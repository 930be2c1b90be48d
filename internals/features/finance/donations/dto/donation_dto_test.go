package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	r := DonationRequest{Amount: " "}
	v, ok := r.ParseAmount()
	assert.True(t, ok)
	assert.Nil(t, v)

	r.Amount = "150.456"
	v, ok = r.ParseAmount()
	require.True(t, ok)
	require.NotNil(t, v)
	assert.Equal(t, 150.46, *v)

	for _, bad := range []string{"-1", "abc", "100000000", "NaN"} {
		r.Amount = bad
		_, ok = r.ParseAmount()
		assert.False(t, ok, bad)
	}
}
