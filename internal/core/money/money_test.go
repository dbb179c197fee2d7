package money

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFromFloat verifies major-to-minor unit conversion.
func TestFromFloat(t *testing.T) {
	assert.Equal(t, Amount(10000), FromFloat(100))
	assert.Equal(t, Amount(5000), FromFloat(50.0))
	assert.Equal(t, Amount(1999), FromFloat(19.99))
	assert.Equal(t, Amount(10), FromFloat(0.1))
	assert.Equal(t, Amount(0), FromFloat(0))
}

// TestAmount_Fraction verifies fee computation rounds to the nearest cent.
func TestAmount_Fraction(t *testing.T) {
	assert.Equal(t, Amount(500), FromFloat(50).Fraction(0.10))
	assert.Equal(t, Amount(1000), FromFloat(100).Fraction(0.10))
	// 19.99 * 0.10 = 1.999 -> 2.00
	assert.Equal(t, Amount(200), FromFloat(19.99).Fraction(0.10))
}

// TestAmount_MarshalJSON verifies the two-decimal wire format.
func TestAmount_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(Amount(1050))
	require.NoError(t, err)
	assert.Equal(t, "10.50", string(data))

	data, err = json.Marshal(Amount(0))
	require.NoError(t, err)
	assert.Equal(t, "0.00", string(data))
}

// TestAmount_UnmarshalJSON verifies parsing plain JSON numbers.
func TestAmount_UnmarshalJSON(t *testing.T) {
	var a Amount
	require.NoError(t, json.Unmarshal([]byte("19.99"), &a))
	assert.Equal(t, Amount(1999), a)

	require.NoError(t, json.Unmarshal([]byte("100"), &a))
	assert.Equal(t, Amount(10000), a)

	err := json.Unmarshal([]byte(`"abc"`), &a)
	assert.Error(t, err)
}
