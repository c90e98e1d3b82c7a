package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupValidCodes(t *testing.T) {
	expected := map[string]int{
		"WELCOME10":  10,
		"SAVE20":     20,
		"LUXURY15":   15,
		"DESIGNER25": 25,
	}
	for code, pct := range expected {
		got, gotPct, err := Lookup(code)
		require.NoError(t, err)
		assert.Equal(t, code, got)
		assert.Equal(t, pct, gotPct)
	}
}

func TestLookupNormalizesCase(t *testing.T) {
	code, pct, err := Lookup("  welcome10 ")
	require.NoError(t, err)
	assert.Equal(t, "WELCOME10", code)
	assert.Equal(t, 10, pct)
}

func TestLookupUnknownCode(t *testing.T) {
	_, _, err := Lookup("BOGUS50")
	assert.ErrorIs(t, err, ErrInvalidCode)
}

func TestLookupMissingCode(t *testing.T) {
	_, _, err := Lookup("   ")
	assert.ErrorIs(t, err, ErrMissingCode)
}

func TestUnknownCodeLeavesCartUnchanged(t *testing.T) {
	s := NewStore()
	s.AddItem(Item{ProductID: 1, Price: 10000, Quantity: 1})

	if _, pct, err := Lookup("BOGUS50"); err == nil {
		s.ApplyDiscount("BOGUS50", pct)
	}

	code, pct := s.AppliedDiscount()
	assert.Empty(t, code)
	assert.Zero(t, pct)
	assert.Equal(t, 10000, s.Total())
}
