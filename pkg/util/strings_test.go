package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDigitsOnly(t *testing.T) {
	assert.Equal(t, "95000", DigitsOnly("95,000*"))
	assert.Equal(t, "121696", DigitsOnly(" 121,696 "))
	assert.Equal(t, "", DigitsOnly("n/a"))
	assert.Equal(t, "2015", DigitsOnly("season 2015"))
}

func TestGetAsInteger(t *testing.T) {
	n, err := GetAsInteger(42)
	assert.NoError(t, err)
	assert.Equal(t, 42, n)

	// JSON numbers arrive as float64
	n, err = GetAsInteger(float64(61))
	assert.NoError(t, err)
	assert.Equal(t, 61, n)

	n, err = GetAsInteger("107")
	assert.NoError(t, err)
	assert.Equal(t, 107, n)

	_, err = GetAsInteger(nil)
	assert.Error(t, err)
	_, err = GetAsInteger(61.5)
	assert.Error(t, err)
	_, err = GetAsInteger("eight")
	assert.Error(t, err)
}

func TestLevenshteinDistance(t *testing.T) {
	assert.Equal(t, 0, LevenshteinDistance("hawthorn", "hawthorn"))
	assert.Equal(t, 8, LevenshteinDistance("", "hawthorn"))
	assert.Equal(t, 1, LevenshteinDistance("st kilda", "st.kilda"))
}

func TestFuzzyMatchScore(t *testing.T) {
	assert.Equal(t, 1.0, FuzzyMatchScore("Geelong", "geelong"))
	assert.Equal(t, 1.0, FuzzyMatchScore("", ""))

	near := FuzzyMatchScore("gw sydney_richmond", "gws giants_richmond")
	far := FuzzyMatchScore("gw sydney_richmond", "carlton_essendon")
	assert.Greater(t, near, far, "closer pairings must score higher")
}
