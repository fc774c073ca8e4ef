package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCapitalizeFirst(t *testing.T) {
	assert.Equal(t, "Rice", CapitalizeFirst("rice"))
	assert.Equal(t, "Rice", CapitalizeFirst("Rice"))
	assert.Equal(t, "Fresh farms", CapitalizeFirst("fresh farms"))
	assert.Equal(t, "", CapitalizeFirst(""))
}

func TestDigitsOnly(t *testing.T) {
	assert.Equal(t, "9876543210", DigitsOnly("(987) 654-3210", 10))
	assert.Equal(t, "9876543210", DigitsOnly("98765432109999", 10))
	assert.Equal(t, "987", DigitsOnly("9-8-7", 10))
	assert.Equal(t, "", DigitsOnly("abc", 10))
}

func TestIsAlphabetic(t *testing.T) {
	assert.True(t, IsAlphabetic("Ravi Kumar"))
	assert.True(t, IsAlphabetic(""))
	assert.False(t, IsAlphabetic("Ravi2"))
	assert.False(t, IsAlphabetic("Ravi-Kumar"))
}

func TestFormatDisplayDate(t *testing.T) {
	assert.Equal(t, "31/08/2026", FormatDisplayDate("2026-08-31"))
	assert.Equal(t, "not-a-date", FormatDisplayDate("not-a-date"))
}
