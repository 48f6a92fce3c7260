package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("user@example.com"))
	assert.True(t, IsValidEmail("first.last+tag@sub.example.org"))

	assert.False(t, IsValidEmail(""))
	assert.False(t, IsValidEmail("not-an-email"))
	assert.False(t, IsValidEmail("User Name <user@example.com>"))
}

func TestIsComplexPassword(t *testing.T) {
	assert.True(t, IsComplexPassword("Str0ng!pass"))

	assert.False(t, IsComplexPassword("Sh0rt!a"))      // too short
	assert.False(t, IsComplexPassword("alllower1!"))   // no upper
	assert.False(t, IsComplexPassword("ALLUPPER1!"))   // no lower
	assert.False(t, IsComplexPassword("NoDigits!!aa")) // no number
	assert.False(t, IsComplexPassword("NoSymbol11aa")) // no symbol
}
