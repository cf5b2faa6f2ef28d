package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidPhone(t *testing.T) {
	assert.True(t, IsValidPhone("9876543210"))
	assert.False(t, IsValidPhone("987654321"))   // 9 digits
	assert.False(t, IsValidPhone("98765432100")) // 11 digits
	assert.False(t, IsValidPhone("98765 43210"))
	assert.False(t, IsValidPhone("+919876543210"))
	assert.False(t, IsValidPhone(""))
}

func TestIsValidGSTIN(t *testing.T) {
	assert.True(t, IsValidGSTIN("27AAPFU0939F1ZV"))
	assert.True(t, IsValidGSTIN("29ABCDE1234F2Z5"))
	assert.False(t, IsValidGSTIN("27AAPFU0939F1Z"))   // 14 chars
	assert.False(t, IsValidGSTIN("27aapfu0939f1zv"))  // lowercase
	assert.False(t, IsValidGSTIN("27AAPFU0939F0ZV"))  // entity digit 0 not allowed
	assert.False(t, IsValidGSTIN("27AAPFU0939F1XV"))  // missing mandatory Z
	assert.False(t, IsValidGSTIN(""))
}

func TestEscapeLikePattern(t *testing.T) {
	assert.Equal(t, `acme`, EscapeLikePattern("acme"))
	assert.Equal(t, `100\%`, EscapeLikePattern("100%"))
	assert.Equal(t, `a\_b`, EscapeLikePattern("a_b"))
	assert.Equal(t, `c\\d`, EscapeLikePattern(`c\d`))
}
