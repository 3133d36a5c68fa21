package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidSlug(t *testing.T) {
	valid := []string{"hello", "hello-world", "post-123", "2024"}
	for _, s := range valid {
		assert.True(t, IsValidSlug(s), "expected %q to be valid", s)
	}

	invalid := []string{"", "Hello", "has space", "under_score", "trailing.", "中文"}
	for _, s := range invalid {
		assert.False(t, IsValidSlug(s), "expected %q to be invalid", s)
	}
}

func TestMakeSlug(t *testing.T) {
	assert.Equal(t, "hello-world", MakeSlug("Hello World"))
	assert.True(t, IsValidSlug(MakeSlug("Weird  --  Name!!")))
}

func TestIsNumericID(t *testing.T) {
	assert.True(t, IsNumericID("1"))
	assert.True(t, IsNumericID("42083"))

	assert.False(t, IsNumericID(""))
	assert.False(t, IsNumericID("1a"))
	assert.False(t, IsNumericID("my-post"))
	assert.False(t, IsNumericID("c1"))
}
