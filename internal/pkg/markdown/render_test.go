package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_Basic(t *testing.T) {
	html, err := Render("# Title\n\nsome *emphasis*")

	require.NoError(t, err)
	assert.Contains(t, html, "<h1")
	assert.Contains(t, html, "<em>emphasis</em>")
}

func TestRender_GFM(t *testing.T) {
	html, err := Render("~~gone~~ and https://example.com")

	require.NoError(t, err)
	assert.Contains(t, html, "<del>gone</del>")
	assert.Contains(t, html, "<a href=\"https://example.com\"")
}

func TestRender_Empty(t *testing.T) {
	html, err := Render("")

	require.NoError(t, err)
	assert.Empty(t, html)
}
