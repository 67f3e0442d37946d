package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTags(t *testing.T) {
	assert.Equal(t, []string{"logo", "neon"}, ParseTags("logo, neon"))
	assert.Equal(t, []string{"a", "b"}, ParseTags(" a ,, b , "))
	assert.Empty(t, ParseTags(""))
	assert.Empty(t, ParseTags(" , ,"))

	// Duplicates stay.
	assert.Equal(t, []string{"x", "x"}, ParseTags("x,x"))
}

func TestCoverImage(t *testing.T) {
	rec := ProjectRecord{Images: []string{"a.png", "b.png"}}
	assert.Equal(t, "a.png", rec.CoverImage("/placeholder.svg"))

	empty := ProjectRecord{}
	assert.Equal(t, "/placeholder.svg", empty.CoverImage("/placeholder.svg"))
}

func TestIDString(t *testing.T) {
	rec := ProjectRecord{ID: 1700000000000}
	assert.Equal(t, "1700000000000", rec.IDString())
}

func TestIsEmbeddedImage(t *testing.T) {
	assert.True(t, IsEmbeddedImage("data:image/png;base64,aGk="))
	assert.False(t, IsEmbeddedImage("https://example.com/x.png"))
}
