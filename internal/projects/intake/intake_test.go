package intake

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bokyaa/portfolio-backend/internal/projects/domain"
)

// pngBytes is a minimal payload the content sniffer recognizes as image/png.
var pngBytes = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0}

func pngFile(name string) File {
	return File{Name: name, Size: int64(len(pngBytes)), Reader: bytes.NewReader(pngBytes)}
}

func TestAddFilesAccepts(t *testing.T) {
	merged, rejected, err := AddFiles([]string{"existing.png"}, []File{pngFile("a.png"), pngFile("b.png")})
	require.NoError(t, err)
	assert.Empty(t, rejected)
	require.Len(t, merged, 3)
	assert.Equal(t, "existing.png", merged[0])
	for _, img := range merged[1:] {
		assert.True(t, strings.HasPrefix(img, "data:image/png;base64,"), img)
		assert.True(t, domain.IsEmbeddedImage(img))
	}
}

func TestAddFilesRejectsNonImage(t *testing.T) {
	text := []byte("hello, definitely not an image")
	files := []File{
		{Name: "notes.txt", Size: int64(len(text)), Reader: bytes.NewReader(text)},
		pngFile("ok.png"),
	}

	merged, rejected, err := AddFiles(nil, files)
	require.NoError(t, err)

	// The bad file is reported on its own; its sibling still lands.
	require.Len(t, rejected, 1)
	assert.Equal(t, "notes.txt", rejected[0].Name)
	assert.ErrorIs(t, rejected[0].Err, domain.ErrNotImage)
	assert.Len(t, merged, 1)
}

func TestAddFilesRejectsOversized(t *testing.T) {
	big := File{Name: "huge.png", Size: MaxFileSize + 1, Reader: bytes.NewReader(pngBytes)}

	merged, rejected, err := AddFiles(nil, []File{big})
	require.NoError(t, err)
	require.Len(t, rejected, 1)
	assert.ErrorIs(t, rejected[0].Err, domain.ErrImageTooLarge)
	assert.Empty(t, merged)
}

func TestAddFilesBatchOverCap(t *testing.T) {
	current := []string{"1", "2", "3", "4"}
	files := []File{pngFile("a.png"), pngFile("b.png")}

	merged, rejected, err := AddFiles(current, files)
	assert.ErrorIs(t, err, domain.ErrTooManyImages)
	assert.Empty(t, rejected)
	// Already-accumulated images are untouched.
	assert.Equal(t, current, merged)
}

func TestAddFilesEmptyBatch(t *testing.T) {
	current := []string{"1"}
	merged, rejected, err := AddFiles(current, nil)
	require.NoError(t, err)
	assert.Empty(t, rejected)
	assert.Equal(t, current, merged)
}

func TestAddURL(t *testing.T) {
	merged, err := AddURL([]string{"a"}, "  https://example.com/x.png  ")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "https://example.com/x.png"}, merged)
	assert.False(t, domain.IsEmbeddedImage(merged[1]))
}

func TestAddURLAtCap(t *testing.T) {
	current := []string{"1", "2", "3", "4", "5"}
	merged, err := AddURL(current, "https://example.com/x.png")
	assert.ErrorIs(t, err, domain.ErrTooManyImages)
	assert.Equal(t, current, merged)
}

func TestAddURLBlank(t *testing.T) {
	merged, err := AddURL([]string{"a"}, "   ")
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, merged)
}

func TestRemoveAt(t *testing.T) {
	current := []string{"a", "b", "c"}
	assert.Equal(t, []string{"a", "c"}, RemoveAt(current, 1))
	assert.Equal(t, current, RemoveAt(current, -1))
	assert.Equal(t, current, RemoveAt(current, 3))
}
