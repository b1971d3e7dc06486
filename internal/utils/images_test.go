package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsImageFile(t *testing.T) {
	assert.True(t, IsImageFile("front.jpg"))
	assert.True(t, IsImageFile("FRONT.JPG"))
	assert.True(t, IsImageFile("pool.webp"))
	assert.False(t, IsImageFile("notes.txt"))
	assert.False(t, IsImageFile("archive.zip"))
	assert.False(t, IsImageFile("noextension"))
}

func TestDecodeGallery(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "Valid gallery",
			input: `["pics_lg/1/a.jpg", "pics_lg/1/b.jpg"]`,
			want:  []string{"pics_lg/1/a.jpg", "pics_lg/1/b.jpg"},
		},
		{"Empty string", "", nil},
		{"Whitespace only", "   ", nil},
		{"Malformed JSON", `["unterminated`, nil},
		{"Wrong shape", `{"a": 1}`, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DecodeGallery(tt.input))
		})
	}
}

func TestScanPropertyImages(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "6632")
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "thumbs"), 0o755))

	for _, name := range []string{"b.jpg", "a.png", "notes.txt", "c.webp"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))
	}
	// Only b.jpg has a thumbnail.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "thumbs", "b.jpg"), []byte("x"), 0o644))

	images, err := ScanPropertyImages(root, "6632")
	require.NoError(t, err)
	require.Len(t, images, 3)

	// Sorted by filename, non-images excluded.
	assert.Equal(t, "/images/6632/a.png", images[0].URL)
	assert.Equal(t, "/images/6632/b.jpg", images[1].URL)
	assert.Equal(t, "/images/6632/c.webp", images[2].URL)

	assert.Equal(t, "/images/6632/a.png", images[0].Thumbnail, "no thumb falls back to full image")
	assert.Equal(t, "/images/6632/thumbs/b.jpg", images[1].Thumbnail)
	assert.Equal(t, "Property 6632 image - a.png", images[0].Alt)
}

func TestScanPropertyImages_MissingDirectory(t *testing.T) {
	images, err := ScanPropertyImages(t.TempDir(), "nope")
	require.NoError(t, err)
	assert.Empty(t, images)
	assert.NotNil(t, images)
}
