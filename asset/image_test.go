package asset

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePNG(t *testing.T, img image.Image) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cat.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
	return path
}

func waitDone(t *testing.T, img *Image) {
	t.Helper()
	select {
	case <-img.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("image load did not finish")
	}
}

// splitImage is red on the top half and blue on the bottom half
func splitImage(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := color.RGBA{R: 255, A: 255}
			if y >= h/2 {
				c = color.RGBA{B: 255, A: 255}
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func TestLoadImageAsync(t *testing.T) {
	path := writePNG(t, splitImage(40, 40))

	img := LoadImage(path, 10, 5)
	waitDone(t, img)

	require.NoError(t, img.Err())
	require.True(t, img.Ready())
	assert.Equal(t, 10, img.Width())
	assert.Equal(t, 5, img.Height())

	cells := img.Cells()
	require.Len(t, cells, 50)

	// First row is pure red, last row pure blue
	first := cells[0]
	assert.Equal(t, uint8(255), first.Top.R)
	assert.Equal(t, uint8(255), first.Bottom.R)
	assert.False(t, first.Clear)

	last := cells[len(cells)-1]
	assert.Equal(t, uint8(255), last.Top.B)
	assert.Equal(t, uint8(255), last.Bottom.B)
}

func TestLoadImageMissingFile(t *testing.T) {
	img := LoadImage(filepath.Join(t.TempDir(), "nope.png"), 10, 5)
	waitDone(t, img)

	assert.Error(t, img.Err())
	assert.False(t, img.Ready())
	assert.Nil(t, img.Cells())
	assert.Zero(t, img.Width())
	assert.Zero(t, img.Height())
}

func TestLoadImageCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.png")
	require.NoError(t, os.WriteFile(path, []byte("not an image"), 0644))

	img := LoadImage(path, 4, 4)
	waitDone(t, img)

	require.Error(t, img.Err())
	assert.Contains(t, img.Err().Error(), "decode")
	assert.False(t, img.Ready())
}

func TestFromImageTransparency(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 4, 4))

	img := FromImage(src, 2, 2)

	require.True(t, img.Ready())
	for i, c := range img.Cells() {
		assert.True(t, c.Clear, "cell %d should be transparent", i)
	}
}

func TestFromImageZeroBox(t *testing.T) {
	img := FromImage(splitImage(4, 4), 0, 0)

	assert.True(t, img.Ready())
	assert.Empty(t, img.Cells())
}
