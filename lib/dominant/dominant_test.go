package dominant

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/photocat/photocat/fs"
	"github.com/photocat/photocat/lib/stage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePNG(t *testing.T, c color.Color) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 32, 32))
	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			img.Set(x, y, c)
		}
	}
	p := filepath.Join(t.TempDir(), "solid.png")
	f, err := os.Create(p)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())
	return p
}

func TestExtractImage(t *testing.T) {
	p := writePNG(t, color.RGBA{R: 0x20, G: 0x80, B: 0xc0, A: 0xff})
	got, err := Extract(p, fs.KindImage)
	require.NoError(t, err)
	assert.Regexp(t, `^#[0-9a-f]{6}$`, got)
}

func TestExtractMotionNeverDecodes(t *testing.T) {
	// the file doesn't exist so any decode attempt would fail
	missing := filepath.Join(t.TempDir(), "clip.mp4")
	for _, kind := range []fs.Kind{fs.KindVideo, fs.KindAnimation} {
		got, err := Extract(missing, kind)
		require.NoError(t, err)
		assert.Equal(t, Fallback, got)
		assert.Equal(t, stage.Skipped, Stage(missing, kind).State)
	}
}

func TestExtractCorrupt(t *testing.T) {
	p := filepath.Join(t.TempDir(), "broken.jpg")
	require.NoError(t, os.WriteFile(p, []byte("\xff\xd8 not really a jpeg"), 0o644))

	_, err := Extract(p, fs.KindImage)
	var cee *ColorExtractionError
	require.True(t, errors.As(err, &cee), err)
	assert.Equal(t, p, cee.Path)

	r := Stage(p, fs.KindImage)
	assert.Equal(t, stage.Failed, r.State)
	assert.Equal(t, Fallback, r.ValueOr(Fallback))
}
