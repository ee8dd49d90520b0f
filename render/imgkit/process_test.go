package imgkit_test

import (
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alex-Citeroni/qr-code-generator/render/imgkit"
)

func TestScale(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 64, 32))

	out := imgkit.Scale(src, image.Rect(0, 0, 100, 100), nil)
	assert.Equal(t, image.Rect(0, 0, 100, 100), out.Bounds())
}

func TestHasAlpha(t *testing.T) {
	assert.True(t, imgkit.HasAlpha(image.NewNRGBA(image.Rect(0, 0, 1, 1))))
	assert.True(t, imgkit.HasAlpha(image.NewRGBA(image.Rect(0, 0, 1, 1))))
	assert.False(t, imgkit.HasAlpha(image.NewGray(image.Rect(0, 0, 1, 1))))
	assert.False(t, imgkit.HasAlpha(image.NewYCbCr(image.Rect(0, 0, 1, 1), image.YCbCrSubsampleRatio420)))

	opaquePal := image.NewPaletted(image.Rect(0, 0, 1, 1), color.Palette{color.Black, color.White})
	assert.False(t, imgkit.HasAlpha(opaquePal))

	transPal := image.NewPaletted(image.Rect(0, 0, 1, 1), color.Palette{color.Black, color.Transparent})
	assert.True(t, imgkit.HasAlpha(transPal))
}

func TestReadSave(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	src.SetNRGBA(3, 4, color.NRGBA{R: 0x12, G: 0x34, B: 0x56, A: 0xff})

	path := filepath.Join(t.TempDir(), "roundtrip.png")
	require.NoError(t, imgkit.Save(src, path))

	got, err := imgkit.Read(path)
	require.NoError(t, err)
	assert.Equal(t, src.Bounds(), got.Bounds())

	r, g, b, _ := got.At(3, 4).RGBA()
	assert.Equal(t, uint32(0x12), r>>8)
	assert.Equal(t, uint32(0x34), g>>8)
	assert.Equal(t, uint32(0x56), b>>8)
}

func TestRead_missingFile(t *testing.T) {
	_, err := imgkit.Read(filepath.Join(t.TempDir(), "nope.png"))
	assert.Error(t, err)
}
