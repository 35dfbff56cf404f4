package utils

import (
	"bytes"
	"image"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateImageType(t *testing.T) {
	for _, name := range []string{"a.jpg", "a.JPEG", "logo.png", "anim.gif", "icon.svg", "pic.webp"} {
		assert.NoError(t, ValidateImageType(name), name)
	}
	for _, name := range []string{"doc.pdf", "run.exe", "noext", "script.js"} {
		assert.Error(t, ValidateImageType(name), name)
	}
}

func TestCleanFilename(t *testing.T) {
	assert.Equal(t, "passwd", cleanFilename("../../etc/passwd"))
	assert.Equal(t, "mylogo.png", cleanFilename("my logo!.png"))
	assert.Equal(t, "photo.jpg", cleanFilename("photo.jpg"))
}

func TestNormalizeImageDownscalesWideJPEG(t *testing.T) {
	wide := imaging.New(maxImageWidth+400, 100, image.White.C)
	var buf bytes.Buffer
	require.NoError(t, imaging.Encode(&buf, wide, imaging.JPEG))

	out := normalizeImage(buf.Bytes(), "wide.jpg")
	decoded, err := imaging.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, maxImageWidth, decoded.Bounds().Dx())
}

func TestNormalizeImageLeavesSmallAndUnknownAlone(t *testing.T) {
	small := imaging.New(200, 100, image.White.C)
	var buf bytes.Buffer
	require.NoError(t, imaging.Encode(&buf, small, imaging.PNG))
	assert.Equal(t, buf.Bytes(), normalizeImage(buf.Bytes(), "small.png"))

	svg := []byte(`<svg xmlns="http://www.w3.org/2000/svg"/>`)
	assert.Equal(t, svg, normalizeImage(svg, "icon.svg"))
}
