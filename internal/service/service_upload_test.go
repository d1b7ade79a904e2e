package service

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/rebaby/internal/config"
	"github.com/MKhiriev/rebaby/internal/logger"
)

func newTestUploadService(t *testing.T) (UploadService, string) {
	t.Helper()

	dir := t.TempDir()
	svc, err := NewUploadService(config.Files{UploadDir: dir}, logger.Nop())
	require.NoError(t, err)

	return svc, dir
}

// encodePNG renders a solid-colour PNG of the given size.
func encodePNG(t *testing.T, width, height int) *bytes.Buffer {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: 200, G: 120, B: 60, A: 255})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	return &buf
}

func listDir(t *testing.T, dir string) []string {
	t.Helper()

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}

	return names
}

func TestAccept(t *testing.T) {
	svc, _ := newTestUploadService(t)

	for _, name := range []string{"photo.png", "photo.jpg", "PHOTO.JPEG", "anim.gif"} {
		assert.NoError(t, svc.Accept(name), name)
	}

	for _, name := range []string{"payload.exe", "doc.pdf", "archive.png.zip", "noext", ""} {
		assert.ErrorIs(t, svc.Accept(name), ErrUnsupportedImageFormat, name)
	}
}

func TestProcessImage_RejectsUnsupportedExtension(t *testing.T) {
	svc, dir := newTestUploadService(t)

	_, err := svc.ProcessImage(context.Background(), strings.NewReader("MZ..."), "payload.exe")
	assert.ErrorIs(t, err, ErrUnsupportedImageFormat)
	assert.Empty(t, listDir(t, dir), "nothing may be written for a rejected extension")
}

func TestProcessImage_RemovesUndecodableFile(t *testing.T) {
	svc, dir := newTestUploadService(t)

	// accepted extension, but the bytes are not an image
	_, err := svc.ProcessImage(context.Background(), strings.NewReader("definitely not a png"), "photo.png")
	assert.ErrorIs(t, err, ErrImageProcessingFailed)
	assert.Empty(t, listDir(t, dir), "the stored file must be deleted when decoding fails")
}

func TestProcessImage_DownscalesLargeImage(t *testing.T) {
	svc, dir := newTestUploadService(t)

	filename, err := svc.ProcessImage(context.Background(), encodePNG(t, 1600, 800), "grande-photo.png")
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(filename, ".png"))
	assert.NotEqual(t, "grande-photo.png", filename, "the original filename must be discarded")
	require.Equal(t, []string{filename}, listDir(t, dir))

	img, err := imaging.Open(filepath.Join(dir, filename))
	require.NoError(t, err)

	bounds := img.Bounds()
	assert.Equal(t, 1200, bounds.Dx())
	assert.Equal(t, 600, bounds.Dy(), "aspect ratio must be preserved")
}

func TestProcessImage_KeepsSmallImageSize(t *testing.T) {
	svc, dir := newTestUploadService(t)

	filename, err := svc.ProcessImage(context.Background(), encodePNG(t, 320, 240), "petite-photo.png")
	require.NoError(t, err)

	img, err := imaging.Open(filepath.Join(dir, filename))
	require.NoError(t, err)

	bounds := img.Bounds()
	assert.Equal(t, 320, bounds.Dx(), "small images must not be upscaled")
	assert.Equal(t, 240, bounds.Dy())
}

func TestProcessImage_DistinctFilenames(t *testing.T) {
	svc, _ := newTestUploadService(t)

	first, err := svc.ProcessImage(context.Background(), encodePNG(t, 10, 10), "a.png")
	require.NoError(t, err)

	second, err := svc.ProcessImage(context.Background(), encodePNG(t, 10, 10), "a.png")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestPath(t *testing.T) {
	svc, dir := newTestUploadService(t)

	assert.Equal(t, filepath.Join(dir, "x.png"), svc.Path("x.png"))
}
