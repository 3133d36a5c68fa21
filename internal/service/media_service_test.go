package service

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parteecat/folio/internal/pkg/storage"
)

var uploadNamePattern = regexp.MustCompile(`^\d+-[0-9a-f]{32}\.png$`)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func fileHeaderFromBytes(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(int64(len(content)) + 10240)
	require.NoError(t, err)
	return form.File["file"][0]
}

func newMediaService(t *testing.T, maxImage, maxVideo int64) (MediaService, string) {
	t.Helper()
	dir := t.TempDir()
	store, err := storage.NewLocalStore(dir)
	require.NoError(t, err)
	return NewMediaService(store, maxImage, maxVideo), dir
}

func TestUpload_PNG(t *testing.T) {
	svc, dir := newMediaService(t, 10<<20, 100<<20)
	file := fileHeaderFromBytes(t, "photo.png", pngBytes(t, 4, 3))

	result, err := svc.Upload(context.Background(), file)

	require.NoError(t, err)
	assert.Equal(t, "image/png", result.MimeType)
	assert.Equal(t, 4, result.Width)
	assert.Equal(t, 3, result.Height)
	assert.Regexp(t, uploadNamePattern, result.Filename)
	assert.Equal(t, "/uploads/"+result.Filename, result.URL)

	saved, err := os.Stat(filepath.Join(dir, result.Filename))
	require.NoError(t, err)
	assert.Equal(t, result.Size, saved.Size())
}

func TestUpload_TooLarge(t *testing.T) {
	svc, _ := newMediaService(t, 16, 100<<20)
	file := fileHeaderFromBytes(t, "big.png", pngBytes(t, 100, 100))

	_, err := svc.Upload(context.Background(), file)

	require.ErrorIs(t, err, ErrFileTooLarge)
}

func TestUpload_DisallowedType(t *testing.T) {
	svc, _ := newMediaService(t, 10<<20, 100<<20)
	file := fileHeaderFromBytes(t, "notes.txt", []byte("just some plain text"))

	_, err := svc.Upload(context.Background(), file)

	assert.ErrorIs(t, err, ErrFileNotSupported)
}

func TestUploadBatch_PartialSuccess(t *testing.T) {
	svc, _ := newMediaService(t, 10<<20, 100<<20)
	good := fileHeaderFromBytes(t, "ok.png", pngBytes(t, 2, 2))
	bad := fileHeaderFromBytes(t, "bad.txt", []byte("plain text"))

	result, err := svc.UploadBatch(context.Background(), []*multipart.FileHeader{good, bad})

	require.NoError(t, err)
	assert.Len(t, result.Success, 1)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "bad.txt", result.Errors[0].Filename)
}

func TestUploadBatch_Empty(t *testing.T) {
	svc, _ := newMediaService(t, 10<<20, 100<<20)

	_, err := svc.UploadBatch(context.Background(), nil)

	assert.ErrorIs(t, err, ErrFileMissing)
}
