package controllers_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/laziz/app/controllers"
	"github.com/shashiranjanraj/laziz/pkg/event"
	"github.com/shashiranjanraj/laziz/pkg/router"
	"github.com/shashiranjanraj/laziz/pkg/storage"
	"github.com/shashiranjanraj/laziz/pkg/testkit"
)

var registerDiskOnce sync.Once

func newImageHandler(t *testing.T) http.Handler {
	t.Helper()

	// The registry is process-global; root it at a throwaway dir once.
	registerDiskOnce.Do(func() {
		dir, err := os.MkdirTemp("", "laziz-images-*")
		require.NoError(t, err)
		storage.RegisterDisk("local", storage.NewLocal(dir, "http://localhost:8080/storage"))
	})

	c := controllers.NewImageController()

	r := router.New()
	r.Post("/api/upload", "images.upload", c.Upload)
	r.Get("/api/images", "images.index", c.Index)
	r.Delete("/api/images/{filename}", "images.destroy", c.Destroy)
	return r.Handler()
}

// pngPayload is a minimal buffer DetectContentType sniffs as image/png.
func pngPayload() []byte {
	payload := make([]byte, 64)
	copy(payload, []byte("\x89PNG\r\n\x1a\n"))
	return payload
}

func multipartUpload(t *testing.T, field, filename string, content []byte) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestImageUploadListDelete(t *testing.T) {
	h := newImageHandler(t)

	rec := testkit.Do(h, multipartUpload(t, "image", "dish.png", pngPayload()))
	var uploaded controllers.ImageInfo
	testkit.AssertSuccess(t, rec, http.StatusCreated, &uploaded)
	assert.NotEmpty(t, uploaded.Filename)
	assert.Contains(t, uploaded.URL, uploaded.Filename)

	rec = testkit.Do(h, testkit.JSONRequest(t, http.MethodGet, "/api/images", nil))
	var images []controllers.ImageInfo
	testkit.AssertSuccess(t, rec, http.StatusOK, &images)
	require.NotEmpty(t, images)

	found := false
	for _, img := range images {
		if img.Filename == uploaded.Filename {
			found = true
			assert.Equal(t, int64(64), img.Size)
		}
	}
	assert.True(t, found, "uploaded image missing from listing")

	rec = testkit.Do(h, testkit.JSONRequest(t, http.MethodDelete, "/api/images/"+uploaded.Filename, nil))
	testkit.AssertSuccess(t, rec, http.StatusOK, nil)

	// A second delete of the same name is a 404.
	rec = testkit.Do(h, testkit.JSONRequest(t, http.MethodDelete, "/api/images/"+uploaded.Filename, nil))
	testkit.AssertError(t, rec, http.StatusNotFound)
}

func TestImageMutationsNotifyMenuListeners(t *testing.T) {
	h := newImageHandler(t)

	fired := 0
	event.Listen(event.MenuChanged, func(interface{}) { fired++ })
	t.Cleanup(event.Flush)

	rec := testkit.Do(h, multipartUpload(t, "image", "dish.png", pngPayload()))
	var uploaded controllers.ImageInfo
	testkit.AssertSuccess(t, rec, http.StatusCreated, &uploaded)
	assert.Equal(t, 1, fired, "upload must notify menu listeners")

	rec = testkit.Do(h, testkit.JSONRequest(t, http.MethodDelete, "/api/images/"+uploaded.Filename, nil))
	testkit.AssertSuccess(t, rec, http.StatusOK, nil)
	assert.Equal(t, 2, fired, "delete must notify menu listeners")

	// A rejected upload changed nothing, so listeners stay quiet.
	rec = testkit.Do(h, multipartUpload(t, "image", "notes.txt", []byte("just text")))
	testkit.AssertError(t, rec, http.StatusUnsupportedMediaType)
	assert.Equal(t, 2, fired)
}

func TestImageUploadRejectsNonImage(t *testing.T) {
	h := newImageHandler(t)

	rec := testkit.Do(h, multipartUpload(t, "image", "notes.txt", []byte("just some text")))
	testkit.AssertError(t, rec, http.StatusUnsupportedMediaType)
}

func TestImageUploadRequiresFileField(t *testing.T) {
	h := newImageHandler(t)

	rec := testkit.Do(h, multipartUpload(t, "wrong", "dish.png", pngPayload()))
	testkit.AssertError(t, rec, http.StatusBadRequest)
}

func TestImageDeleteRejectsTraversal(t *testing.T) {
	h := newImageHandler(t)

	rec := testkit.Do(h, testkit.JSONRequest(t, http.MethodDelete, "/api/images/..%2fsecrets", nil))
	testkit.AssertError(t, rec, http.StatusBadRequest)
}
