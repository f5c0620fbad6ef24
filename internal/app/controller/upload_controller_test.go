package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jmlee/storefront-backend/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStorage records stored files instead of writing anywhere.
type fakeStorage struct {
	stored []string
	err    error
}

func (f *fakeStorage) Put(ctx context.Context, filename, contentType string, r io.Reader, size int64) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	io.Copy(io.Discard, r)
	f.stored = append(f.stored, filename)
	return "/uploads/" + filename, nil
}

func setupUploadControllerTest(t *testing.T) (*gin.Engine, *fakeStorage) {
	store := &fakeStorage{}
	uploadController := NewUploadController(store, config.UploadConfig{
		MaxImageSize: 5 << 20,
		MaxVideoSize: 50 << 20,
	})

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/admin/upload", uploadController.UploadFiles)

	return router, store
}

type uploadFile struct {
	name        string
	contentType string
	size        int
}

func buildMultipart(t *testing.T, files []uploadFile) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for _, f := range files {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition",
			fmt.Sprintf(`form-data; name="files"; filename="%s"`, f.name))
		header.Set("Content-Type", f.contentType)

		part, err := writer.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write(bytes.Repeat([]byte("x"), f.size))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	return body, writer.FormDataContentType()
}

func doUpload(t *testing.T, router *gin.Engine, files []uploadFile) *httptest.ResponseRecorder {
	t.Helper()

	body, contentType := buildMultipart(t, files)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/upload", body)
	req.Header.Set("Content-Type", contentType)
	router.ServeHTTP(w, req)
	return w
}

func TestUploadController_UploadImages(t *testing.T) {
	router, store := setupUploadControllerTest(t)

	w := doUpload(t, router, []uploadFile{
		{name: "front.jpg", contentType: "image/jpeg", size: 1024},
		{name: "side.webp", contentType: "image/webp", size: 2048},
	})

	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		URLs  []string `json:"urls"`
		Count int      `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Count)
	assert.Len(t, store.stored, 2)
	assert.True(t, strings.HasPrefix(resp.URLs[0], "/uploads/"))
}

func TestUploadController_UploadVideo(t *testing.T) {
	router, store := setupUploadControllerTest(t)

	// Larger than the image limit but within the video limit.
	w := doUpload(t, router, []uploadFile{
		{name: "demo.mp4", contentType: "video/mp4", size: 6 << 20},
	})

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Len(t, store.stored, 1)
}

func TestUploadController_RejectsUnsupportedType(t *testing.T) {
	router, store := setupUploadControllerTest(t)

	w := doUpload(t, router, []uploadFile{
		{name: "notes.pdf", contentType: "application/pdf", size: 1024},
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "notes.pdf")
	assert.Empty(t, store.stored)
}

func TestUploadController_RejectsOversizedImage(t *testing.T) {
	router, store := setupUploadControllerTest(t)

	w := doUpload(t, router, []uploadFile{
		{name: "huge.png", contentType: "image/png", size: (5 << 20) + 1},
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "huge.png")
	assert.Empty(t, store.stored)
}

func TestUploadController_OneBadFileRejectsWholeBatch(t *testing.T) {
	router, store := setupUploadControllerTest(t)

	w := doUpload(t, router, []uploadFile{
		{name: "ok.jpg", contentType: "image/jpeg", size: 1024},
		{name: "bad.exe", contentType: "application/octet-stream", size: 1024},
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
	// Nothing is stored when any file in the batch fails validation.
	assert.Empty(t, store.stored)
}

func TestUploadController_NoFiles(t *testing.T) {
	router, _ := setupUploadControllerTest(t)

	w := doUpload(t, router, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
