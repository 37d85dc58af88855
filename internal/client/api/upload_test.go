package api

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkpress/inkcli/internal/client/models"
	"github.com/inkpress/inkcli/internal/common"
)

// pngBytes returns a payload that sniffs as image/png, padded to size.
func pngBytes(size int) []byte {
	data := make([]byte, size)
	copy(data, []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'})
	return data
}

func TestUploadImage_TooLarge_RejectedWithoutNetworkCall(t *testing.T) {
	e := newEnv(t, jsonHandler(http.StatusOK, models.UploadResult{}))
	e.seedSession(t, mintToken(t, time.Now().Add(time.Hour)), &models.User{Name: "A"})

	_, err := e.client.UploadImage(context.Background(), "big.png", pngBytes(6*1024*1024))

	require.ErrorIs(t, err, common.ErrValidation)
	assert.EqualError(t, err, "Image size should be less than 5MB")
	assert.Zero(t, e.calls.Load())
}

func TestUploadImage_NotAnImage_Rejected(t *testing.T) {
	e := newEnv(t, jsonHandler(http.StatusOK, models.UploadResult{}))
	e.seedSession(t, mintToken(t, time.Now().Add(time.Hour)), &models.User{Name: "A"})

	_, err := e.client.UploadImage(context.Background(), "notes.txt", []byte("plain text, not an image"))

	require.ErrorIs(t, err, common.ErrValidation)
	assert.EqualError(t, err, "Please select a valid image file")
	assert.Zero(t, e.calls.Load())
}

func TestUploadImage_Empty_Rejected(t *testing.T) {
	e := newEnv(t, jsonHandler(http.StatusOK, models.UploadResult{}))

	_, err := e.client.UploadImage(context.Background(), "empty.png", nil)

	require.ErrorIs(t, err, common.ErrValidation)
	assert.EqualError(t, err, "No image file provided")
	assert.Zero(t, e.calls.Load())
}

func TestUploadImage_ExpiredSession_RejectedWithoutNetworkCall(t *testing.T) {
	e := newEnv(t, jsonHandler(http.StatusOK, models.UploadResult{}))
	e.seedSession(t, mintToken(t, time.Now().Add(-time.Hour)), &models.User{Name: "A"})

	_, err := e.client.UploadImage(context.Background(), "pic.png", pngBytes(1024))

	require.ErrorIs(t, err, common.ErrSessionExpired)
	assert.Zero(t, e.calls.Load())
	e.storageEmpty(t)
}

func TestUploadImage_SendsMultipartForm(t *testing.T) {
	token := mintToken(t, time.Now().Add(time.Hour))

	var gotAuth, gotFilename string
	var gotSize int
	e := newEnv(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get(common.AuthorizationHeader)
		require.NoError(t, r.ParseMultipartForm(8*1024*1024))
		file, header, err := r.FormFile("image")
		require.NoError(t, err)
		defer file.Close()
		gotFilename = header.Filename
		gotSize = int(header.Size)
		jsonHandler(http.StatusOK, models.UploadResult{ImageURL: "/uploads/pic.png"})(w, r)
	})
	e.seedSession(t, token, &models.User{Name: "A"})

	res, err := e.client.UploadImage(context.Background(), "pic.png", pngBytes(2048))
	require.NoError(t, err)

	assert.Equal(t, "/uploads/pic.png", res.ImageURL)
	assert.Equal(t, "Bearer "+token, gotAuth)
	assert.Equal(t, "pic.png", gotFilename)
	assert.Equal(t, 2048, gotSize)
}
