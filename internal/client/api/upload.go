package api

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/inkpress/inkcli/internal/client/models"
)

// MaxImageSize is the upload ceiling enforced locally before any network
// call, matching the backend's own limit.
const MaxImageSize = 5 * 1024 * 1024

// UploadImage sends an image with POST /upload/image as a multipart form
// (field name "image"). The file is rejected locally when it is empty, not an
// image (sniffed media type must be image/*), or larger than 5 MiB.
func (c *Client) UploadImage(ctx context.Context, filename string, data []byte) (*models.UploadResult, error) {
	if len(data) == 0 {
		return nil, validationError("No image file provided")
	}
	if !strings.HasPrefix(http.DetectContentType(data), "image/") {
		return nil, validationError("Please select a valid image file")
	}
	if len(data) > MaxImageSize {
		return nil, validationError("Image size should be less than 5MB")
	}

	token, err := c.authToken(ctx)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)
	part, err := form.CreateFormFile("image", filename)
	if err != nil {
		return nil, validationError("cannot build upload form: " + err.Error())
	}
	if _, err := part.Write(data); err != nil {
		return nil, validationError("cannot build upload form: " + err.Error())
	}
	if err := form.Close(); err != nil {
		return nil, validationError("cannot build upload form: " + err.Error())
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/upload/image", &buf)
	if err != nil {
		return nil, validationError("cannot build request: " + err.Error())
	}
	req.Header.Set("Content-Type", form.FormDataContentType())
	c.decorate(req, token)

	var out models.UploadResult
	if err := c.send(ctx, req, &out); err != nil {
		return nil, err
	}
	c.log.Info(ctx, "image uploaded", "url", out.ImageURL)
	return &out, nil
}
