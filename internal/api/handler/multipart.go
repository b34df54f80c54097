package handler

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/onlineshop/shop-system/internal/core/ports"
)

// maxImageBytes bounds uploaded image size to 2 MiB.
const maxImageBytes = 2 << 20

// formPatch returns a pointer to the form value when the field is present in
// the request, nil otherwise. Presence, not emptiness, drives the merge-patch
// semantics: an empty submitted field still counts as a patch.
func formPatch(c echo.Context, key string) *string {
	form, err := c.MultipartForm()
	if err != nil || form == nil {
		return nil
	}
	vals, ok := form.Value[key]
	if !ok || len(vals) == 0 {
		return nil
	}
	return &vals[0]
}

// formImage extracts the optional "file" multipart part into an ImageUpload.
// A missing part is not an error; an unreadable or oversized one is.
func formImage(c echo.Context) (*ports.ImageUpload, error) {
	fh, err := c.FormFile("file")
	if err != nil {
		if err == http.ErrMissingFile {
			return nil, nil
		}
		// Echo surfaces "not multipart" and similar request-shape problems here.
		return nil, nil
	}
	if fh.Size > maxImageBytes {
		return nil, echo.NewHTTPError(http.StatusRequestEntityTooLarge, "image exceeds the 2MB limit")
	}

	src, err := fh.Open()
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "unable to read uploaded file")
	}
	defer src.Close()

	data, err := io.ReadAll(io.LimitReader(src, maxImageBytes+1))
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "unable to read uploaded file")
	}
	if len(data) > maxImageBytes {
		return nil, echo.NewHTTPError(http.StatusRequestEntityTooLarge, "image exceeds the 2MB limit")
	}

	contentType := fh.Header.Get("Content-Type")
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}

	return &ports.ImageUpload{
		Name:        fh.Filename,
		ContentType: contentType,
		Bytes:       data,
	}, nil
}
