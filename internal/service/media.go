package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"secondhand/market-service/internal/models"
)

// sniffLen is how many leading bytes http.DetectContentType considers.
const sniffLen = 512

// MediaStore is the remote media host holding chat and product images.
type MediaStore interface {
	Upload(ctx context.Context, filename string, body io.Reader) (models.Image, error)
	Destroy(ctx context.Context, ids ...string) error
}

// Upload is one file received from a multipart form.
type Upload struct {
	Filename    string
	ContentType string
	Body        io.Reader
}

func (u Upload) IsImage() bool {
	return strings.HasPrefix(u.ContentType, "image")
}

// sniffImage checks the leading bytes of the body rather than the declared
// content type. The returned Upload carries the detected type and a body
// that still yields every byte.
func sniffImage(u Upload) (Upload, error) {
	if u.Body == nil {
		return u, fmt.Errorf("%w: %q is empty", ErrValidation, u.Filename)
	}
	head := make([]byte, sniffLen)
	n, err := io.ReadFull(u.Body, head)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return u, err
	}
	head = head[:n]

	detected := http.DetectContentType(head)
	if !strings.HasPrefix(detected, "image/") {
		return u, fmt.Errorf("%w: %q is not an image", ErrValidation, u.Filename)
	}

	u.ContentType = detected
	u.Body = io.MultiReader(bytes.NewReader(head), u.Body)
	return u, nil
}
