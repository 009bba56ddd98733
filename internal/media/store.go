package media

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path"
	"strings"

	"secondhand/market-service/internal/models"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

var (
	ErrInvalidID       = errors.New("invalid media id")
	ErrUnsupportedType = errors.New("unsupported media type")
)

// extensions maps sniffed content types to the suffix files are stored under.
var extensions = map[string]string{
	"image/png":    ".png",
	"image/jpeg":   ".jpg",
	"image/gif":    ".gif",
	"image/webp":   ".webp",
	"image/bmp":    ".bmp",
	"image/x-icon": ".ico",
}

// Store keeps uploaded images on an afero filesystem and serves them under
// a public base URL.
type Store struct {
	fs        afero.Fs
	publicURL string
	logger    *logrus.Logger
}

// NewStore roots the store at dir on fs. The directory is created when
// missing.
func NewStore(fs afero.Fs, dir, publicURL string, logger *logrus.Logger) (*Store, error) {
	if err := fs.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create media root: %w", err)
	}

	return &Store{
		fs:        afero.NewBasePathFs(fs, dir),
		publicURL: strings.TrimRight(publicURL, "/"),
		logger:    logger,
	}, nil
}

func (s *Store) Upload(ctx context.Context, filename string, body io.Reader) (models.Image, error) {
	if err := ctx.Err(); err != nil {
		return models.Image{}, err
	}

	head := make([]byte, 512)
	n, err := io.ReadFull(body, head)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return models.Image{}, fmt.Errorf("read media: %w", err)
	}
	head = head[:n]

	contentType := http.DetectContentType(head)
	ext, ok := extensions[contentType]
	if !ok {
		s.logger.WithFields(logrus.Fields{
			"filename":     filename,
			"content_type": contentType,
		}).Warn("Rejected media upload")
		return models.Image{}, fmt.Errorf("%w: %s", ErrUnsupportedType, contentType)
	}

	id := uuid.NewString() + ext
	if err := afero.WriteReader(s.fs, id, io.MultiReader(bytes.NewReader(head), body)); err != nil {
		s.logger.WithError(err).WithField("media_id", id).Error("Failed to store media")
		return models.Image{}, fmt.Errorf("store media: %w", err)
	}

	s.logger.WithField("media_id", id).Debug("Media stored")
	return models.Image{ID: id, URL: s.publicURL + "/" + id}, nil
}

// Destroy removes the given files. Ids that no longer exist are skipped.
func (s *Store) Destroy(ctx context.Context, ids ...string) error {
	var errs []error
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return err
		}
		if !validID(id) {
			errs = append(errs, fmt.Errorf("%w: %q", ErrInvalidID, id))
			continue
		}
		if err := s.fs.Remove(id); err != nil && !os.IsNotExist(err) {
			errs = append(errs, fmt.Errorf("remove %s: %w", id, err))
		}
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	s.logger.WithField("count", len(ids)).Debug("Media destroyed")
	return nil
}

// FileSystem exposes the stored files for static serving.
func (s *Store) FileSystem() http.FileSystem {
	return afero.NewHttpFs(s.fs).Dir("/")
}

func validID(id string) bool {
	return id != "" && path.Base(id) == id && id != "." && id != ".."
}
