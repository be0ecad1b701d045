package services

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"mime/multipart"

	_ "image/gif"

	"cycleroute/internal/utils"
	"cycleroute/pkg/logger"
	"cycleroute/pkg/storage"

	"github.com/nfnt/resize"
)

type UploadService interface {
	UploadImage(ctx context.Context, header *multipart.FileHeader) (*UploadResult, error)
}

type uploadService struct {
	storage storage.Storage
	maxSize int64
	logger  *logger.Logger
}

type UploadResult struct {
	Filename     string `json:"filename"`
	URL          string `json:"url"`
	ThumbnailURL string `json:"thumbnail_url,omitempty"`
	Size         int64  `json:"size"`
}

func NewUploadService(store storage.Storage, maxSize int64, log *logger.Logger) UploadService {
	return &uploadService{
		storage: store,
		maxSize: maxSize,
		logger:  log,
	}
}

func (s *uploadService) UploadImage(ctx context.Context, header *multipart.FileHeader) (*UploadResult, error) {
	if header.Size > s.maxSize {
		return nil, ErrInvalidInput
	}
	if !utils.IsAllowedFileType(header.Filename, utils.AllowedImageTypes) {
		return nil, ErrInvalidInput
	}

	file, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open upload: %w", err)
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, s.maxSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}
	if int64(len(data)) > s.maxSize {
		return nil, ErrInvalidInput
	}

	filename := utils.GenerateUniqueFilename(header.Filename)

	uploaded, err := s.storage.Upload(ctx, &storage.UploadRequest{
		Key:         filename,
		Reader:      bytes.NewReader(data),
		ContentType: utils.GetContentType(filename),
		Size:        int64(len(data)),
	})
	if err != nil {
		return nil, err
	}

	result := &UploadResult{
		Filename: filename,
		URL:      uploaded.URL,
		Size:     uploaded.Size,
	}

	// Thumbnail generation is best effort; unsupported encodings are stored
	// without one.
	if thumbURL, err := s.generateThumbnail(ctx, filename, data); err == nil {
		result.ThumbnailURL = thumbURL
	} else {
		s.logger.WithError(err).WithField("filename", filename).Warn("thumbnail generation skipped")
	}

	return result, nil
}

func (s *uploadService) generateThumbnail(ctx context.Context, filename string, data []byte) (string, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("failed to decode image: %w", err)
	}

	thumb := resize.Resize(utils.ThumbnailWidth, 0, img, resize.Lanczos3)

	var buf bytes.Buffer
	switch format {
	case "png":
		err = png.Encode(&buf, thumb)
	default:
		err = jpeg.Encode(&buf, thumb, &jpeg.Options{Quality: 85})
	}
	if err != nil {
		return "", fmt.Errorf("failed to encode thumbnail: %w", err)
	}

	key := "thumbs/" + filename
	uploaded, err := s.storage.Upload(ctx, &storage.UploadRequest{
		Key:         key,
		Reader:      &buf,
		ContentType: utils.GetContentType(filename),
		Size:        int64(buf.Len()),
	})
	if err != nil {
		return "", err
	}

	return uploaded.URL, nil
}
