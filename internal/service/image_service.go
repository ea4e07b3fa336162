package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image"
	"image/jpeg"
	"os"
	"path/filepath"
	"strings"

	"platefinder/internal/models"
	"platefinder/internal/repository"

	"github.com/google/uuid"
	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/webp" // Register WebP decoder

	_ "image/gif" // Register GIF decoder
	_ "image/png" // Register PNG decoder
)

const (
	// ThumbnailSize is the fixed edge length of stored profile images.
	ThumbnailSize = 200
	// JPEGQuality matches the original thumbnail encoding quality.
	JPEGQuality = 85

	imageURLPrefix = "/profile_image/"
)

// ImageService runs the profile image pipeline: decode, resize, persist,
// record the URL. Each step failure aborts the whole operation; the profile's
// image URL is only touched after the file is on disk.
type ImageService struct {
	profileRepo repository.ProfileRepository
	imageDir    string
}

// NewImageService creates the service and ensures the image directory exists.
func NewImageService(profileRepo repository.ProfileRepository, imageDir string) (*ImageService, error) {
	if err := os.MkdirAll(imageDir, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create image directory %s: %w", imageDir, err)
	}
	return &ImageService{
		profileRepo: profileRepo,
		imageDir:    imageDir,
	}, nil
}

// Store decodes a base64 image payload, resizes it to the fixed thumbnail
// size, writes it under a fresh unique filename and records the URL on the
// owning profile. It returns the relative URL served by Resolve.
func (s *ImageService) Store(ctx context.Context, userID, base64Data string) (string, error) {
	if userID == "" {
		userID = models.AnonymousUserID
	}
	if base64Data == "" {
		return "", models.NewValidationError("No image data provided")
	}

	raw, err := base64.StdEncoding.DecodeString(base64Data)
	if err != nil {
		return "", models.NewDecodeError("Invalid base64 image data", err)
	}

	decoded, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return "", models.NewDecodeError("Unsupported or corrupt image data", err)
	}

	thumbnail := resizeToThumbnail(decoded)

	encoded, err := encodeJPEG(thumbnail, JPEGQuality)
	if err != nil {
		return "", models.NewInternalError(err)
	}

	filename := uuid.NewString() + ".jpg"
	if err := writeBytesToFile(filepath.Join(s.imageDir, filename), encoded); err != nil {
		return "", models.NewInternalError(err)
	}

	imageURL := imageURLPrefix + filename
	if err := s.profileRepo.UpdateImageURL(ctx, userID, imageURL); err != nil {
		return "", err
	}

	return imageURL, nil
}

// Resolve maps a stored filename back to its on-disk path. Unknown or
// malformed filenames surface as NotFoundError; the strict shape check also
// blocks path traversal.
func (s *ImageService) Resolve(filename string) (string, error) {
	if !isValidImageFilename(filename) {
		return "", models.NewNotFoundError("Image", filename)
	}
	fullPath := filepath.Join(s.imageDir, filename)
	if _, err := os.Stat(fullPath); err != nil {
		if os.IsNotExist(err) {
			return "", models.NewNotFoundError("Image", filename)
		}
		return "", models.NewInternalError(err)
	}
	return fullPath, nil
}

// isValidImageFilename checks for the generated "<uuid>.jpg" shape:
// lowercase hex and dashes followed by the fixed extension.
func isValidImageFilename(filename string) bool {
	name, ok := strings.CutSuffix(filename, ".jpg")
	if !ok || len(name) != 36 {
		return false
	}
	for _, c := range name {
		if c == '-' {
			continue
		}
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}

// resizeToThumbnail scales the source to exactly ThumbnailSize x ThumbnailSize
// using CatmullRom resampling.
func resizeToThumbnail(src image.Image) image.Image {
	dst := image.NewRGBA(image.Rect(0, 0, ThumbnailSize, ThumbnailSize))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Over, nil)
	return dst
}

func encodeJPEG(img image.Image, quality int) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := jpeg.Encode(buf, img, &jpeg.Options{Quality: quality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeBytesToFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}
