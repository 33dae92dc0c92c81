package file

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png" // Import for PNG decoding support
	"io"
	"log/slog"
	"math"
	"mime"
	"path"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/cmlabs-hris/hris-calendar-go/internal/pkg/storage"
	"github.com/google/uuid"
	"golang.org/x/image/draw"
)

const (
	// maxKeyLength bounds the full storage key including directory and suffix.
	maxKeyLength = 255

	profileImageDir     = "profile"
	profileImageMaxSize = 150 * 1024
	profileImageMinSize = 50 * 1024

	DefaultURLExpiry = 15 * time.Minute
	DefaultAvatarURL = "/assets/svgs/user-profile.svg"
)

var (
	ErrInvalidFileType = errors.New("invalid file type: only jpg, jpeg, png allowed")
	ErrFileNameEmpty   = errors.New("file name is required")
)

type FileService interface {
	// StoreFile uploads r under dir and returns the storage key.
	StoreFile(ctx context.Context, file io.Reader, originalName string, dir string) (string, error)

	// StoreProfileImage compresses and uploads a user's profile picture.
	StoreProfileImage(ctx context.Context, userID string, file io.Reader, originalName string) (string, error)

	// RetrieveFile returns an access URL, or "" for an empty path.
	RetrieveFile(ctx context.Context, path string) (string, error)

	FileExists(ctx context.Context, path string) (bool, error)

	// ProfileImageURL never fails; unresolved images map to the default avatar.
	ProfileImageURL(ctx context.Context, path string) string

	// TemplateExists reports whether a payslip template is stored under name.
	TemplateExists(ctx context.Context, name string) (bool, error)

	DeleteFile(ctx context.Context, path string) error
}

type Options struct {
	URLExpiry        time.Duration
	DefaultAvatarURL string
}

type fileServiceImpl struct {
	storage       storage.FileStorage
	urlExpiry     time.Duration
	defaultAvatar string
}

func NewFileService(storage storage.FileStorage, opts Options) FileService {
	if opts.URLExpiry <= 0 {
		opts.URLExpiry = DefaultURLExpiry
	}
	if opts.DefaultAvatarURL == "" {
		opts.DefaultAvatarURL = DefaultAvatarURL
	}
	return &fileServiceImpl{
		storage:       storage,
		urlExpiry:     opts.URLExpiry,
		defaultAvatar: opts.DefaultAvatarURL,
	}
}

// StoreFile uploads a file as dir/<name>_<id>.<ext>.
func (s *fileServiceImpl) StoreFile(ctx context.Context, file io.Reader, originalName string, dir string) (string, error) {
	key, err := buildKey(dir, originalName, uuid.New().String())
	if err != nil {
		return "", err
	}

	uploadedPath, err := s.storage.Upload(ctx, file, key, contentTypeOf(key))
	if err != nil {
		return "", fmt.Errorf("failed to store file: %w", err)
	}

	return uploadedPath, nil
}

// StoreProfileImage uploads a profile picture re-encoded as JPEG.
// Compresses image to target size between 50KB - 150KB
func (s *fileServiceImpl) StoreProfileImage(ctx context.Context, userID string, file io.Reader, originalName string) (string, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	if ext != ".jpg" && ext != ".jpeg" && ext != ".png" {
		return "", ErrInvalidFileType
	}

	buffer, err := io.ReadAll(file)
	if err != nil {
		return "", fmt.Errorf("failed to read image: %w", err)
	}

	compressed, err := compressImage(buffer, profileImageMaxSize, profileImageMinSize)
	if err != nil {
		return "", fmt.Errorf("failed to compress image: %w", err)
	}

	name := strings.TrimSuffix(filepath.Base(originalName), filepath.Ext(originalName)) + ".jpg"
	key, err := buildKey(path.Join(profileImageDir, userID), name, uuid.New().String())
	if err != nil {
		return "", err
	}

	uploadedPath, err := s.storage.Upload(ctx, bytes.NewReader(compressed), key, "image/jpeg")
	if err != nil {
		return "", fmt.Errorf("failed to upload profile image: %w", err)
	}

	slog.Info("Profile image stored", "user_id", userID, "path", uploadedPath, "size", len(compressed))
	return uploadedPath, nil
}

func (s *fileServiceImpl) RetrieveFile(ctx context.Context, path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", nil
	}
	url, err := s.storage.GetURL(ctx, path, s.urlExpiry)
	if err != nil {
		return "", fmt.Errorf("failed to get file url: %w", err)
	}
	return url, nil
}

func (s *fileServiceImpl) FileExists(ctx context.Context, path string) (bool, error) {
	if strings.TrimSpace(path) == "" {
		return false, nil
	}
	return s.storage.Exists(ctx, path)
}

func (s *fileServiceImpl) ProfileImageURL(ctx context.Context, path string) string {
	url, err := s.RetrieveFile(ctx, path)
	if err != nil {
		slog.Warn("Failed to resolve profile image", "path", path, "error", err)
		return s.defaultAvatar
	}
	if url == "" {
		return s.defaultAvatar
	}
	return url
}

func (s *fileServiceImpl) TemplateExists(ctx context.Context, name string) (bool, error) {
	return s.FileExists(ctx, name)
}

// DeleteFile deletes a file
func (s *fileServiceImpl) DeleteFile(ctx context.Context, path string) error {
	return s.storage.Delete(ctx, path)
}

// ==================== HELPER FUNCTIONS ====================

// buildKey trims the client file name so the whole key stays within
// maxKeyLength. Slashes in the name become underscores.
func buildKey(dir, originalName, id string) (string, error) {
	base := filepath.Base(strings.ReplaceAll(originalName, "\\", "/"))
	ext := strings.TrimPrefix(filepath.Ext(base), ".")
	name := strings.TrimSuffix(base, filepath.Ext(base))
	if strings.TrimSpace(name) == "" || base == "." || base == "/" {
		return "", ErrFileNameEmpty
	}

	dir = strings.Trim(dir, "/")
	if dir != "" {
		dir += "/"
	}

	// '/', '_', '.' plus two spare bytes
	limit := maxKeyLength - len(dir) - len(id) - len(ext) - 5
	if limit < 1 {
		limit = 1
	}
	if len(name) > limit {
		// Cut on a rune boundary; object stores reject invalid UTF-8 keys.
		for limit > 0 && !utf8.RuneStart(name[limit]) {
			limit--
		}
		name = name[:limit]
	}
	name = strings.NewReplacer("/", "_", "\\", "_").Replace(name)

	key := dir + name + "_" + id
	if ext != "" {
		key += "." + ext
	}
	return key, nil
}

func contentTypeOf(key string) string {
	if ct := mime.TypeByExtension(filepath.Ext(key)); ct != "" {
		return ct
	}
	return "application/octet-stream"
}

// compressImage compresses an image to target size range
// maxSize: maximum allowed size (e.g., 150KB)
// minSize: minimum target size (e.g., 50KB)
// The output is always JPEG.
func compressImage(buffer []byte, maxSize int, minSize int) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(buffer))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	originalWidth := bounds.Dx()
	originalHeight := bounds.Dy()

	// Start with quality 85 and reduce progressively
	quality := 85
	var compressed []byte

	for quality >= 50 {
		buf := new(bytes.Buffer)
		if err := jpeg.Encode(buf, img, &jpeg.Options{Quality: quality}); err != nil {
			return nil, fmt.Errorf("failed to encode JPEG: %w", err)
		}
		compressed = buf.Bytes()

		if len(compressed) <= maxSize {
			return compressed, nil
		}
		quality -= 5
	}

	// Still too large: scale towards the middle of the range
	targetSize := (maxSize + minSize) / 2
	ratio := math.Sqrt(float64(targetSize) / float64(len(compressed)))
	newWidth := int(float64(originalWidth) * ratio)
	newHeight := int(float64(originalHeight) * ratio)

	// Ensure minimum dimensions
	if newWidth < 600 {
		newWidth = min(600, originalWidth)
	}
	if newHeight < 400 {
		newHeight = min(400, originalHeight)
	}

	resized := resizeImage(img, newWidth, newHeight)

	buf := new(bytes.Buffer)
	if err := jpeg.Encode(buf, resized, &jpeg.Options{Quality: 70}); err != nil {
		return nil, fmt.Errorf("failed to encode resized image: %w", err)
	}

	return buf.Bytes(), nil
}

// resizeImage resizes an image to the specified dimensions using high-quality interpolation
func resizeImage(src image.Image, width, height int) image.Image {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	// Use CatmullRom for high-quality downscaling
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)
	return dst
}
