// Package image loads images from files and URLs and samples their pixels
// for colour extraction.
package image

import (
	"bytes"
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format
	_ "image/jpeg" // Register JPEG format
	_ "image/png"  // Register PNG format
	"io"
	"math/big"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/hashicorp/go-hclog"
	_ "golang.org/x/image/bmp"  // Register BMP format
	_ "golang.org/x/image/tiff" // Register TIFF format
	_ "golang.org/x/image/webp" // Register WebP format

	httputil "github.com/jmylchreest/tonal/internal/util/http"
	"github.com/jmylchreest/tonal/internal/util/imagecache"
)

// ErrUnsupportedSource is returned for sources that are not a readable
// image file, a directory of images or an HTTP(S) URL.
var ErrUnsupportedSource = errors.New("unsupported image source")

// Loader loads an image from a source.
type Loader interface {
	Load(ctx context.Context, source string) (image.Image, error)
}

// FileLoader loads images from the local filesystem.
type FileLoader struct{}

// NewFileLoader creates a new FileLoader instance.
func NewFileLoader() *FileLoader {
	return &FileLoader{}
}

// Load decodes the image at path.
func (l *FileLoader) Load(_ context.Context, path string) (image.Image, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: image path cannot be empty", ErrUnsupportedSource)
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("image file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to stat image file: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: path is a directory, not a file: %s", ErrUnsupportedSource, path)
	}

	file, err := os.Open(path) // #nosec G304 - User-specified image path, intended to be read
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()

	return decode(file)
}

// URLLoader fetches images over HTTP(S), optionally through a disk cache.
type URLLoader struct {
	Fetch httputil.FetchOptions
	// CacheDir, when set, keeps downloaded images on disk and reuses them.
	CacheDir string
}

// Load fetches and decodes the image at url.
func (l *URLLoader) Load(ctx context.Context, url string) (image.Image, error) {
	if !isURL(url) {
		return nil, fmt.Errorf("%w: not an http(s) url: %s", ErrUnsupportedSource, url)
	}

	if l.CacheDir != "" {
		path, err := imagecache.DownloadAndCache(ctx, url, imagecache.CacheOptions{
			CacheDir: l.CacheDir,
			Fetch:    l.Fetch,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to fetch image from URL: %w", err)
		}
		return NewFileLoader().Load(ctx, path)
	}

	data, err := httputil.Fetch(ctx, url, l.Fetch)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch image from URL: %w", err)
	}
	return decode(bytes.NewReader(data))
}

// SmartLoader loads images from local files, directories (a random image
// is picked) and HTTP(S) URLs.
type SmartLoader struct {
	files  *FileLoader
	urls   *URLLoader
	logger hclog.Logger
}

// NewSmartLoader creates a SmartLoader. A nil logger discards output.
func NewSmartLoader(urls *URLLoader, logger hclog.Logger) *SmartLoader {
	if urls == nil {
		urls = &URLLoader{}
	}
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &SmartLoader{files: NewFileLoader(), urls: urls, logger: logger}
}

// Load loads source, which may be a file, a directory or a URL.
func (l *SmartLoader) Load(ctx context.Context, source string) (image.Image, error) {
	if isURL(source) {
		l.logger.Debug("fetching image", "url", source)
		return l.urls.Load(ctx, source)
	}

	path, err := ResolveImagePath(source)
	if err != nil {
		return nil, err
	}
	if path != source {
		l.logger.Debug("selected image from directory", "dir", source, "path", path)
	}
	l.logger.Debug("loading image", "path", path)
	return l.files.Load(ctx, path)
}

func decode(r io.Reader) (image.Image, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return nil, fmt.Errorf("%w: %w", ErrUnsupportedSource, err)
		}
		return nil, fmt.Errorf("failed to decode image (format: %s): %w", format, err)
	}
	return img, nil
}

func isURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// SupportedImageExtensions returns a list of supported image file extensions.
func SupportedImageExtensions() []string {
	return []string{".jpg", ".jpeg", ".png", ".gif", ".webp", ".bmp", ".tif", ".tiff"}
}

func isImageFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return slices.Contains(SupportedImageExtensions(), ext)
}

// ScanDirectoryForImages returns the image files directly inside dirPath,
// following symlinks but not recursing.
func ScanDirectoryForImages(dirPath string) ([]string, error) {
	entries, err := os.ReadDir(dirPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}

	var imageFiles []string
	for _, entry := range entries {
		fullPath := filepath.Join(dirPath, entry.Name())

		// Stat the target so symlinked files count and broken links are skipped.
		info, err := os.Stat(fullPath)
		if err != nil || info.IsDir() {
			continue
		}
		if isImageFile(entry.Name()) {
			imageFiles = append(imageFiles, fullPath)
		}
	}

	if len(imageFiles) == 0 {
		return nil, fmt.Errorf("%w: no supported image files found in directory: %s", ErrUnsupportedSource, dirPath)
	}
	return imageFiles, nil
}

// SelectRandomImage picks one of imagePaths using crypto/rand.
func SelectRandomImage(imagePaths []string) (string, error) {
	if len(imagePaths) == 0 {
		return "", fmt.Errorf("image path list is empty")
	}
	i, err := rand.Int(rand.Reader, big.NewInt(int64(len(imagePaths))))
	if err != nil {
		return "", fmt.Errorf("failed to generate random number: %w", err)
	}
	return imagePaths[i.Int64()], nil
}

// ResolveImagePath returns path unchanged for files and URLs, and a random
// image inside it for directories.
func ResolveImagePath(path string) (string, error) {
	if isURL(path) {
		return path, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("image file or directory not found: %s", path)
		}
		return "", fmt.Errorf("failed to access path: %w", err)
	}
	if !info.IsDir() {
		return path, nil
	}

	imageFiles, err := ScanDirectoryForImages(path)
	if err != nil {
		return "", err
	}
	return SelectRandomImage(imageFiles)
}
