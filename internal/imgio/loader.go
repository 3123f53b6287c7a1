package imgio

import (
	"bytes"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/disintegration/imaging"

	"github.com/tonewise/skintone-mcp/internal/skin"
)

// Cache provides thread-safe caching of decoded images keyed by file path.
// Once loaded, subsequent Load calls for the same path return the cached
// copy without disk I/O. Entries stay until Evict or Clear.
type Cache struct {
	mu     sync.RWMutex
	images map[string]image.Image
}

// NewCache creates an empty image cache ready for concurrent use.
func NewCache() *Cache {
	return &Cache{images: make(map[string]image.Image)}
}

// Load returns the decoded image at path, reading and decoding it on first
// access. Supported formats are PNG, JPEG, and GIF; JPEG EXIF orientation is
// applied during decode. Undecodable files fail with skin.ErrInvalidImage.
func (c *Cache) Load(path string) (image.Image, error) {
	c.mu.RLock()
	if img, ok := c.images[path]; ok {
		c.mu.RUnlock()
		return img, nil
	}
	c.mu.RUnlock()

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, err := imaging.Decode(f, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", filepath.Base(path), skin.ErrInvalidImage)
	}

	c.mu.Lock()
	c.images[path] = img
	c.mu.Unlock()

	return img, nil
}

// Evict removes the entry for path, if any. The next Load reads from disk.
func (c *Cache) Evict(path string) {
	c.mu.Lock()
	delete(c.images, path)
	c.mu.Unlock()
}

// Clear drops every cached image.
func (c *Cache) Clear() {
	c.mu.Lock()
	c.images = make(map[string]image.Image)
	c.mu.Unlock()
}

// Decode decodes a raw upload buffer, applying EXIF orientation. An
// undecodable buffer fails with skin.ErrInvalidImage.
func Decode(data []byte) (image.Image, error) {
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image buffer: %w", skin.ErrInvalidImage)
	}
	return img, nil
}

// Info describes a loaded image file.
type Info struct {
	Width         int    `json:"width"`
	Height        int    `json:"height"`
	Format        string `json:"format"` // by extension: png, jpeg, gif, unknown
	FileSizeBytes int64  `json:"file_size_bytes"`
}

// LoadInfo loads an image through the cache and reports its dimensions,
// extension-derived format, and on-disk size.
func LoadInfo(cache *Cache, path string) (*Info, error) {
	img, err := cache.Load(path)
	if err != nil {
		return nil, err
	}

	stat, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	format := "unknown"
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		format = "png"
	case ".jpg", ".jpeg":
		format = "jpeg"
	case ".gif":
		format = "gif"
	}

	bounds := img.Bounds()
	return &Info{
		Width:         bounds.Dx(),
		Height:        bounds.Dy(),
		Format:        format,
		FileSizeBytes: stat.Size(),
	}, nil
}

// Dimensions holds just the width and height of an image.
type Dimensions struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// LoadDimensions is the lightweight variant of LoadInfo.
func LoadDimensions(cache *Cache, path string) (*Dimensions, error) {
	img, err := cache.Load(path)
	if err != nil {
		return nil, err
	}
	bounds := img.Bounds()
	return &Dimensions{Width: bounds.Dx(), Height: bounds.Dy()}, nil
}
