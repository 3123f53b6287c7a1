// Package storage persists uploaded and modified images under the
// configured upload directory, generating unique filenames so concurrent
// writers never collide.
package storage

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"github.com/sirupsen/logrus"

	"github.com/tonewise/skintone-mcp/internal/imgio"
)

// allowedExtensions for uploads, normalized without the leading dot.
var allowedExtensions = map[string]bool{
	"png":  true,
	"jpg":  true,
	"jpeg": true,
}

// Store writes images into a single directory with generated names.
type Store struct {
	dir      string
	maxBytes int64
}

// New creates a Store rooted at dir. The directory is created on first
// write, not here, so constructing a Store has no side effects.
func New(dir string, maxBytes int64) *Store {
	return &Store{dir: dir, maxBytes: maxBytes}
}

// Dir returns the directory the store writes into.
func (s *Store) Dir() string {
	return s.dir
}

// SaveUpload validates and persists a raw upload buffer, returning the path
// of the stored file. The name has the shape
// upload_YYYYMMDD_HHMMSS_xxxxxxxx.ext. The buffer must decode as an image,
// fit under the configured size cap, and carry an allowed extension.
func (s *Store) SaveUpload(data []byte, ext string) (string, error) {
	if int64(len(data)) > s.maxBytes {
		return "", fmt.Errorf("upload of %d bytes exceeds limit of %d", len(data), s.maxBytes)
	}
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	if !allowedExtensions[ext] {
		return "", fmt.Errorf("extension %q not allowed (png, jpg, jpeg)", ext)
	}

	// Reject undecodable buffers before touching the disk.
	if _, err := imgio.Decode(data); err != nil {
		return "", err
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload dir: %w", err)
	}

	name := fmt.Sprintf("upload_%s_%s.%s", timestamp(), randomSuffix(), ext)
	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write upload: %w", err)
	}

	logrus.Infof("image saved to %s", path)
	return path, nil
}

// SaveDerived persists a modified image next to its source's name, tagged
// with the tone it was shifted toward: <stem>_<Tone>_<timestamp><ext>.
// The output format follows the source extension.
func (s *Store) SaveDerived(img image.Image, sourcePath, tone string) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload dir: %w", err)
	}

	base := filepath.Base(sourcePath)
	ext := filepath.Ext(base)
	if ext == "" {
		ext = ".png"
	}
	stem := strings.TrimSuffix(base, ext)

	name := fmt.Sprintf("%s_%s_%s%s", stem, tone, timestamp(), ext)
	path := filepath.Join(s.dir, name)
	if err := imaging.Save(img, path); err != nil {
		return "", fmt.Errorf("failed to save modified image: %w", err)
	}

	logrus.Infof("modified image saved to %s", path)
	return path, nil
}

func timestamp() string {
	return time.Now().Format("20060102_150405")
}

// randomSuffix returns 8 hex characters, enough to keep same-second
// uploads apart.
func randomSuffix() string {
	b := make([]byte, 4)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
