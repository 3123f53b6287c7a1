package imgio

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"
)

// PNGResult is the transport envelope for tools that return an image:
// dimensions plus the image itself as base64-encoded PNG.
type PNGResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// EncodePNG packages an in-memory image as a PNGResult.
func EncodePNG(img image.Image) (*PNGResult, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}

	bounds := img.Bounds()
	return &PNGResult{
		Width:       bounds.Dx(),
		Height:      bounds.Dy(),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}
