// Package server implements the MCP (Model Context Protocol) stdio server
// that exposes the skin tone pipeline as tools.
//
// The server reads newline-delimited JSON-RPC 2.0 requests from stdin and
// writes responses to stdout; all logging goes to stderr so the protocol
// stream stays clean.
//
// # Tools
//
// Image plumbing:
//   - image_load: image metadata (dimensions, format, file size)
//   - image_dimensions: width and height only
//   - image_save_upload: persist a base64 upload buffer with a unique name
//
// Skin tone pipeline:
//   - skin_segment: coverage statistics plus a rendered mask image
//   - skin_detect_tone: dominant tone band with the averaged skin color
//   - skin_apply_tone: recolored image, optionally persisted
//
// Recommendations:
//   - color_recommend: curated palettes and avoid list for a band
//   - color_complementary: color-wheel companions for a base color
//
// # Error Mapping
//
// Tool failures surface as JSON-RPC errors with code -32000 and the
// pipeline's user-facing message ("no skin detected in the image",
// "could not read image", "invalid target tone") as data. Recommendation
// lookup never fails: unknown bands fall back to Medium inside the palette
// package.
package server
