// Package imgio handles getting images into and out of the process: loading
// and caching decoded images by path, decoding raw upload buffers, and
// packaging result images as base64 PNG for transport over the protocol.
//
// Decoding honors EXIF orientation so that camera uploads are analyzed the
// way the user saw them. The Cache type is safe for concurrent use; decoded
// images are immutable and shared between callers.
package imgio
