// Package skin implements the skin tone analysis pipeline: segmentation of
// skin-colored pixels, classification of the dominant skin tone into one of
// five bands, and recoloring of skin regions toward a target band.
//
// # Pipeline
//
// The three entry points are used in sequence by callers:
//
//   - Segment produces a boolean Mask of skin-colored pixels.
//   - AnalyzeTone averages the masked pixels and classifies the result.
//   - ApplyTone shifts the brightness/saturation of masked pixels toward a
//     requested Tone and returns a new image.
//
// All functions take a decoded image.Image, own a working copy for the
// duration of the call, and never mutate the caller's buffer. There is no
// state shared between calls, so concurrent calls on different images are
// safe without locking.
//
// # HSV Convention
//
// All thresholding and tone adjustment happens in an 8-bit HSV encoding with
// hue on the halved-degree scale: H in [0,179] (degrees / 2), S and V in
// [0,255]. The skin color bounds and the brightness classification
// thresholds are defined on this scale and must not be mixed with the
// 360-degree convention used by float color libraries.
//
// # Error Handling
//
// Failures are reported through sentinel errors (ErrInvalidImage,
// ErrNoSkinDetected, ErrInvalidTargetTone) that callers test with errors.Is.
// No partial results are returned on failure.
package skin
