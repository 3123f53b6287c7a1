package skin

import "errors"

// Sentinel errors returned by the pipeline. The messages double as the
// user-facing text surfaced by the serving layer.
var (
	// ErrInvalidImage indicates an undecodable or empty image buffer.
	// Fatal to the call; not retried.
	ErrInvalidImage = errors.New("could not read image")

	// ErrNoSkinDetected indicates a valid image whose skin mask came back
	// empty. Recoverable; the caller may offer a retry with another image.
	ErrNoSkinDetected = errors.New("no skin detected in the image")

	// ErrInvalidTargetTone indicates a tone name outside the five bands.
	// Callers are expected to validate input before calling ApplyTone.
	ErrInvalidTargetTone = errors.New("invalid target tone")
)
