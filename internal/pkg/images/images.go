// Package images carries the static placeholder attached to accounts and
// products created without an uploaded image.
package images

import _ "embed"

//go:embed no-photo.png
var placeholderPNG []byte

const (
	// PlaceholderName is the filename recorded next to the default image.
	PlaceholderName = "no-photo.png"
	// PlaceholderType is the MIME type of the default image.
	PlaceholderType = "image/png"
)

// Placeholder returns a copy of the default image bytes so callers cannot
// mutate the embedded asset.
func Placeholder() []byte {
	out := make([]byte, len(placeholderPNG))
	copy(out, placeholderPNG)
	return out
}
