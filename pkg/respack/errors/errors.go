package errors

import "errors"

var (
	// Configuration errors 🗺️
	ErrUnknownVersion  = errors.New("❌ no pack format known for version")
	ErrVersionNotFound = errors.New("❌ version not found in manifest")
	ErrUnknownColor    = errors.New("❌ unknown color name")
	ErrBadColorRule    = errors.New("❌ malformed color rule")

	// Language file errors 🗣️
	ErrMalformedLine = errors.New("❌ malformed language line")

	// Output errors 📦
	ErrUnsupportedDist = errors.New("❌ unsupported dist format")
)
