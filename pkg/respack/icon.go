package respack

import (
	"bytes"
	"fmt"
	"image/png"
	"os"

	"github.com/nfnt/resize"
)

// IconSize is the edge length the game expects for pack.png.
const IconSize = 128

// LoadPackIcon reads a PNG file and scales it to IconSize×IconSize for use
// as pack artwork. Source images already at the right size pass through
// byte-identical.
func LoadPackIcon(iconPath string) ([]byte, error) {
	data, err := os.ReadFile(iconPath)
	if err != nil {
		return nil, fmt.Errorf("reading pack icon: %w", err)
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding pack icon %s: %w", iconPath, err)
	}

	bounds := img.Bounds()
	if bounds.Dx() == IconSize && bounds.Dy() == IconSize {
		return data, nil
	}

	scaled := resize.Resize(IconSize, IconSize, img, resize.Lanczos3)
	var buf bytes.Buffer
	if err := png.Encode(&buf, scaled); err != nil {
		return nil, fmt.Errorf("encoding pack icon: %w", err)
	}
	return buf.Bytes(), nil
}
