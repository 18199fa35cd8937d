package imagedata

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// Check validates an inline base64 image before anything touches the
// database: the decoded size must stay under maxBytes and the MIME type
// must be an image type. The size bound is computed from the encoded
// length so oversized payloads are rejected without decoding them.
func Check(imageData, imageType string, maxBytes int64) error {
	if strings.TrimSpace(imageData) == "" {
		return fmt.Errorf("image data is required")
	}
	if !strings.HasPrefix(imageType, "image/") {
		return fmt.Errorf("unsupported image type %q", imageType)
	}

	// Tolerate data-URL payloads ("data:image/png;base64,....").
	if idx := strings.Index(imageData, ","); idx != -1 && strings.HasPrefix(imageData, "data:") {
		imageData = imageData[idx+1:]
	}

	if int64(base64.StdEncoding.DecodedLen(len(imageData))) > maxBytes {
		return fmt.Errorf("image exceeds the %d byte limit", maxBytes)
	}

	if _, err := base64.StdEncoding.DecodeString(imageData); err != nil {
		return fmt.Errorf("image data is not valid base64: %w", err)
	}
	return nil
}
