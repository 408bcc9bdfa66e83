package gemini

import (
	"FridgeMate/domain"
	"bytes"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/gabriel-vasile/mimetype"
)

const (
	maxImageSide = 1536
	jpegQuality  = 85
)

// PrepareImage sniffs the upload, shrinks it so its longest side is at most
// maxImageSide and re-encodes it as JPEG. Formats the decoder does not know
// (webp, heic) are passed through with their detected MIME type.
func PrepareImage(data []byte) ([]byte, string, error) {
	if len(data) == 0 {
		return nil, "", domain.ErrEmptyImage
	}

	mime := mimetype.Detect(data)
	if !strings.HasPrefix(mime.String(), "image/") {
		return nil, "", domain.ErrInvalidImageFormat
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return data, mime.String(), nil
	}

	bounds := img.Bounds()
	if bounds.Dx() > maxImageSide || bounds.Dy() > maxImageSide {
		img = imaging.Fit(img, maxImageSide, maxImageSide, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(jpegQuality)); err != nil {
		return data, mime.String(), nil
	}
	return buf.Bytes(), "image/jpeg", nil
}
