package helper

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
)

const (
	// sisi terpanjang avatar setelah resize
	maxAvatarDimension = 1024
	webpQuality        = 80
)

// ReencodeToWebP decode gambar (jpeg/png/gif/webp), resize kalau terlalu
// besar, lalu encode ulang ke WebP lossy.
func ReencodeToWebP(data []byte) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		// mungkin sudah webp
		if img, err = webp.Decode(bytes.NewReader(data)); err != nil {
			return nil, fmt.Errorf("decode gambar: %w", err)
		}
	}

	bounds := img.Bounds()
	if bounds.Dx() > maxAvatarDimension || bounds.Dy() > maxAvatarDimension {
		img = imaging.Fit(img, maxAvatarDimension, maxAvatarDimension, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: webpQuality}); err != nil {
		return nil, fmt.Errorf("encode webp: %w", err)
	}
	return buf.Bytes(), nil
}
