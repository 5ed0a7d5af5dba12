package images

import (
	"bytes"
	"image"
	_ "image/jpeg"
	_ "image/png"

	"github.com/chai2010/webp"
	xdraw "golang.org/x/image/draw"
)

const maxPhotoDim = 512

// EncodeProfilePhoto decodes a JPEG/PNG upload, downscales it so neither
// dimension exceeds maxPhotoDim, and re-encodes as webp. Smaller images keep
// their size.
func EncodeProfilePhoto(data []byte) ([]byte, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	b := src.Bounds()
	w, h := b.Dx(), b.Dy()

	if w > maxPhotoDim || h > maxPhotoDim {
		if w >= h {
			h = h * maxPhotoDim / w
			w = maxPhotoDim
		} else {
			w = w * maxPhotoDim / h
			h = maxPhotoDim
		}
		if w < 1 {
			w = 1
		}
		if h < 1 {
			h = 1
		}

		dst := image.NewRGBA(image.Rect(0, 0, w, h))
		xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, b, xdraw.Over, nil)
		src = dst
	}

	var buf bytes.Buffer
	if err := webp.Encode(&buf, src, &webp.Options{Quality: 85}); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
