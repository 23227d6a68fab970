package imaging

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/chai2010/webp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"

	"github.com/BruksfildServices01/petshop-scheduler/internal/httperr"
)

const (
	DefaultMaxSide = 800
	DefaultQuality = 80

	// MaxPixels limita largura x altura declaradas no cabeçalho (40 MP).
	MaxPixels = 40_000_000
)

var (
	ErrUnsupportedImage = httperr.Validation("unsupported_image", "Formato de imagem não suportado. Envie JPEG, PNG ou WebP")
	ErrImageTooLarge    = httperr.Validation("image_too_large", "Imagem muito grande. Máximo de 40 megapixels")
)

// ToWebP decodifica JPEG/PNG/WebP, reduz o maior lado para maxSide (sem
// ampliar) e reencoda em WebP.
func ToWebP(r io.Reader, maxSide int, quality float32) ([]byte, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read image: %w", err)
	}

	// o cabeçalho vem antes: Decode aloca w*h sem ler os pixels
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, ErrUnsupportedImage
	}
	if cfg.Width <= 0 || cfg.Height <= 0 || int64(cfg.Width)*int64(cfg.Height) > MaxPixels {
		return nil, ErrImageTooLarge
	}

	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, ErrUnsupportedImage
	}

	img := Fit(src, maxSide)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: quality}); err != nil {
		return nil, fmt.Errorf("encode webp: %w", err)
	}
	return buf.Bytes(), nil
}

// Fit mantém a proporção; imagens menores que maxSide voltam como estão.
func Fit(src image.Image, maxSide int) image.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if maxSide <= 0 || (w <= maxSide && h <= maxSide) {
		return src
	}

	nw, nh := maxSide, maxSide
	if w >= h {
		nh = h * maxSide / w
	} else {
		nw = w * maxSide / h
	}
	if nw < 1 {
		nw = 1
	}
	if nh < 1 {
		nh = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}
