//go:build !gocv
// +build !gocv

package vision

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"

	"golang.org/x/image/draw"

	"lumina-path/internal/domain/entity"
	"lumina-path/internal/domain/port"
)

// Preparer готовит снимок к встраиванию в PDF без OpenCV.
type Preparer struct {
	MaxSide int
	Quality int
}

// NewPreparer создаёт подготовщик с ограничением по большей стороне.
func NewPreparer(maxSide int) *Preparer {
	return &Preparer{
		MaxSide: maxSide,
		Quality: DefaultQuality,
	}
}

// Prepare декодирует jpeg/png/tiff, при необходимости уменьшает и кодирует в JPEG.
func (p *Preparer) Prepare(imageData []byte) (*entity.PreparedImage, error) {
	if len(imageData) == 0 {
		return nil, errEmptyImage
	}
	if err := checkDimensions(imageData); err != nil {
		return nil, err
	}

	src, _, err := image.Decode(bytes.NewReader(imageData))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	b := src.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return nil, errEmptyImage
	}

	w, h := fitMaxSide(b.Dx(), b.Dy(), p.MaxSide)
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	// Прозрачные области PNG заливаем белым, JPEG не хранит альфу.
	draw.Draw(dst, dst.Bounds(), image.White, image.Point{}, draw.Src)
	if w == b.Dx() && h == b.Dy() {
		draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Over)
	} else {
		draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: p.Quality}); err != nil {
		return nil, fmt.Errorf("encode jpeg: %w", err)
	}

	return &entity.PreparedImage{
		Data:   buf.Bytes(),
		Width:  w,
		Height: h,
	}, nil
}

var _ port.ImagePreparer = (*Preparer)(nil)
