package vision

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"math"

	_ "golang.org/x/image/tiff"
)

const (
	DefaultMaxSide = 1024
	DefaultQuality = 90

	// MaxPixels предел заявленного в заголовке размера снимка
	MaxPixels = 50_000_000
)

var (
	errEmptyImage    = errors.New("empty image")
	errImageTooLarge = errors.New("image too large")
)

// checkDimensions читает только заголовок и отсекает снимки больше MaxPixels
// до того, как декодер выделит память под пиксели.
func checkDimensions(imageData []byte) error {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(imageData))
	if err != nil {
		return fmt.Errorf("decode image header: %w", err)
	}
	return checkPixels(cfg.Width, cfg.Height)
}

func checkPixels(w, h int) error {
	if w <= 0 || h <= 0 {
		return errEmptyImage
	}
	if int64(w)*int64(h) > MaxPixels {
		return fmt.Errorf("%w: %dx%d", errImageTooLarge, w, h)
	}
	return nil
}

// fitMaxSide уменьшает размеры так, чтобы большая сторона не превышала maxSide.
func fitMaxSide(w, h, maxSide int) (int, int) {
	if maxSide <= 0 || (w <= maxSide && h <= maxSide) {
		return w, h
	}
	scale := float64(maxSide) / float64(maxInt(w, h))
	newW := maxInt(1, int(math.Round(float64(w)*scale)))
	newH := maxInt(1, int(math.Round(float64(h)*scale)))
	return newW, newH
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
