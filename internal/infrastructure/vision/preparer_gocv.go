//go:build gocv
// +build gocv

package vision

import (
	"errors"
	"fmt"
	"image"

	"gocv.io/x/gocv"

	"lumina-path/internal/domain/entity"
	"lumina-path/internal/domain/port"
)

// Preparer готовит снимок к встраиванию в PDF через OpenCV.
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

// Prepare декодирует снимок, приводит к MaxSide и кодирует в JPEG.
func (p *Preparer) Prepare(imageData []byte) (*entity.PreparedImage, error) {
	if len(imageData) == 0 {
		return nil, errEmptyImage
	}
	if err := checkDimensions(imageData); err != nil {
		return nil, err
	}

	mat, err := decodeToMat(imageData)
	if err != nil {
		mat.Close()
		return nil, err
	}
	defer func() { mat.Close() }()

	if err := checkPixels(mat.Cols(), mat.Rows()); err != nil {
		return nil, err
	}

	w, h := fitMaxSide(mat.Cols(), mat.Rows(), p.MaxSide)
	if w != mat.Cols() || h != mat.Rows() {
		resized := gocv.NewMat()
		gocv.Resize(mat, &resized, image.Pt(w, h), 0, 0, gocv.InterpolationArea)
		mat.Close()
		mat = resized
	}

	buf, err := gocv.IMEncodeWithParams(gocv.JPEGFileExt, mat, []int{gocv.IMWriteJpegQuality, p.Quality})
	if err != nil {
		return nil, fmt.Errorf("encode jpeg: %w", err)
	}
	defer buf.Close()

	// Байты буфера живут в памяти OpenCV, копируем до Close.
	data := append([]byte(nil), buf.GetBytes()...)

	return &entity.PreparedImage{
		Data:   data,
		Width:  mat.Cols(),
		Height: mat.Rows(),
	}, nil
}

// decodeToMat превращает байты изображения в gocv.Mat.
func decodeToMat(imageData []byte) (gocv.Mat, error) {
	mat, err := gocv.IMDecode(imageData, gocv.IMReadColor)
	if err == nil && !mat.Empty() {
		return mat, nil
	}
	if !mat.Empty() {
		mat.Close()
	}
	return gocv.NewMat(), errors.New("failed to decode image")
}

var _ port.ImagePreparer = (*Preparer)(nil)
