package entity

import (
	"errors"
	"path/filepath"
	"strings"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported image format")
	ErrEmptyScan         = errors.New("empty scan")
)

// ImageFormat формат загруженного снимка
type ImageFormat string

const (
	FormatJPEG ImageFormat = "jpeg"
	FormatPNG  ImageFormat = "png"
	FormatTIFF ImageFormat = "tiff"
)

// расширения, которые принимает форма загрузки
var allowedExtensions = map[string]ImageFormat{
	".jpg":  FormatJPEG,
	".jpeg": FormatJPEG,
	".png":  FormatPNG,
	".tif":  FormatTIFF,
	".tiff": FormatTIFF,
}

// AcceptedExtensions возвращает список расширений для атрибута accept.
func AcceptedExtensions() []string {
	return []string{".jpg", ".jpeg", ".png", ".tif", ".tiff"}
}

// FormatFromFilename определяет формат по расширению файла.
func FormatFromFilename(name string) (ImageFormat, error) {
	ext := strings.ToLower(filepath.Ext(name))
	format, ok := allowedExtensions[ext]
	if !ok {
		return "", ErrUnsupportedFormat
	}
	return format, nil
}

// ScanImage загруженный OCT-снимок. Содержимое пикселей не проверяется.
type ScanImage struct {
	Filename string
	Format   ImageFormat
	Data     []byte
}

// NewScanImage создаёт снимок из имени файла и байтов.
func NewScanImage(filename string, data []byte) (*ScanImage, error) {
	format, err := FormatFromFilename(filename)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, ErrEmptyScan
	}
	return &ScanImage{
		Filename: filename,
		Format:   format,
		Data:     data,
	}, nil
}

// PreparedImage снимок, готовый к встраиванию в отчёт (JPEG).
type PreparedImage struct {
	Data   []byte
	Width  int
	Height int
}
