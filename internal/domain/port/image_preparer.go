package port

import "lumina-path/internal/domain/entity"

// ImagePreparer интерфейс подготовки снимка к встраиванию
type ImagePreparer interface {
	// Prepare декодирует снимок и возвращает JPEG с размерами
	Prepare(imageData []byte) (*entity.PreparedImage, error)
}
