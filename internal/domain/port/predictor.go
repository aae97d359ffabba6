package port

import (
	"context"

	"lumina-path/internal/domain/entity"
)

// Predictor интерфейс модели, оценивающей снимок
type Predictor interface {
	// Predict возвращает результат для снимка; scan может быть nil
	Predict(ctx context.Context, scan *entity.ScanImage, lang entity.Language) (*entity.PredictionResult, error)
}
