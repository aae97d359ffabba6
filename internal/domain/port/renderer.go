package port

import (
	"context"
	"time"

	"lumina-path/internal/domain/entity"
)

// ReportRequest входные данные для одного отчёта
type ReportRequest struct {
	Patient     entity.PatientRecord
	Scan        *entity.ScanImage
	Result      entity.PredictionResult
	GeneratedAt time.Time
}

// ReportRenderer интерфейс генератора отчёта
type ReportRenderer interface {
	// Render строит одностраничный документ целиком или возвращает ошибку
	Render(ctx context.Context, req ReportRequest) ([]byte, error)
}
