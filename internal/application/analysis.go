package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"lumina-path/internal/domain/entity"
	"lumina-path/internal/domain/port"
)

type AnalysisService struct {
	predictor    port.Predictor
	renderer     port.ReportRenderer
	reportPrefix string
	now          func() time.Time
	logger       *zap.Logger
}

// Option настраивает AnalysisService.
type Option func(*AnalysisService)

// WithClock подменяет источник времени для отметки в отчёте.
func WithClock(now func() time.Time) Option {
	return func(s *AnalysisService) {
		s.now = now
	}
}

// WithReportPrefix задаёт префикс имени файла отчёта.
func WithReportPrefix(prefix string) Option {
	return func(s *AnalysisService) {
		s.reportPrefix = prefix
	}
}

// WithLogger задаёт логгер сервиса.
func WithLogger(logger *zap.Logger) Option {
	return func(s *AnalysisService) {
		s.logger = logger
	}
}

// NewAnalysisService создаёт сервис, который связывает предсказание и отчёт.
func NewAnalysisService(predictor port.Predictor, renderer port.ReportRenderer, opts ...Option) *AnalysisService {
	s := &AnalysisService{
		predictor:    predictor,
		renderer:     renderer,
		reportPrefix: entity.DefaultReportPrefix,
		now:          time.Now,
		logger:       zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Predict запускает предсказатель; scan может быть nil.
func (s *AnalysisService) Predict(ctx context.Context, scan *entity.ScanImage, lang entity.Language) (*entity.PredictionResult, error) {
	if s.predictor == nil {
		return nil, errors.New("predictor is not configured")
	}

	result, err := s.predictor.Predict(ctx, scan, lang)
	if err != nil {
		return nil, fmt.Errorf("predict: %w", err)
	}

	s.logger.Debug("prediction done",
		zap.String("condition", result.Condition),
		zap.Int("confidence", result.Confidence),
		zap.String("language", string(result.Language)),
		zap.Bool("has_scan", scan != nil),
	)
	return result, nil
}

// GenerateReport делает предсказание и строит по нему PDF-отчёт.
func (s *AnalysisService) GenerateReport(ctx context.Context, patient entity.PatientRecord, scan *entity.ScanImage, lang entity.Language) (*entity.ReportDocument, error) {
	if s.renderer == nil {
		return nil, errors.New("renderer is not configured")
	}

	result, err := s.Predict(ctx, scan, lang)
	if err != nil {
		return nil, err
	}

	generatedAt := s.now()
	data, err := s.renderer.Render(ctx, port.ReportRequest{
		Patient:     patient,
		Scan:        scan,
		Result:      *result,
		GeneratedAt: generatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("render report: %w", err)
	}

	doc := entity.NewReportDocument(s.reportPrefix, generatedAt, data)
	s.logger.Info("report generated",
		zap.String("report_id", doc.ID.String()),
		zap.String("filename", doc.Filename),
		zap.Int("bytes", len(doc.Data)),
	)
	return doc, nil
}
