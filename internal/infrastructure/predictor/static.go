package predictor

import (
	"context"

	"lumina-path/internal/domain/entity"
	"lumina-path/internal/domain/port"
)

const (
	StaticCondition   = "Diabetic Retinopathy"
	StaticConfidence  = 92
	StaticExplanation = "This scan shows early signs of Diabetic Retinopathy. Detected patterns include small hemorrhages and microaneurysms."
)

// StaticPredictor заглушка вместо модели: всегда один и тот же ответ.
type StaticPredictor struct{}

// NewStaticPredictor создаёт заглушку предсказателя.
func NewStaticPredictor() *StaticPredictor {
	return &StaticPredictor{}
}

// Predict игнорирует снимок и возвращает константы.
func (p *StaticPredictor) Predict(ctx context.Context, scan *entity.ScanImage, lang entity.Language) (*entity.PredictionResult, error) {
	_ = scan
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if lang == "" {
		lang = entity.LangEnglish
	}
	return &entity.PredictionResult{
		Condition:   StaticCondition,
		Confidence:  StaticConfidence,
		Explanation: StaticExplanation,
		Language:    lang,
	}, nil
}

var _ port.Predictor = (*StaticPredictor)(nil)
