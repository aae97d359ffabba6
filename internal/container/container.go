package container

import (
	app "lumina-path/internal/application"
	"lumina-path/internal/domain/port"
)

type Container struct {
	AnalysisService *app.AnalysisService
}

func New(predictor port.Predictor, renderer port.ReportRenderer, opts ...app.Option) *Container {
	analysisService := app.NewAnalysisService(predictor, renderer, opts...)

	return &Container{
		AnalysisService: analysisService,
	}
}
