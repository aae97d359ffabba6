package web

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lumina-path/internal/domain/entity"
)

type languageResponse struct {
	Name string `json:"name"`
	Tag  string `json:"tag"`
}

type predictionResponse struct {
	entity.PredictionResult
	LanguageTag string `json:"language_tag"`
	HasScan     bool   `json:"has_scan"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) listLanguages(c *gin.Context) {
	langs := entity.Languages()
	out := make([]languageResponse, 0, len(langs))
	for _, l := range langs {
		out = append(out, languageResponse{Name: string(l), Tag: l.Tag().String()})
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) createPrediction(c *gin.Context) {
	in, err := parseForm(c, s.opts.MaxUploadBytes)
	if err != nil {
		c.JSON(statusFor(err), errorResponse{Error: err.Error()})
		return
	}

	result, err := s.analyzer.Predict(c.Request.Context(), in.Scan, in.Language)
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "prediction failed"})
		return
	}

	c.JSON(http.StatusOK, predictionResponse{
		PredictionResult: *result,
		LanguageTag:      result.Language.Tag().String(),
		HasScan:          in.Scan != nil,
	})
}

func (s *Server) createReport(c *gin.Context) {
	in, err := parseForm(c, s.opts.MaxUploadBytes)
	if err != nil {
		c.JSON(statusFor(err), errorResponse{Error: err.Error()})
		return
	}
	s.sendReport(c, in)
}
