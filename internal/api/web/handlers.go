package web

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"lumina-path/internal/domain/entity"
)

const (
	actionPredict = "predict"
	actionReport  = "report"
)

func (s *Server) showForm(c *gin.Context) {
	data := newPageData(entity.MatchLanguage(c.GetHeader("Accept-Language")))
	s.renderPage(c, http.StatusOK, data)
}

func (s *Server) submitForm(c *gin.Context) {
	in, err := parseForm(c, s.opts.MaxUploadBytes)
	if err != nil {
		data := newPageData(in.Language)
		data.Patient = in.Patient
		data.Error = err.Error()
		s.renderPage(c, statusFor(err), data)
		return
	}

	if in.Action == actionReport {
		s.sendReport(c, in)
		return
	}

	data := newPageData(in.Language)
	data.Patient = in.Patient
	data.withScan(in.Scan)
	data.Predicted = in.Action == actionPredict
	s.renderPage(c, http.StatusOK, data)
}

// renderPage дополняет страницу постоянными значениями пояснения и уверенности.
func (s *Server) renderPage(c *gin.Context, status int, data *pageData) {
	result, err := s.analyzer.Predict(c.Request.Context(), nil, data.Language)
	if err != nil {
		_ = c.Error(err)
		c.String(http.StatusInternalServerError, "prediction failed")
		return
	}
	data.Result = result
	c.HTML(status, "index.html", data)
}

func (s *Server) sendReport(c *gin.Context, in *formInput) {
	doc, err := s.analyzer.GenerateReport(c.Request.Context(), in.Patient, in.Scan, in.Language)
	if err != nil {
		s.logger.Error("report generation failed", zap.Error(err), zap.String("request_id", c.GetString(requestIDKey)))
		_ = c.Error(err)
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, doc.Filename))
	c.Header("X-Report-ID", doc.ID.String())
	c.Data(http.StatusOK, doc.MIMEType, doc.Data)
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
