package web

import (
	"context"
	"embed"
	"errors"
	"html/template"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"lumina-path/internal/domain/entity"
)

//go:embed templates/*.html
var templatesFS embed.FS

const shutdownTimeout = 5 * time.Second

// Analyzer сервис, к которому обращаются обработчики
type Analyzer interface {
	Predict(ctx context.Context, scan *entity.ScanImage, lang entity.Language) (*entity.PredictionResult, error)
	GenerateReport(ctx context.Context, patient entity.PatientRecord, scan *entity.ScanImage, lang entity.Language) (*entity.ReportDocument, error)
}

// Options параметры HTTP-сервера
type Options struct {
	Addr           string
	MaxUploadBytes int64
	CORSOrigins    []string
}

// Server веб-интерфейс и JSON API
type Server struct {
	opts     Options
	analyzer Analyzer
	logger   *zap.Logger
	engine   *gin.Engine
}

// NewServer собирает gin-движок со всеми маршрутами.
func NewServer(opts Options, analyzer Analyzer, logger *zap.Logger) (*Server, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	tmpl, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, err
	}

	s := &Server{
		opts:     opts,
		analyzer: analyzer,
		logger:   logger,
	}

	engine := gin.New()
	engine.SetHTMLTemplate(tmpl)
	if opts.MaxUploadBytes > 0 {
		engine.MaxMultipartMemory = opts.MaxUploadBytes
	}
	engine.Use(
		requestID(),
		accessLog(logger),
		gin.Recovery(),
		limitBody(opts.MaxUploadBytes),
		skipReportCompression(),
		gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{"/api/v1/reports"})),
	)

	s.routes(engine)
	s.engine = engine
	return s, nil
}

func (s *Server) routes(r *gin.Engine) {
	r.GET("/", s.showForm)
	r.POST("/", s.submitForm)
	r.GET("/healthz", s.health)

	api := r.Group("/api/v1")
	api.Use(cors.New(s.corsConfig()))
	{
		api.GET("/languages", s.listLanguages)
		api.POST("/predictions", s.createPrediction)
		api.POST("/reports", s.createReport)
	}
}

func (s *Server) corsConfig() cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", requestIDHeader},
		ExposeHeaders: []string{"Content-Disposition", requestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if len(s.opts.CORSOrigins) == 0 || (len(s.opts.CORSOrigins) == 1 && s.opts.CORSOrigins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = s.opts.CORSOrigins
	}
	return cfg
}

// Handler возвращает http.Handler для тестов и встраивания.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run слушает адрес до отмены контекста, затем корректно останавливает сервер.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.opts.Addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("http server listening", zap.String("addr", s.opts.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	s.logger.Info("http server shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
