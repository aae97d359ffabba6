package report

import (
	"bytes"
	"context"
	"fmt"

	"github.com/go-pdf/fpdf"
	"go.uber.org/zap"

	"lumina-path/internal/domain/entity"
	"lumina-path/internal/domain/port"
)

// PDFRenderer рисует отчёт по макету через fpdf.
type PDFRenderer struct {
	layout   *Layout
	preparer port.ImagePreparer
	logger   *zap.Logger
}

// NewPDFRenderer создаёт генератор отчётов.
func NewPDFRenderer(layout *Layout, preparer port.ImagePreparer, logger *zap.Logger) *PDFRenderer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PDFRenderer{
		layout:   layout,
		preparer: preparer,
		logger:   logger,
	}
}

// Render строит документ целиком. Снимок, который не удалось декодировать, пропускается.
func (r *PDFRenderer) Render(ctx context.Context, req port.ReportRequest) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	page := Compose(r.layout, req, r.prepareScan(req.Scan))

	pdf := fpdf.New(r.layout.Page.Orientation, "pt", r.layout.Page.Size, "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetMargins(0, 0, 0)
	pdf.SetTitle(r.layout.Title.Text, true)
	pdf.SetSubject(req.Result.Condition, true)
	pdf.SetCreator("LuminaPath", false)
	pdf.SetCreationDate(req.GeneratedAt)
	pdf.SetModificationDate(req.GeneratedAt)
	pdf.AddPage()

	for _, el := range page.Elements {
		el.draw(pdf)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("write pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *PDFRenderer) prepareScan(scan *entity.ScanImage) *entity.PreparedImage {
	if scan == nil || r.preparer == nil {
		return nil
	}
	img, err := r.preparer.Prepare(scan.Data)
	if err != nil {
		r.logger.Warn("scan skipped in report",
			zap.String("filename", scan.Filename),
			zap.Error(err),
		)
		return nil
	}
	return img
}

var _ port.ReportRenderer = (*PDFRenderer)(nil)
