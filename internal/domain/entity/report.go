package entity

import (
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"
)

const (
	DefaultReportPrefix = "PathAI_Report"
	ReportMIMEType      = "application/pdf"
	ReportExtension     = "pdf"

	filenameTimeLayout = "20060102_150405"
)

// ReportDocument сгенерированный отчёт. Не сохраняется.
type ReportDocument struct {
	ID          uuid.UUID
	Filename    string
	MIMEType    string
	Data        []byte
	GeneratedAt time.Time
}

// NewReportDocument оборачивает байты отчёта.
func NewReportDocument(prefix string, generatedAt time.Time, data []byte) *ReportDocument {
	return &ReportDocument{
		ID:          uuid.New(),
		Filename:    ReportFilename(prefix, generatedAt),
		MIMEType:    ReportMIMEType,
		Data:        data,
		GeneratedAt: generatedAt,
	}
}

// ReportFilename собирает имя файла вида PREFIX_YYYYMMDD_HHMMSS.pdf.
func ReportFilename(prefix string, t time.Time) string {
	if prefix == "" {
		prefix = DefaultReportPrefix
	}
	return fmt.Sprintf("%s_%s.%s", prefix, t.Format(filenameTimeLayout), ReportExtension)
}

// FilenamePattern возвращает регулярное выражение для имён отчётов.
func FilenamePattern(prefix string) *regexp.Regexp {
	if prefix == "" {
		prefix = DefaultReportPrefix
	}
	return regexp.MustCompile(`^` + regexp.QuoteMeta(prefix) + `_\d{8}_\d{6}\.` + ReportExtension + `$`)
}
