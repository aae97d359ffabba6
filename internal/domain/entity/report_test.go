package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestReportFilename(t *testing.T) {
	ts := time.Date(2024, 3, 7, 9, 5, 1, 0, time.UTC)
	require.Equal(t, "PathAI_Report_20240307_090501.pdf", ReportFilename("", ts))
	require.Equal(t, "Retina_20240307_090501.pdf", ReportFilename("Retina", ts))
}

func TestFilenamePattern(t *testing.T) {
	ts := time.Date(2031, 12, 31, 23, 59, 59, 0, time.UTC)
	require.Regexp(t, FilenamePattern(""), ReportFilename("", ts))
	require.NotRegexp(t, FilenamePattern(""), "PathAI_Report_2031_235959.pdf")
}

func TestNewReportDocument(t *testing.T) {
	ts := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	doc := NewReportDocument("", ts, []byte("%PDF-"))
	require.Equal(t, ReportMIMEType, doc.MIMEType)
	require.Equal(t, "PathAI_Report_20240102_030405.pdf", doc.Filename)
	require.NotEqual(t, [16]byte{}, [16]byte(doc.ID))
}
