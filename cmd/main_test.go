package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"lumina-path/internal/domain/entity"
)

func TestReportCommand_WritesPDF(t *testing.T) {
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("REPORT_LAYOUT", "")
	t.Setenv("REPORT_PREFIX", "")
	out := t.TempDir()

	var stdout bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"report", "--name", "Jane Doe", "--age", "45", "--language", "French", "--scan", "", "--out", out})
	require.NoError(t, rootCmd.Execute())

	path := strings.TrimSpace(stdout.String())
	require.Equal(t, out, filepath.Dir(path))
	require.Regexp(t, entity.FilenamePattern(""), filepath.Base(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
}

func TestReportCommand_RejectsUnsupportedScan(t *testing.T) {
	t.Setenv("LOG_LEVEL", "error")
	dir := t.TempDir()
	scan := filepath.Join(dir, "scan.bmp")
	require.NoError(t, os.WriteFile(scan, []byte("BM"), 0o600))

	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"report", "--language", "English", "--scan", scan, "--out", dir})
	err := rootCmd.Execute()
	require.ErrorIs(t, err, entity.ErrUnsupportedFormat)
}
