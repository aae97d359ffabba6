package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"lumina-path/internal/domain/entity"
)

var reportFlags struct {
	name     string
	age      int
	phone    string
	address  string
	language string
	scan     string
	out      string
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Render a PDF report to a file",
	Example: `  luminapath report --name "Jane Doe" --age 45 --scan retina.jpg --out ./reports`,
	Args: cobra.NoArgs,
	RunE: runReport,
}

func init() {
	f := reportCmd.Flags()
	f.StringVar(&reportFlags.name, "name", "", "patient full name")
	f.IntVar(&reportFlags.age, "age", 0, "patient age (0-120)")
	f.StringVar(&reportFlags.phone, "phone", "", "patient phone number")
	f.StringVar(&reportFlags.address, "address", "", "patient address")
	f.StringVar(&reportFlags.language, "language", string(entity.LangEnglish), "explanation language")
	f.StringVar(&reportFlags.scan, "scan", "", "path to the OCT image (jpg, jpeg, png, tif, tiff)")
	f.StringVar(&reportFlags.out, "out", ".", "output directory")
}

func runReport(cmd *cobra.Command, args []string) error {
	lang, err := entity.ParseLanguage(reportFlags.language)
	if err != nil {
		return fmt.Errorf("%w: %s", err, reportFlags.language)
	}

	var scan *entity.ScanImage
	if reportFlags.scan != "" {
		data, err := os.ReadFile(reportFlags.scan)
		if err != nil {
			return fmt.Errorf("read scan: %w", err)
		}
		scan, err = entity.NewScanImage(filepath.Base(reportFlags.scan), data)
		if err != nil {
			return fmt.Errorf("scan %s: %w", reportFlags.scan, err)
		}
	} else {
		fmt.Fprintln(cmd.ErrOrStderr(), "Please upload an OCT image to proceed. Rendering without an image.")
	}

	c, err := buildContainer()
	if err != nil {
		return err
	}

	patient := entity.NewPatientRecord(reportFlags.name, reportFlags.age, reportFlags.phone, reportFlags.address)
	doc, err := c.AnalysisService.GenerateReport(cmd.Context(), patient, scan, lang)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(reportFlags.out, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	path := filepath.Join(reportFlags.out, doc.Filename)
	if err := os.WriteFile(path, doc.Data, 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	logger.Info("report written", zap.String("path", path), zap.String("report_id", doc.ID.String()))
	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}
