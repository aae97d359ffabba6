package web

import (
	"encoding/base64"
	"errors"
	"fmt"
	"html/template"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"lumina-path/internal/domain/entity"
)

var (
	errInvalidAge   = errors.New("age must be a whole number")
	errScanTooLarge = errors.New("scan exceeds the upload limit")
)

const msgNoScan = "Please upload an OCT image to proceed."

// formInput данные одной отправки формы
type formInput struct {
	Action   string
	Patient  entity.PatientRecord
	Language entity.Language
	Scan     *entity.ScanImage
}

// parseForm разбирает multipart-форму. Снимок берётся из поля scan,
// а если файла нет, из скрытых полей предыдущего ответа.
// maxScan ограничивает размер снимка в байтах; 0 снимает ограничение.
func parseForm(c *gin.Context, maxScan int64) (*formInput, error) {
	in := &formInput{
		Action:   c.PostForm("action"),
		Language: entity.LangEnglish,
	}

	age := 0
	if raw := strings.TrimSpace(c.PostForm("age")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return in, errInvalidAge
		}
		age = n
	}
	in.Patient = entity.NewPatientRecord(
		c.PostForm("name"),
		age,
		c.PostForm("phone"),
		c.PostForm("address"),
	)

	if raw := c.PostForm("language"); raw != "" {
		lang, err := entity.ParseLanguage(raw)
		if err != nil {
			return in, err
		}
		in.Language = lang
	}

	scan, err := readScan(c, maxScan)
	if err != nil {
		return in, err
	}
	in.Scan = scan

	return in, nil
}

func readScan(c *gin.Context, maxScan int64) (*entity.ScanImage, error) {
	header, err := c.FormFile("scan")
	switch {
	case err == nil:
		if maxScan > 0 && header.Size > maxScan {
			return nil, errScanTooLarge
		}
		return scanFromHeader(header)
	case errors.Is(err, http.ErrMissingFile):
	default:
		return nil, err
	}

	name, encoded := c.PostForm("scan_name"), c.PostForm("scan_data")
	if name == "" || encoded == "" {
		return nil, nil
	}
	if maxScan > 0 && int64(base64.StdEncoding.DecodedLen(len(encoded))) > maxScan+2 {
		return nil, errScanTooLarge
	}
	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("decode carried scan: %w", err)
	}
	if maxScan > 0 && int64(len(data)) > maxScan {
		return nil, errScanTooLarge
	}
	return entity.NewScanImage(name, data)
}

func scanFromHeader(header *multipart.FileHeader) (*entity.ScanImage, error) {
	if _, err := entity.FormatFromFilename(header.Filename); err != nil {
		return nil, err
	}

	f, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	return entity.NewScanImage(header.Filename, data)
}

// statusFor сопоставляет ошибку разбора с HTTP-статусом.
func statusFor(err error) int {
	var maxBytes *http.MaxBytesError
	switch {
	case errors.As(err, &maxBytes), errors.Is(err, errScanTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, entity.ErrUnsupportedFormat):
		return http.StatusUnsupportedMediaType
	default:
		return http.StatusBadRequest
	}
}

var previewMIME = map[entity.ImageFormat]string{
	entity.FormatJPEG: "image/jpeg",
	entity.FormatPNG:  "image/png",
}

// pageData модель шаблона index.html
type pageData struct {
	Patient    entity.PatientRecord
	Languages  []entity.Language
	Language   entity.Language
	Result     *entity.PredictionResult
	Predicted  bool
	ScanName   string
	ScanData   string
	PreviewURL template.URL
	Warning    string
	Error      string
	Accept     string
	MinAge     int
	MaxAge     int
}

func newPageData(lang entity.Language) *pageData {
	return &pageData{
		Languages: entity.Languages(),
		Language:  lang,
		Result:    &entity.PredictionResult{},
		Warning:   msgNoScan,
		Accept:    strings.Join(entity.AcceptedExtensions(), ","),
		MinAge:    entity.MinAge,
		MaxAge:    entity.MaxAge,
	}
}

// withScan переносит снимок в скрытые поля и превью.
func (p *pageData) withScan(scan *entity.ScanImage) {
	if scan == nil {
		return
	}
	p.Warning = ""
	p.ScanName = scan.Filename
	p.ScanData = base64.StdEncoding.EncodeToString(scan.Data)
	// TIFF браузеры не показывают, превью только для jpeg/png.
	if mime, ok := previewMIME[scan.Format]; ok {
		p.PreviewURL = template.URL("data:" + mime + ";base64," + p.ScanData)
	}
}
