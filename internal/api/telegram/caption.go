package telegram

import (
	"fmt"
	"strconv"
	"strings"

	"lumina-path/internal/domain/entity"
)

// request данные пациента и язык, извлечённые из подписи к снимку
type request struct {
	Patient  entity.PatientRecord
	Language entity.Language
}

// parseCaption разбирает строки вида "Key: value". Неизвестные ключи игнорируются.
func parseCaption(caption string) (request, error) {
	req := request{Language: entity.LangEnglish}
	var name, phone, address string
	age := 0

	for _, line := range strings.Split(caption, "\n") {
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		value = strings.TrimSpace(value)

		switch strings.ToLower(strings.TrimSpace(key)) {
		case "name":
			name = value
		case "age":
			if value == "" {
				continue
			}
			n, err := strconv.Atoi(value)
			if err != nil {
				return req, fmt.Errorf("age must be a whole number, got %q", value)
			}
			age = n
		case "phone":
			phone = value
		case "address":
			address = value
		case "language", "lang":
			lang, err := entity.ParseLanguage(value)
			if err != nil {
				return req, fmt.Errorf("unknown language %q", value)
			}
			req.Language = lang
		}
	}

	req.Patient = entity.NewPatientRecord(name, age, phone, address)
	return req, nil
}

func formatPrediction(res *entity.PredictionResult) string {
	return fmt.Sprintf("✅ Prediction: %s detected with %d%% confidence.\n\n🧾 %s\n\n🌍 Explanations will be provided in %s.",
		res.Condition, res.Confidence, res.Explanation, res.Language)
}

func formatLanguages() string {
	var b strings.Builder
	b.WriteString("🌍 Available languages:\n")
	for _, l := range entity.Languages() {
		fmt.Fprintf(&b, "• %s (%s)\n", l, l.Tag())
	}
	return b.String()
}
