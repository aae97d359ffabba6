package telegram

import (
	"testing"

	"github.com/stretchr/testify/require"

	"lumina-path/internal/domain/entity"
)

func TestParseCaption(t *testing.T) {
	req, err := parseCaption("Name: Jane Doe\nAGE: 45\nphone: +1 555 0100\nAddress: 1 Main St, Springfield\nLanguage: spanish\nBlood: O+")
	require.NoError(t, err)
	require.Equal(t, entity.PatientRecord{
		Name:    "Jane Doe",
		Age:     45,
		Phone:   "+1 555 0100",
		Address: "1 Main St, Springfield",
	}, req.Patient)
	require.Equal(t, entity.LangSpanish, req.Language)
}

func TestParseCaption_Empty(t *testing.T) {
	req, err := parseCaption("")
	require.NoError(t, err)
	require.Equal(t, entity.PatientRecord{}, req.Patient)
	require.Equal(t, entity.LangEnglish, req.Language)
}

func TestParseCaption_ClampsAge(t *testing.T) {
	req, err := parseCaption("age: 999")
	require.NoError(t, err)
	require.Equal(t, entity.MaxAge, req.Patient.Age)
}

func TestParseCaption_Errors(t *testing.T) {
	_, err := parseCaption("age: old")
	require.ErrorContains(t, err, "age")

	_, err = parseCaption("lang: Klingon")
	require.ErrorContains(t, err, "Klingon")
}

func TestParseCaption_ValueWithColon(t *testing.T) {
	req, err := parseCaption("Address: Flat 2: Tower B")
	require.NoError(t, err)
	require.Equal(t, "Flat 2: Tower B", req.Patient.Address)
}

func TestFormatPrediction(t *testing.T) {
	msg := formatPrediction(&entity.PredictionResult{
		Condition:   "Diabetic Retinopathy",
		Confidence:  92,
		Explanation: "Explanation.",
		Language:    entity.LangFrench,
	})
	require.Contains(t, msg, "Prediction: Diabetic Retinopathy detected with 92% confidence.")
	require.Contains(t, msg, "French")
}

func TestFormatLanguages(t *testing.T) {
	msg := formatLanguages()
	require.Contains(t, msg, "Bhojpuri (bho)")
	require.Contains(t, msg, "Hinglish (hi-Latn)")
}
