package entity

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseLanguage(t *testing.T) {
	l, err := ParseLanguage(" hinglish ")
	require.NoError(t, err)
	require.Equal(t, LangHinglish, l)

	_, err = ParseLanguage("Klingon")
	require.ErrorIs(t, err, ErrUnknownLanguage)
}

func TestLanguages_Order(t *testing.T) {
	require.Equal(t, []Language{
		LangEnglish, LangHindi, LangHinglish, LangBhojpuri, LangSpanish, LangFrench, LangChinese,
	}, Languages())
}

func TestMatchLanguage(t *testing.T) {
	require.Equal(t, LangFrench, MatchLanguage("fr-CH, fr;q=0.9, en;q=0.8"))
	require.Equal(t, LangHindi, MatchLanguage("hi-IN"))
	require.Equal(t, LangEnglish, MatchLanguage(""))
	require.Equal(t, LangEnglish, MatchLanguage("de-DE"))
}

func TestConfidenceRatio(t *testing.T) {
	require.InDelta(t, 0.92, PredictionResult{Confidence: 92}.ConfidenceRatio(), 1e-9)
	require.Equal(t, 1.0, PredictionResult{Confidence: 150}.ConfidenceRatio())
	require.Equal(t, 0.0, PredictionResult{Confidence: -3}.ConfidenceRatio())
}
