package entity

import (
	"errors"
	"strings"

	"golang.org/x/text/language"
)

var ErrUnknownLanguage = errors.New("unknown language")

// Language язык пояснения. На текст пояснения не влияет.
type Language string

const (
	LangEnglish  Language = "English"
	LangHindi    Language = "Hindi"
	LangHinglish Language = "Hinglish"
	LangBhojpuri Language = "Bhojpuri"
	LangSpanish  Language = "Spanish"
	LangFrench   Language = "French"
	LangChinese  Language = "Chinese"
)

var languageTags = map[Language]language.Tag{
	LangEnglish:  language.English,
	LangHindi:    language.Hindi,
	LangHinglish: language.MustParse("hi-Latn"),
	LangBhojpuri: language.MustParse("bho"),
	LangSpanish:  language.Spanish,
	LangFrench:   language.French,
	LangChinese:  language.Chinese,
}

// Languages возвращает языки в порядке выпадающего списка.
func Languages() []Language {
	return []Language{
		LangEnglish,
		LangHindi,
		LangHinglish,
		LangBhojpuri,
		LangSpanish,
		LangFrench,
		LangChinese,
	}
}

// ParseLanguage ищет язык по названию без учёта регистра.
func ParseLanguage(s string) (Language, error) {
	s = strings.TrimSpace(s)
	for _, l := range Languages() {
		if strings.EqualFold(string(l), s) {
			return l, nil
		}
	}
	return "", ErrUnknownLanguage
}

// Tag возвращает BCP 47 тег языка.
func (l Language) Tag() language.Tag {
	if tag, ok := languageTags[l]; ok {
		return tag
	}
	return language.English
}

// MatchLanguage выбирает язык по заголовку Accept-Language.
func MatchLanguage(acceptLanguage string) Language {
	langs := Languages()
	tags := make([]language.Tag, len(langs))
	for i, l := range langs {
		tags[i] = l.Tag()
	}

	desired, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(desired) == 0 {
		return LangEnglish
	}

	matcher := language.NewMatcher(tags)
	_, idx, conf := matcher.Match(desired...)
	if conf == language.No {
		return LangEnglish
	}
	return langs[idx]
}

// PredictionResult результат "предсказания"
type PredictionResult struct {
	Condition   string   `json:"condition"`
	Confidence  int      `json:"confidence"`
	Explanation string   `json:"explanation"`
	Language    Language `json:"language"`
}

// ConfidenceRatio доля уверенности в диапазоне [0, 1].
func (r PredictionResult) ConfidenceRatio() float64 {
	c := r.Confidence
	if c < 0 {
		c = 0
	}
	if c > 100 {
		c = 100
	}
	return float64(c) / 100
}
