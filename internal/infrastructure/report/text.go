package report

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// wrapText переносит текст по словам, не превышая width символов в строке.
// Слова длиннее width режутся на части.
func wrapText(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 || width <= 0 {
		return nil
	}

	var (
		lines []string
		line  strings.Builder
		n     int
	)
	flush := func() {
		if n > 0 {
			lines = append(lines, line.String())
			line.Reset()
			n = 0
		}
	}

	for _, w := range words {
		for utf8.RuneCountInString(w) > width {
			flush()
			runes := []rune(w)
			lines = append(lines, string(runes[:width]))
			w = string(runes[width:])
		}

		wn := utf8.RuneCountInString(w)
		if n > 0 && n+1+wn > width {
			flush()
		}
		if n > 0 {
			line.WriteByte(' ')
			n++
		}
		line.WriteString(w)
		n += wn
	}
	flush()

	return lines
}

// encodeText переводит UTF-8 в Windows-1252 для базовых шрифтов PDF.
func encodeText(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r == '\n' || r == '\r' || r == '\t' {
			b.WriteByte(' ')
			continue
		}
		if c, ok := charmap.Windows1252.EncodeRune(r); ok {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('?')
	}
	return b.String()
}
