package report

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWrapText(t *testing.T) {
	text := "This scan shows early signs of Diabetic Retinopathy. Detected patterns include small hemorrhages and microaneurysms."
	require.Equal(t, []string{
		"This scan shows early signs of Diabetic Retinopathy. Detected patterns include",
		"small hemorrhages and microaneurysms.",
	}, wrapText(text, 80))
}

func TestWrapText_BreaksLongWords(t *testing.T) {
	require.Equal(t, []string{"aaaaa", "aaaaa", "aa bb"}, wrapText("aaaaaaaaaaaa bb", 5))
}

func TestWrapText_Empty(t *testing.T) {
	require.Nil(t, wrapText("   \n ", 80))
	require.Nil(t, wrapText("words", 0))
}

func TestEncodeText(t *testing.T) {
	require.Equal(t, "Caf\xe9", encodeText("Café"))
	require.Equal(t, "a b", encodeText("a\nb"))
	require.Equal(t, "Ram ??", encodeText("Ram 日本"))
}
