package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestDefaultLayout_Columns(t *testing.T) {
	l := mustLayout(t)

	want := []ColumnSpec{
		{
			Heading:     "Patient Information:",
			X:           50,
			Y:           110,
			First:       130,
			Step:        20,
			HeadingFont: Font{Family: "Helvetica", Style: "B", Size: 12},
			Font:        Font{Family: "Helvetica", Size: 11},
			Fields: []FieldSpec{
				{Label: "Name", Key: "name"},
				{Label: "Age", Key: "age"},
				{Label: "Phone", Key: "phone"},
				{Label: "Address", Key: "address"},
			},
		},
		{
			Heading:     "AI Prediction & Confidence:",
			X:           320,
			Y:           110,
			First:       130,
			Step:        20,
			HeadingFont: Font{Family: "Helvetica", Style: "B", Size: 12},
			Font:        Font{Family: "Helvetica", Size: 11},
			Fields: []FieldSpec{
				{Label: "Condition", Key: "condition"},
				{Label: "Confidence", Key: "confidence"},
			},
		},
	}
	if diff := cmp.Diff(want, l.Columns); diff != "" {
		t.Fatalf("columns mismatch (-want +got):\n%s", diff)
	}

	require.Equal(t, BoxSpec{X: 50, Y: 200, Width: 250, Height: 200}, l.Image)
	require.Equal(t, 80, l.Explanation.Wrap)
}

func TestDefaultLayout_PageSize(t *testing.T) {
	w, h := mustLayout(t).PageSize()
	require.Equal(t, 595.28, w)
	require.Equal(t, 841.89, h)
}

func TestLoadLayout_OverridesDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.yaml")
	override := `
page:
  size: Letter
  orientation: L
confidence_bar:
  width: 300
`
	require.NoError(t, os.WriteFile(path, []byte(override), 0o600))

	l, err := LoadLayout(path)
	require.NoError(t, err)

	w, h := l.PageSize()
	require.Equal(t, 792.0, w)
	require.Equal(t, 612.0, h)
	require.Equal(t, 300.0, l.ConfidenceBar.Width)
	// остальное берётся из встроенного макета
	require.Equal(t, 15.0, l.ConfidenceBar.Height)
	require.Len(t, l.Columns, 2)
}

func TestLoadLayout_EmptyPath(t *testing.T) {
	l, err := LoadLayout("")
	require.NoError(t, err)
	if diff := cmp.Diff(mustLayout(t), l); diff != "" {
		t.Fatalf("layout mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadLayout_UnknownField(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.yaml")
	bad := `
columns:
  - heading: "X"
    fields:
      - {label: Blood, key: blood_type}
`
	require.NoError(t, os.WriteFile(path, []byte(bad), 0o600))

	_, err := LoadLayout(path)
	require.ErrorContains(t, err, "blood_type")
}

func TestLoadLayout_MissingFile(t *testing.T) {
	_, err := LoadLayout(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	l := mustLayout(t)
	l.Page.Size = "B7"
	require.Error(t, l.Validate())

	l = mustLayout(t)
	l.Explanation.Wrap = 0
	require.Error(t, l.Validate())

	l = mustLayout(t)
	l.Image.Height = 0
	require.Error(t, l.Validate())

	l = mustLayout(t)
	l.Title.Align = "justify"
	require.Error(t, l.Validate())
}
