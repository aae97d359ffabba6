package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"lumina-path/internal/domain/entity"
	"lumina-path/internal/domain/port"
	"lumina-path/internal/infrastructure/predictor"
)

func staticResult() entity.PredictionResult {
	return entity.PredictionResult{
		Condition:   predictor.StaticCondition,
		Confidence:  predictor.StaticConfidence,
		Explanation: predictor.StaticExplanation,
		Language:    entity.LangEnglish,
	}
}

func testRequest(patient entity.PatientRecord) port.ReportRequest {
	return port.ReportRequest{
		Patient:     patient,
		Result:      staticResult(),
		GeneratedAt: time.Date(2024, 5, 17, 14, 3, 9, 0, time.UTC),
	}
}

func mustLayout(t *testing.T) *Layout {
	t.Helper()
	l, err := DefaultLayout()
	require.NoError(t, err)
	return l
}

func texts(p *Page) []string {
	var out []string
	for _, el := range p.Elements {
		if te, ok := el.(TextElement); ok {
			out = append(out, te.Text)
		}
	}
	return out
}

func images(p *Page) []ImageElement {
	var out []ImageElement
	for _, el := range p.Elements {
		if ie, ok := el.(ImageElement); ok {
			out = append(out, ie)
		}
	}
	return out
}

func rects(p *Page) []RectElement {
	var out []RectElement
	for _, el := range p.Elements {
		if re, ok := el.(RectElement); ok {
			out = append(out, re)
		}
	}
	return out
}

func TestCompose_EmptyPatientNoImage(t *testing.T) {
	page := Compose(mustLayout(t), testRequest(entity.NewPatientRecord("", 0, "", "")), nil)

	got := texts(page)
	require.Contains(t, got, "Name: ")
	require.Contains(t, got, "Age: 0")
	require.Contains(t, got, "Condition: Diabetic Retinopathy")
	require.Contains(t, got, "Confidence: 92%")
	require.Contains(t, got, "Generated: 2024-05-17 14:03:09")
	require.Empty(t, images(page))

	bars := rects(page)
	require.Len(t, bars, 2)
	require.InDelta(t, 200.0, bars[0].W, 1e-9)
	require.InDelta(t, 184.0, bars[1].W, 1e-9)
}

func TestCompose_BarIndependentOfPatient(t *testing.T) {
	l := mustLayout(t)
	a := rects(Compose(l, testRequest(entity.NewPatientRecord("Jane Doe", 45, "555", "Somewhere")), nil))
	b := rects(Compose(l, testRequest(entity.NewPatientRecord("", 120, "", "")), &entity.PreparedImage{Width: 10, Height: 10}))
	require.Equal(t, a, b)
	require.InDelta(t, l.ConfidenceBar.Width*0.92, a[1].W, 1e-9)
}

func TestCompose_ImagePreservesAspectRatio(t *testing.T) {
	l := mustLayout(t)
	box := l.Image

	for _, size := range [][2]int{{800, 400}, {300, 900}, {100, 80}, {250, 200}, {4000, 10}} {
		img := &entity.PreparedImage{Width: size[0], Height: size[1]}
		page := Compose(l, testRequest(entity.NewPatientRecord("Jane Doe", 45, "", "")), img)

		imgs := images(page)
		require.Len(t, imgs, 1)
		ie := imgs[0]

		srcRatio := float64(size[0]) / float64(size[1])
		require.InDelta(t, srcRatio, ie.W/ie.H, 1e-6, "size %v", size)

		require.GreaterOrEqual(t, ie.X, box.X-1e-9)
		require.GreaterOrEqual(t, ie.Y, box.Y-1e-9)
		require.LessOrEqual(t, ie.X+ie.W, box.X+box.Width+1e-9)
		require.LessOrEqual(t, ie.Y+ie.H, box.Y+box.Height+1e-9)

		// одна из сторон упирается в рамку
		touches := almostEqual(ie.W, box.Width) || almostEqual(ie.H, box.Height)
		require.True(t, touches, "size %v", size)
	}
}

func TestFitInBox_Centres(t *testing.T) {
	x, y, w, h := fitInBox(800, 400, BoxSpec{X: 50, Y: 200, Width: 250, Height: 200})
	require.InDelta(t, 50.0, x, 1e-9)
	require.InDelta(t, 237.5, y, 1e-9)
	require.InDelta(t, 250.0, w, 1e-9)
	require.InDelta(t, 125.0, h, 1e-9)
}

func TestCompose_SignatureAndExplanation(t *testing.T) {
	l := mustLayout(t)
	page := Compose(l, testRequest(entity.PatientRecord{}), nil)

	var sig TextElement
	var block TextBlockElement
	for _, el := range page.Elements {
		switch e := el.(type) {
		case TextElement:
			if e.Text == l.Signature.Text {
				sig = e
			}
		case TextBlockElement:
			block = e
		}
	}

	require.InDelta(t, page.Height-80, sig.Y, 1e-9)
	require.Equal(t, 50.0, sig.X)
	require.Len(t, block.Lines, 2)
	require.Equal(t, 440.0, block.Y)
	require.Equal(t, 13.2, block.Leading)
}

func almostEqual(a, b float64) bool {
	d := a - b
	return d < 1e-6 && d > -1e-6
}

func titleOf(t *testing.T, l *Layout) TextElement {
	t.Helper()
	page := Compose(l, testRequest(entity.PatientRecord{}), nil)
	for _, el := range page.Elements {
		if te, ok := el.(TextElement); ok && te.Text == l.Title.Text {
			return te
		}
	}
	t.Fatal("title not found")
	return TextElement{}
}

func TestCompose_TitleFollowsAlign(t *testing.T) {
	l := mustLayout(t)
	width, _ := l.PageSize()

	title := titleOf(t, l)
	require.Equal(t, AlignCenter, title.Align)
	require.InDelta(t, width/2, title.X, 1e-9)

	l.Title.Align = AlignLeft
	title = titleOf(t, l)
	require.Equal(t, AlignLeft, title.Align)
	require.InDelta(t, 50.0, title.X, 1e-9)

	l.Title.Align = AlignRight
	l.Title.X = 40
	title = titleOf(t, l)
	require.Equal(t, AlignRight, title.Align)
	require.InDelta(t, width-40, title.X, 1e-9)
}
