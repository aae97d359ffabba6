package report

import (
	"fmt"
	"math"
	"strconv"

	"lumina-path/internal/domain/entity"
	"lumina-path/internal/domain/port"
)

// Element элемент страницы, который умеет себя нарисовать.
type Element interface {
	draw(c canvas)
}

type TextElement struct {
	X, Y  float64
	Text  string
	Font  Font
	Align Align
	Color Color
}

type LineElement struct {
	X1, Y1, X2, Y2 float64
	Width          float64
	Color          Color
}

// RectElement залитый прямоугольник.
type RectElement struct {
	X, Y, W, H float64
	Color      Color
}

type ImageElement struct {
	X, Y, W, H float64
	Image      *entity.PreparedImage
}

type TextBlockElement struct {
	X, Y    float64
	Leading float64
	Lines   []string
	Font    Font
}

// Page результат компоновки: размеры и список элементов по порядку отрисовки.
type Page struct {
	Width    float64
	Height   float64
	Elements []Element
}

var fieldKeys = map[string]func(req port.ReportRequest) string{
	"name":       func(req port.ReportRequest) string { return req.Patient.Name },
	"age":        func(req port.ReportRequest) string { return strconv.Itoa(req.Patient.Age) },
	"phone":      func(req port.ReportRequest) string { return req.Patient.Phone },
	"address":    func(req port.ReportRequest) string { return req.Patient.Address },
	"condition":  func(req port.ReportRequest) string { return req.Result.Condition },
	"confidence": func(req port.ReportRequest) string { return fmt.Sprintf("%d%%", req.Result.Confidence) },
	"language":   func(req port.ReportRequest) string { return string(req.Result.Language) },
}

// Compose раскладывает запрос по макету. img может быть nil.
func Compose(l *Layout, req port.ReportRequest, img *entity.PreparedImage) *Page {
	width, height := l.PageSize()
	page := &Page{Width: width, Height: height}
	add := func(e Element) { page.Elements = append(page.Elements, e) }

	add(TextElement{
		X:     anchorX(l.Title.Align, l.Title.X, width),
		Y:     l.Title.Y,
		Text:  l.Title.Text,
		Font:  l.Title.Font,
		Align: l.Title.Align,
		Color: black,
	})
	add(TextElement{
		X:     width - l.Timestamp.Right,
		Y:     l.Timestamp.Y,
		Text:  l.Timestamp.Label + req.GeneratedAt.Format(l.Timestamp.Format),
		Font:  l.Timestamp.Font,
		Align: AlignRight,
		Color: black,
	})
	add(LineElement{
		X1:    l.Divider.Margin,
		Y1:    l.Divider.Y,
		X2:    width - l.Divider.Margin,
		Y2:    l.Divider.Y,
		Width: l.Divider.Width,
		Color: l.Divider.Color,
	})

	for _, col := range l.Columns {
		add(TextElement{X: col.X, Y: col.Y, Text: col.Heading, Font: col.HeadingFont, Align: AlignLeft})
		for i, f := range col.Fields {
			add(TextElement{
				X:     col.X,
				Y:     col.First + float64(i)*col.Step,
				Text:  fmt.Sprintf("%s: %s", f.Label, fieldKeys[f.Key](req)),
				Font:  col.Font,
				Align: AlignLeft,
			})
		}
	}

	if img != nil && img.Width > 0 && img.Height > 0 {
		x, y, w, h := fitInBox(float64(img.Width), float64(img.Height), l.Image)
		add(ImageElement{X: x, Y: y, W: w, H: h, Image: img})
	}

	bar := l.ConfidenceBar
	add(RectElement{X: bar.X, Y: bar.Y, W: bar.Width, H: bar.Height, Color: bar.Track})
	add(RectElement{X: bar.X, Y: bar.Y, W: bar.Width * req.Result.ConfidenceRatio(), H: bar.Height, Color: bar.Fill})

	ex := l.Explanation
	add(TextElement{X: ex.X, Y: ex.HeadingY, Text: ex.Heading, Font: ex.HeadingFont, Align: AlignLeft})
	add(TextBlockElement{
		X:       ex.X,
		Y:       ex.TextY,
		Leading: ex.Leading,
		Lines:   wrapText(req.Result.Explanation, ex.Wrap),
		Font:    ex.Font,
	})

	add(TextElement{
		X:     l.Signature.X,
		Y:     height - l.Signature.Bottom,
		Text:  l.Signature.Text,
		Font:  l.Signature.Font,
		Align: AlignLeft,
	})

	return page
}

// anchorX переводит отступ в координату точки привязки текста.
func anchorX(align Align, offset, width float64) float64 {
	switch align {
	case AlignCenter:
		return width / 2
	case AlignRight:
		return width - offset
	default:
		return offset
	}
}

// fitInBox вписывает изображение в рамку с сохранением пропорций и центрирует его.
func fitInBox(imgW, imgH float64, box BoxSpec) (x, y, w, h float64) {
	scale := math.Min(box.Width/imgW, box.Height/imgH)
	w = imgW * scale
	h = imgH * scale
	x = box.X + (box.Width-w)/2
	y = box.Y + (box.Height-h)/2
	return x, y, w, h
}
