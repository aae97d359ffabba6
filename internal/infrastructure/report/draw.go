package report

import (
	"bytes"
	"io"

	"github.com/go-pdf/fpdf"
)

// canvas подмножество методов fpdf.Fpdf, которое используют элементы.
type canvas interface {
	SetFont(familyStr, styleStr string, size float64)
	SetTextColor(r, g, b int)
	SetDrawColor(r, g, b int)
	SetFillColor(r, g, b int)
	SetLineWidth(width float64)
	GetStringWidth(s string) float64
	Text(x, y float64, txtStr string)
	Line(x1, y1, x2, y2 float64)
	Rect(x, y, w, h float64, styleStr string)
	RegisterImageOptionsReader(imgName string, options fpdf.ImageOptions, r io.Reader) *fpdf.ImageInfoType
	ImageOptions(imageNameStr string, x, y, w, h float64, flow bool, options fpdf.ImageOptions, link int, linkStr string)
}

var _ canvas = (*fpdf.Fpdf)(nil)

const scanImageName = "scan"

func (e TextElement) draw(c canvas) {
	text := encodeText(e.Text)
	c.SetFont(e.Font.Family, e.Font.Style, e.Font.Size)
	c.SetTextColor(e.Color.R, e.Color.G, e.Color.B)

	x := e.X
	switch e.Align {
	case AlignCenter:
		x -= c.GetStringWidth(text) / 2
	case AlignRight:
		x -= c.GetStringWidth(text)
	}
	c.Text(x, e.Y, text)
}

func (e LineElement) draw(c canvas) {
	c.SetDrawColor(e.Color.R, e.Color.G, e.Color.B)
	c.SetLineWidth(e.Width)
	c.Line(e.X1, e.Y1, e.X2, e.Y2)
}

func (e RectElement) draw(c canvas) {
	if e.W <= 0 || e.H <= 0 {
		return
	}
	c.SetFillColor(e.Color.R, e.Color.G, e.Color.B)
	c.Rect(e.X, e.Y, e.W, e.H, "F")
}

func (e ImageElement) draw(c canvas) {
	opts := fpdf.ImageOptions{ImageType: "JPG"}
	c.RegisterImageOptionsReader(scanImageName, opts, bytes.NewReader(e.Image.Data))
	c.ImageOptions(scanImageName, e.X, e.Y, e.W, e.H, false, opts, 0, "")
}

func (e TextBlockElement) draw(c canvas) {
	c.SetFont(e.Font.Family, e.Font.Style, e.Font.Size)
	c.SetTextColor(0, 0, 0)
	for i, line := range e.Lines {
		c.Text(e.X, e.Y+float64(i)*e.Leading, encodeText(line))
	}
}
