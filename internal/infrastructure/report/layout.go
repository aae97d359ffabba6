package report

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed layout.yaml
var defaultLayoutYAML []byte

// Align горизонтальное выравнивание текста
type Align string

const (
	AlignLeft   Align = "left"
	AlignCenter Align = "center"
	AlignRight  Align = "right"
)

type Font struct {
	Family string  `yaml:"family"`
	Style  string  `yaml:"style"`
	Size   float64 `yaml:"size"`
}

type Color struct {
	R int `yaml:"r"`
	G int `yaml:"g"`
	B int `yaml:"b"`
}

var black = Color{}

type PageSpec struct {
	Size        string `yaml:"size"`
	Orientation string `yaml:"orientation"`
}

// TitleSpec заголовок; X отсчитывается от левого края для left
// и от правого для right, при center не используется.
type TitleSpec struct {
	Text  string  `yaml:"text"`
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	Align Align   `yaml:"align"`
	Font  Font    `yaml:"font"`
}

type TimestampSpec struct {
	Label  string  `yaml:"label"`
	Format string  `yaml:"format"`
	Right  float64 `yaml:"right"`
	Y      float64 `yaml:"y"`
	Font   Font    `yaml:"font"`
}

type DividerSpec struct {
	Margin float64 `yaml:"margin"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Color  Color   `yaml:"color"`
}

// FieldSpec одна строка "Label: value"; Key выбирает значение из запроса.
type FieldSpec struct {
	Label string `yaml:"label"`
	Key   string `yaml:"key"`
}

type ColumnSpec struct {
	Heading     string      `yaml:"heading"`
	X           float64     `yaml:"x"`
	Y           float64     `yaml:"y"`
	First       float64     `yaml:"first"`
	Step        float64     `yaml:"step"`
	HeadingFont Font        `yaml:"heading_font"`
	Font        Font        `yaml:"font"`
	Fields      []FieldSpec `yaml:"fields"`
}

type BoxSpec struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type BarSpec struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Track  Color   `yaml:"track"`
	Fill   Color   `yaml:"fill"`
}

type ExplanationSpec struct {
	Heading     string  `yaml:"heading"`
	X           float64 `yaml:"x"`
	HeadingY    float64 `yaml:"heading_y"`
	TextY       float64 `yaml:"text_y"`
	Wrap        int     `yaml:"wrap"`
	Leading     float64 `yaml:"leading"`
	HeadingFont Font    `yaml:"heading_font"`
	Font        Font    `yaml:"font"`
}

type SignatureSpec struct {
	Text   string  `yaml:"text"`
	X      float64 `yaml:"x"`
	Bottom float64 `yaml:"bottom"`
	Font   Font    `yaml:"font"`
}

// Layout декларативное описание страницы отчёта
type Layout struct {
	Page          PageSpec        `yaml:"page"`
	Title         TitleSpec       `yaml:"title"`
	Timestamp     TimestampSpec   `yaml:"timestamp"`
	Divider       DividerSpec     `yaml:"divider"`
	Columns       []ColumnSpec    `yaml:"columns"`
	Image         BoxSpec         `yaml:"image"`
	ConfidenceBar BarSpec         `yaml:"confidence_bar"`
	Explanation   ExplanationSpec `yaml:"explanation"`
	Signature     SignatureSpec   `yaml:"signature"`
}

// размеры страниц fpdf в пунктах (портретная ориентация)
var pageSizes = map[string][2]float64{
	"A4":     {595.28, 841.89},
	"A5":     {420.94, 595.28},
	"Letter": {612, 792},
	"Legal":  {612, 1008},
}

// PageSize возвращает ширину и высоту страницы с учётом ориентации.
func (l *Layout) PageSize() (float64, float64) {
	size := pageSizes[l.Page.Size]
	if l.Page.Orientation == "L" {
		return size[1], size[0]
	}
	return size[0], size[1]
}

// DefaultLayout разбирает встроенный макет.
func DefaultLayout() (*Layout, error) {
	var l Layout
	if err := yaml.Unmarshal(defaultLayoutYAML, &l); err != nil {
		return nil, fmt.Errorf("parse default layout: %w", err)
	}
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return &l, nil
}

// LoadLayout читает макет из файла поверх встроенного; пустой путь даёт встроенный.
func LoadLayout(path string) (*Layout, error) {
	l, err := DefaultLayout()
	if err != nil {
		return nil, err
	}
	if path == "" {
		return l, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read layout: %w", err)
	}
	if err := yaml.Unmarshal(data, l); err != nil {
		return nil, fmt.Errorf("parse layout %s: %w", path, err)
	}
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return l, nil
}

// Validate проверяет, что макет можно отрисовать.
func (l *Layout) Validate() error {
	if _, ok := pageSizes[l.Page.Size]; !ok {
		return fmt.Errorf("layout: unknown page size %q", l.Page.Size)
	}
	switch l.Page.Orientation {
	case "P", "L":
	default:
		return fmt.Errorf("layout: orientation must be P or L, got %q", l.Page.Orientation)
	}
	switch l.Title.Align {
	case AlignLeft, AlignCenter, AlignRight:
	default:
		return fmt.Errorf("layout: unknown title align %q", l.Title.Align)
	}
	for _, col := range l.Columns {
		for _, f := range col.Fields {
			if _, ok := fieldKeys[f.Key]; !ok {
				return fmt.Errorf("layout: unknown field key %q", f.Key)
			}
		}
	}
	if l.Image.Width <= 0 || l.Image.Height <= 0 {
		return errors.New("layout: image box must have positive size")
	}
	if l.ConfidenceBar.Width <= 0 || l.ConfidenceBar.Height <= 0 {
		return errors.New("layout: confidence bar must have positive size")
	}
	if l.Explanation.Wrap <= 0 {
		return errors.New("layout: explanation wrap must be positive")
	}
	return nil
}
