package window

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/vovakirdan/dodger/internal/core"
)

// canvas draws onto an ebiten image. The session renders through it once per
// Draw call.
type canvas struct {
	dst   *ebiten.Image
	font  *text.GoTextFaceSource
	faces map[float64]*text.GoTextFace
}

func newCanvas() (*canvas, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("window: cannot load font: %w", err)
	}
	return &canvas{
		font:  src,
		faces: make(map[float64]*text.GoTextFace),
	}, nil
}

func rgba(c core.Color) color.RGBA {
	r, g, b, a := c.RGBA()
	return color.RGBA{R: r, G: g, B: b, A: a}
}

func (c *canvas) Clear(col core.Color) {
	c.dst.Fill(rgba(col))
}

func (c *canvas) FillRect(r core.Rect, col core.Color) {
	vector.FillRect(c.dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), rgba(col), false)
}

func (c *canvas) StrokeRect(r core.Rect, col core.Color) {
	vector.StrokeRect(c.dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 1.0, rgba(col), false)
}

func (c *canvas) Line(x0, y0, x1, y1 float64, col core.Color) {
	vector.StrokeLine(c.dst, float32(x0), float32(y0), float32(x1), float32(y1), 1.0, rgba(col), true)
}

// GradientV fills one-pixel strips, each blended for its row.
func (c *canvas) GradientV(r core.Rect, top, bottom core.Color) {
	rows := int(r.H)
	if rows <= 0 {
		return
	}
	for i := 0; i < rows; i++ {
		cr, cg, cb, ca := core.Lerp(top, bottom, float64(i)/float64(rows))
		vector.FillRect(c.dst, float32(r.X), float32(r.Y)+float32(i), float32(r.W), 1,
			color.RGBA{R: cr, G: cg, B: cb, A: ca}, false)
	}
}

func (c *canvas) Text(s string, x, y, size float64, col core.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(rgba(col))
	text.Draw(c.dst, s, c.face(size), op)
}

// face caches one face per font size; the session uses only a handful.
func (c *canvas) face(size float64) *text.GoTextFace {
	f, ok := c.faces[size]
	if !ok {
		f = &text.GoTextFace{Source: c.font, Size: size}
		c.faces[size] = f
	}
	return f
}
