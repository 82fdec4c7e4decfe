// Package raster implements the animator drawing surface on an in-memory
// image, used to render frames without a browser.
package raster

import (
	"image"
	"image/color"
	"image/draw"
	"log"
	"math"

	"github.com/llgcode/draw2d/draw2dimg"
	"github.com/llgcode/draw2d/draw2dkit"

	"github.com/stdiopt/gowasm-portfolio/fluid"
)

// Composite operations understood by the surface, anything else paints as
// source-over.
const (
	SourceOver = "source-over"
	Screen     = "screen"
)

// Surface is a fluid.Surface backed by an *image.RGBA.
//
// Shapes are rasterized with draw2d into a coverage mask, then shaded and
// composited by hand since draw2d only knows source-over.
type Surface struct {
	img  *image.RGBA
	mask *image.RGBA
	gc   *draw2dimg.GraphicContext

	fill rgba
	op   string
}

var _ fluid.Surface = (*Surface)(nil)

// New creates a transparent w x h surface.
func New(w, h int) *Surface {
	s := &Surface{op: SourceOver, fill: rgba{a: 1}}
	s.alloc(w, h)
	return s
}

func (s *Surface) alloc(w, h int) {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	s.img = image.NewRGBA(image.Rect(0, 0, w, h))
	s.mask = image.NewRGBA(image.Rect(0, 0, w, h))
	s.gc = draw2dimg.NewGraphicContext(s.mask)
	s.gc.SetFillColor(color.White)
}

// Image returns the backing image.
func (s *Surface) Image() *image.RGBA { return s.img }

// Composite returns the current composite operation.
func (s *Surface) Composite() string { return s.op }

func (s *Surface) Size() (float64, float64) {
	b := s.img.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

// SetSize reallocates the image, dropping its contents like a canvas does.
func (s *Surface) SetSize(w, h float64) {
	s.alloc(int(w), int(h))
}

func (s *Surface) SetFillStyle(style string) {
	c, err := parseStyle(style)
	if err != nil {
		log.Println("raster:", err)
		return
	}
	s.fill = c
}

func (s *Surface) FillRect(x, y, w, h float64) {
	draw2dkit.Rectangle(s.gc, x, y, x+w, y+h)
	s.gc.Fill()
	fill := s.fill
	s.composite(bbox(x, y, x+w, y+h), func(float64, float64) rgba { return fill })
}

func (s *Surface) RadialGradient(x0, y0, r0, x1, y1, r1 float64) fluid.Gradient {
	return &Gradient{x: x1, y: y1, r0: r0, r1: r1}
}

// FillCircle fills a circle shaded by g, a *Gradient; other gradient types
// fall back to the current fill style.
func (s *Surface) FillCircle(x, y, r float64, g fluid.Gradient) {
	draw2dkit.Circle(s.gc, x, y, r)
	s.gc.Fill()
	area := bbox(x-r, y-r, x+r, y+r)
	grad, ok := g.(*Gradient)
	if !ok || len(grad.stops) == 0 {
		fill := s.fill
		s.composite(area, func(float64, float64) rgba { return fill })
		return
	}
	s.composite(area, grad.at)
}

func (s *Surface) SetComposite(op string) {
	s.op = op
}

// composite blends shade into img wherever the mask has coverage inside
// area, then clears that part of the mask.
func (s *Surface) composite(area image.Rectangle, shade func(x, y float64) rgba) {
	area = area.Intersect(s.mask.Bounds())
	for py := area.Min.Y; py < area.Max.Y; py++ {
		for px := area.Min.X; px < area.Max.X; px++ {
			cov := float64(s.mask.Pix[s.mask.PixOffset(px, py)+3]) / 255
			if cov == 0 {
				continue
			}
			src := shade(float64(px)+0.5, float64(py)+0.5)
			src.a *= cov
			s.blend(px, py, src)
		}
	}
	draw.Draw(s.mask, area, image.Transparent, image.Point{}, draw.Src)
}

// bbox returns the pixel rectangle covering x0,y0 to x1,y1 with a one pixel
// margin for antialiasing.
func bbox(x0, y0, x1, y1 float64) image.Rectangle {
	return image.Rect(
		int(math.Floor(x0))-1, int(math.Floor(y0))-1,
		int(math.Ceil(x1))+1, int(math.Ceil(y1))+1,
	)
}

func (s *Surface) blend(px, py int, src rgba) {
	i := s.img.PixOffset(px, py)
	pix := s.img.Pix[i : i+4 : i+4]

	da := float64(pix[3]) / 255
	sa := src.a
	sc := [3]float64{src.c.R, src.c.G, src.c.B}
	var out [3]float64
	for k := 0; k < 3; k++ {
		dcPre := float64(pix[k]) / 255 // premultiplied
		dc := 0.0
		if da > 0 {
			dc = dcPre / da
		}
		switch s.op {
		case Screen:
			b := dc + sc[k] - dc*sc[k]
			out[k] = sa*(1-da)*sc[k] + sa*da*b + (1-sa)*dcPre
		default:
			out[k] = sc[k]*sa + dcPre*(1-sa)
		}
	}
	oa := sa + da*(1-sa)
	for k := 0; k < 3; k++ {
		pix[k] = to8(out[k])
	}
	pix[3] = to8(oa)
}

func to8(v float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, v)) * 255))
}

// Gradient is a radial gradient between two concentric circles.
type Gradient struct {
	x, y   float64
	r0, r1 float64
	stops  []gradStop
}

type gradStop struct {
	pos float64
	col rgba
}

var _ fluid.Gradient = (*Gradient)(nil)

// AddColorStop appends a stop, stops are expected in ascending position.
func (g *Gradient) AddColorStop(pos float64, style string) {
	c, err := parseStyle(style)
	if err != nil {
		log.Println("raster: color stop:", err)
		return
	}
	g.stops = append(g.stops, gradStop{pos, c})
}

func (g *Gradient) at(x, y float64) rgba {
	d := math.Hypot(x-g.x, y-g.y)
	t := 0.0
	if g.r1 > g.r0 {
		t = (d - g.r0) / (g.r1 - g.r0)
	}
	return g.sample(t)
}

func (g *Gradient) sample(t float64) rgba {
	first, last := g.stops[0], g.stops[len(g.stops)-1]
	if t <= first.pos {
		return first.col
	}
	if t >= last.pos {
		return last.col
	}
	for i := 1; i < len(g.stops); i++ {
		a, b := g.stops[i-1], g.stops[i]
		if t > b.pos {
			continue
		}
		if b.pos == a.pos {
			return b.col
		}
		return lerp(a.col, b.col, (t-a.pos)/(b.pos-a.pos))
	}
	return last.col
}
