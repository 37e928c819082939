package scene

import (
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/vector"

	"github.com/gogpu/cg"
	"github.com/gogpu/cg/internal/label"
	"github.com/gogpu/cg/raster"
)

// canvas wraps an image with the drawing primitives the scenes need.
// Shapes are rasterized into coverage masks so they can be intersected
// before painting, which is how clipping is done.
//
// The first label error is kept and reported by done.
type canvas struct {
	img *cg.Image
	err error
}

func newCanvas(w, h int, bg cg.Color) *canvas {
	img := cg.NewImage(w, h)
	img.Clear(bg)
	return &canvas{img: img}
}

func (c *canvas) done() (*cg.Image, error) {
	if c.err != nil {
		return nil, c.err
	}
	return c.img, nil
}

func (c *canvas) bounds() image.Rectangle { return c.img.Bounds() }

// newMask returns an empty coverage mask of the canvas size.
func (c *canvas) newMask() *image.Alpha {
	return image.NewAlpha(c.bounds())
}

func (c *canvas) rasterizer() *vector.Rasterizer {
	r := vector.NewRasterizer(c.img.Width(), c.img.Height())
	r.DrawOp = draw.Src
	return r
}

func (c *canvas) finish(r *vector.Rasterizer) *image.Alpha {
	m := c.newMask()
	r.Draw(m, m.Bounds(), image.Opaque, image.Point{})
	return m
}

// polygonMask returns the antialiased coverage of the closed polygon pts.
func (c *canvas) polygonMask(pts ...cg.Vec2) *image.Alpha {
	return c.polygonsMask(pts)
}

// polygonsMask rasterizes every polygon as a subpath of one path, so
// polygons sharing an edge leave no seam.
func (c *canvas) polygonsMask(polys ...[]cg.Vec2) *image.Alpha {
	r := c.rasterizer()
	for _, pts := range polys {
		if len(pts) < 3 {
			continue
		}
		r.MoveTo(float32(pts[0].X), float32(pts[0].Y))
		for _, p := range pts[1:] {
			r.LineTo(float32(p.X), float32(p.Y))
		}
		r.ClosePath()
	}
	return c.finish(r)
}

// kappa places cubic control points for a quarter circle.
const kappa = 0.5522847498

// discMask returns the antialiased coverage of a disc built from four
// cubic arcs.
func (c *canvas) discMask(center cg.Vec2, radius float64) *image.Alpha {
	r := c.rasterizer()
	cx, cy := float32(center.X), float32(center.Y)
	rr, k := float32(radius), float32(radius*kappa)
	r.MoveTo(cx+rr, cy)
	r.CubeTo(cx+rr, cy+k, cx+k, cy+rr, cx, cy+rr)
	r.CubeTo(cx-k, cy+rr, cx-rr, cy+k, cx-rr, cy)
	r.CubeTo(cx-rr, cy-k, cx-k, cy-rr, cx, cy-rr)
	r.CubeTo(cx+k, cy-rr, cx+rr, cy-k, cx+rr, cy)
	r.ClosePath()
	return c.finish(r)
}

// lineMask returns the coverage of the segment a-b drawn width wide
// with butt caps.
func (c *canvas) lineMask(a, b cg.Vec2, width float64) *image.Alpha {
	n := b.Sub(a).Perp().Normalize().Mul(width / 2)
	if n.IsZero() {
		return c.newMask()
	}
	return c.polygonMask(a.Add(n), b.Add(n), b.Sub(n), a.Sub(n))
}

// rectMask returns the coverage of an axis-aligned rectangle.
func (c *canvas) rectMask(x, y, w, h float64) *image.Alpha {
	return c.polygonMask(cg.V2(x, y), cg.V2(x+w, y), cg.V2(x+w, y+h), cg.V2(x, y+h))
}

// intersect returns a mask whose coverage is the product of a and b.
func intersect(a, b *image.Alpha) *image.Alpha {
	out := image.NewAlpha(a.Rect)
	for i, av := range a.Pix {
		out.Pix[i] = uint8((uint16(av)*uint16(b.Pix[i]) + 127) / 255)
	}
	return out
}

// union accumulates src into dst, keeping the larger coverage.
func union(dst, src *image.Alpha) {
	for i, v := range src.Pix {
		dst.Pix[i] = max(dst.Pix[i], v)
	}
}

// paint blends col through mask m.
func (c *canvas) paint(m *image.Alpha, col cg.Color) {
	c.shade(m, func(int, int) cg.Color { return col })
}

// shade blends a per-pixel colour through mask m.
func (c *canvas) shade(m *image.Alpha, col func(x, y int) cg.Color) {
	w := m.Rect.Dx()
	for i, v := range m.Pix {
		if v == 0 {
			continue
		}
		x, y := i%w, i/w
		c.img.Blend(x, y, col(x, y), v)
	}
}

func (c *canvas) fillPolygon(col cg.Color, pts ...cg.Vec2) {
	c.paint(c.polygonMask(pts...), col)
}

func (c *canvas) fillRect(x, y, w, h float64, col cg.Color) {
	c.paint(c.rectMask(x, y, w, h), col)
}

// strokePolygon draws a one-pixel closed outline.
func (c *canvas) strokePolygon(col cg.Color, pts ...cg.Vec2) {
	px := make([]raster.Pixel, len(pts))
	for i, p := range pts {
		px[i] = raster.Round(p)
	}
	raster.DrawPolyline(c.img, px, col, true)
}

func (c *canvas) line(a, b cg.Vec2, col cg.Color) {
	raster.DrawLine(c.img, raster.Round(a), raster.Round(b), col)
}

// dashed draws a 3-on 3-off line, the canvas setLineDash([3, 3]).
func (c *canvas) dashed(a, b cg.Vec2, col cg.Color) {
	raster.DrawDashed(c.img, raster.Round(a), raster.Round(b), col, 3, 3)
}

func (c *canvas) dot(p cg.Vec2, radius float64, col cg.Color) {
	c.paint(c.discMask(p, radius), col)
}

// arrow draws a line from a to b with a two-stroke head of length head.
func (c *canvas) arrow(a, b cg.Vec2, head float64, col cg.Color) {
	if a == b {
		return
	}
	c.line(a, b, col)
	angle := math.Atan2(b.Y-a.Y, b.X-a.X)
	for _, da := range []float64{-math.Pi / 6, math.Pi / 6} {
		tip := b.Sub(cg.V2(math.Cos(angle+da), math.Sin(angle+da)).Mul(head))
		c.line(b, tip, col)
	}
}

// labeledArrow draws an arrow with text placed just past its tip.
func (c *canvas) labeledArrow(a, b cg.Vec2, head float64, col cg.Color, text string) {
	c.arrow(a, b, head, col)
	if l := b.Distance(a); l > 0 {
		p := b.Add(b.Sub(a).Mul(10 / l))
		c.text(text, p.X, p.Y, col, label.Center)
	}
}

func (c *canvas) text(s string, x, y float64, col cg.Color, align label.Align) {
	if c.err != nil {
		return
	}
	c.err = label.Draw(c.img, s, x, y, col, align)
}

// axes draws the small coordinate cross in the lower left corner.
func (c *canvas) axes(up, right string) {
	c.arrow(cg.V2(15, 285), cg.V2(15, 255), 10, cg.Black)
	c.arrow(cg.V2(15, 285), cg.V2(45, 285), 10, cg.Black)
	c.text(up, 5, 260, cg.Black, label.Center)
	c.text(right, 45, 297, cg.Black, label.Center)
}
