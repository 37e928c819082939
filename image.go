package cg

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"os"

	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/cg/internal/blend"
)

// Image is a rectangular RGBA pixel buffer with its origin at the top-left.
//
// Pixels are stored as straight-alpha bytes in a flat slice; pixel (x, y)
// starts at Offset(x, y) = 4*(x + width*y). All writes are clipped to the
// image bounds, so rasterizers may emit coordinates anywhere.
type Image struct {
	width  int
	height int
	pix    []uint8
}

// NewImage creates a new transparent image with the given dimensions.
// Negative dimensions are treated as zero.
func NewImage(width, height int) *Image {
	width = max(width, 0)
	height = max(height, 0)
	return &Image{
		width:  width,
		height: height,
		pix:    make([]uint8, width*height*4),
	}
}

// Width returns the width of the image.
func (m *Image) Width() int {
	return m.width
}

// Height returns the height of the image.
func (m *Image) Height() int {
	return m.height
}

// Pix returns the raw pixel data (RGBA, 4 bytes per pixel).
func (m *Image) Pix() []uint8 {
	return m.pix
}

// Offset returns the index of the first byte of pixel (x, y) in Pix.
func (m *Image) Offset(x, y int) int {
	return 4 * (x + m.width*y)
}

// InBounds reports whether (x, y) lies inside the image.
func (m *Image) InBounds(x, y int) bool {
	return x >= 0 && x < m.width && y >= 0 && y < m.height
}

// SetPixel sets the color of a single pixel.
func (m *Image) SetPixel(x, y int, c Color) {
	if !m.InBounds(x, y) {
		return
	}
	i := m.Offset(x, y)
	m.pix[i+0] = c.R
	m.pix[i+1] = c.G
	m.pix[i+2] = c.B
	m.pix[i+3] = c.A
}

// SetPixelScaled paints logical pixel (x, y) as a scale×scale block whose
// top-left physical pixel is (x*scale, y*scale). A scale below 1 paints
// nothing.
func (m *Image) SetPixelScaled(x, y, scale int, c Color) {
	if scale < 1 {
		return
	}
	x0, y0 := x*scale, y*scale
	for dy := 0; dy < scale; dy++ {
		for dx := 0; dx < scale; dx++ {
			m.SetPixel(x0+dx, y0+dy, c)
		}
	}
}

// PixelAt returns the color of a single pixel.
// Out-of-bounds coordinates return Transparent.
func (m *Image) PixelAt(x, y int) Color {
	if !m.InBounds(x, y) {
		return Transparent
	}
	i := m.Offset(x, y)
	return Color{R: m.pix[i+0], G: m.pix[i+1], B: m.pix[i+2], A: m.pix[i+3]}
}

// Blend composites c over pixel (x, y) with the given coverage.
// The effective source alpha is c.A*coverage/255.
func (m *Image) Blend(x, y int, c Color, coverage uint8) {
	if !m.InBounds(x, y) || coverage == 0 {
		return
	}
	sa := uint8((uint16(c.A)*uint16(coverage) + 127) / 255)
	i := m.Offset(x, y)
	d := m.pix[i : i+4 : i+4]
	d[0], d[1], d[2], d[3] = blend.SourceOver(c.R, c.G, c.B, sa, d[0], d[1], d[2], d[3])
}

// Clear fills the entire image with a color.
func (m *Image) Clear(c Color) {
	for i := 0; i < len(m.pix); i += 4 {
		m.pix[i+0] = c.R
		m.pix[i+1] = c.G
		m.pix[i+2] = c.B
		m.pix[i+3] = c.A
	}
}

// ToRGBA copies the image into a new image.RGBA.
// image.RGBA is premultiplied, so partially transparent pixels are
// converted on the way.
func (m *Image) ToRGBA() *image.RGBA {
	img := image.NewRGBA(m.Bounds())
	draw.Draw(img, img.Bounds(), m, image.Point{}, draw.Src)
	return img
}

// FromImage copies any image.Image into a new Image.
func FromImage(src image.Image) *Image {
	b := src.Bounds()
	m := NewImage(b.Dx(), b.Dy())
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			m.SetPixel(x, y, FromColor(src.At(b.Min.X+x, b.Min.Y+y)))
		}
	}
	return m
}

// Upscale returns a copy enlarged by an integer factor with
// nearest-neighbour sampling, so that every logical pixel becomes a
// crisp scale×scale block.
func (m *Image) Upscale(scale int) *Image {
	if scale <= 1 {
		out := NewImage(m.width, m.height)
		copy(out.pix, m.pix)
		return out
	}
	out := NewImage(m.width*scale, m.height*scale)
	xdraw.NearestNeighbor.Scale(out, out.Bounds(), m, m.Bounds(), xdraw.Src, nil)
	return out
}

// EncodePNG writes the image as PNG.
func (m *Image) EncodePNG(w io.Writer) error {
	if err := png.Encode(w, m); err != nil {
		return fmt.Errorf("cg: encode png: %w", err)
	}
	return nil
}

// SavePNG saves the image to a PNG file.
func (m *Image) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := m.EncodePNG(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// At implements the image.Image interface.
func (m *Image) At(x, y int) color.Color {
	c := m.PixelAt(x, y)
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// Bounds implements the image.Image interface.
func (m *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, m.width, m.height)
}

// ColorModel implements the image.Image interface.
func (m *Image) ColorModel() color.Model {
	return color.NRGBAModel
}

// Set implements the draw.Image interface, so that Image can be used as
// a destination for image/draw and golang.org/x/image rasterizers.
func (m *Image) Set(x, y int, c color.Color) {
	m.SetPixel(x, y, FromColor(c))
}
