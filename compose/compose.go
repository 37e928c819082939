// Package compose blends a stack of image layers with per-layer opacity.
//
// Layers are applied bottom to top over an opaque background. A layer
// only affects pixels it actually covers: a pixel whose alpha is zero
// leaves the accumulated colour alone, any other pixel is mixed in with
// the layer's opacity regardless of its own alpha. The result is always
// opaque.
package compose

import (
	"errors"
	"fmt"
	"math"

	"github.com/gogpu/cg"
	"github.com/gogpu/cg/internal/blend"
	"github.com/gogpu/cg/internal/parallel"
)

var (
	// ErrSizeMismatch is returned when a layer image differs in size from
	// the destination.
	ErrSizeMismatch = errors.New("compose: layer size does not match destination")

	// ErrLayerIndex is returned for a layer index outside the stack.
	ErrLayerIndex = errors.New("compose: layer index out of range")
)

// Layer is an image with an opacity in [0, 1].
type Layer struct {
	Image *cg.Image
	Alpha float64
}

// Stack is an ordered list of layers, bottom first. Its methods return
// modified copies and never change the receiver; the layer images are
// shared.
type Stack []Layer

func (s Stack) check(i int) error {
	if i < 0 || i >= len(s) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrLayerIndex, i, len(s))
	}
	return nil
}

// Swap returns a copy of s with layers i and j exchanged. Each layer
// keeps its opacity.
func (s Stack) Swap(i, j int) (Stack, error) {
	if err := s.check(i); err != nil {
		return s, err
	}
	if err := s.check(j); err != nil {
		return s, err
	}
	out := append(Stack(nil), s...)
	out[i], out[j] = out[j], out[i]
	return out, nil
}

// SetAlpha returns a copy of s with the opacity of layer i set to a,
// clamped to [0, 1]. NaN is treated as fully transparent.
func (s Stack) SetAlpha(i int, a float64) (Stack, error) {
	if err := s.check(i); err != nil {
		return s, err
	}
	if math.IsNaN(a) {
		a = 0
	}
	out := append(Stack(nil), s...)
	out[i].Alpha = min(max(a, 0), 1)
	return out, nil
}

// Composite writes background with every layer of stack mixed over it
// into dst. All layer images must have the size of dst.
func Composite(dst *cg.Image, background cg.Color, stack Stack) error {
	for i, l := range stack {
		if l.Image == nil {
			return fmt.Errorf("compose: layer %d has no image", i)
		}
		if l.Image.Width() != dst.Width() || l.Image.Height() != dst.Height() {
			return fmt.Errorf("%w: layer %d is %dx%d, destination is %dx%d", ErrSizeMismatch,
				i, l.Image.Width(), l.Image.Height(), dst.Width(), dst.Height())
		}
	}

	w := dst.Width()
	out := dst.Pix()
	parallel.Rows(dst.Height(), 0, func(y0, y1 int) {
		for o := 4 * w * y0; o < 4*w*y1; o += 4 {
			r, g, b := background.R, background.G, background.B
			for _, l := range stack {
				src := l.Image.Pix()[o : o+4 : o+4]
				if src[3] == 0 {
					continue
				}
				r = blend.Mix(src[0], r, l.Alpha)
				g = blend.Mix(src[1], g, l.Alpha)
				b = blend.Mix(src[2], b, l.Alpha)
			}
			out[o], out[o+1], out[o+2], out[o+3] = r, g, b, 255
		}
	})

	cg.Logger().Debug("compose: composited", "layers", len(stack), "width", w, "height", dst.Height())
	return nil
}
