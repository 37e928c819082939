package scene

import (
	"github.com/gogpu/cg"
	"github.com/gogpu/cg/compose"
	"github.com/gogpu/cg/raster"
)

// BlendScene composites a stack of overlapping disc layers over white.
type BlendScene struct {
	Width, Height int
	Layers        compose.Stack
}

// DefaultBlendScene returns four coloured discs on a 200×200 canvas, each
// at half opacity.
func DefaultBlendScene() BlendScene {
	const w, h, r = 200, 200, 50
	discs := []struct {
		x, y float64
		c    cg.Color
	}{
		{70, 70, cg.Red},
		{130, 70, cg.Green},
		{70, 130, cg.Blue},
		{130, 130, cg.RGB(255, 255, 0)},
	}
	stack := make(compose.Stack, len(discs))
	for i, d := range discs {
		img := cg.NewImage(w, h)
		raster.FillDisc(img, d.x, d.y, r, d.c)
		stack[i] = compose.Layer{Image: img, Alpha: 0.5}
	}
	return BlendScene{Width: w, Height: h, Layers: stack}
}

// HandleAlpha sets the opacity of layer i.
func (s BlendScene) HandleAlpha(i int, a float64) (BlendScene, error) {
	layers, err := s.Layers.SetAlpha(i, a)
	if err != nil {
		return s, err
	}
	s.Layers = layers
	return s, nil
}

// HandleSwap exchanges layers i and j together with their opacities.
func (s BlendScene) HandleSwap(i, j int) (BlendScene, error) {
	layers, err := s.Layers.Swap(i, j)
	if err != nil {
		return s, err
	}
	s.Layers = layers
	return s, nil
}

// Render composites the layers over a white background.
func (s BlendScene) Render() (*cg.Image, error) {
	dst := cg.NewImage(s.Width, s.Height)
	if err := compose.Composite(dst, cg.White, s.Layers); err != nil {
		return nil, err
	}
	return dst, nil
}
