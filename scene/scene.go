// Package scene holds the demo scenes as explicit state values.
//
// Every scene is a plain struct. Input arrives as event values passed to
// handler methods, which return a new state and never modify the
// receiver. Render draws the current state into a fresh image, so the
// same state always renders the same pixels.
//
//	s := scene.DefaultLineScene()
//	s = s.HandlePointer(scene.PointerEvent{X: 120, Y: 40, Ctrl: true})
//	img, err := s.Render()
package scene

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/gogpu/cg"
)

var (
	// ErrInvalidScale is returned for a pixel scale below 1.
	ErrInvalidScale = errors.New("scene: pixel scale must be at least 1")

	// ErrInvalidSamples is returned for a count of sample points or
	// segments the scene cannot draw.
	ErrInvalidSamples = errors.New("scene: invalid sample count")
)

// Scene is anything that can draw its current state.
type Scene interface {
	Render() (*cg.Image, error)
}

// PointerEvent is a pointer press at canvas coordinates (X, Y).
// Ctrl reports whether the control key was held.
type PointerEvent struct {
	X, Y float64
	Ctrl bool
}

// Registry returns every scene in its default state, keyed by name.
func Registry() (map[string]Scene, error) {
	cam, err := DefaultCameraScene()
	if err != nil {
		return nil, fmt.Errorf("scene: camera: %w", err)
	}
	return map[string]Scene{
		"line":                   DefaultLineScene(),
		"camera":                 cam,
		"projection-orthogonal":  DefaultProjectionScene(Orthogonal),
		"projection-perspective": DefaultProjectionScene(Perspective),
		"circle-pixelwise":       DefaultCircleScene(Pixelwise),
		"circle-contour":         DefaultCircleScene(Contour),
		"circle-arc":             DefaultCircleScene(Arc),
		"circle-smooth":          DefaultCircleScene(Smooth),
		"circle-fan":             DefaultCircleScene(Fan),
		"transform-basic":        DefaultTransformScene(Basic),
		"transform-shear":        DefaultTransformScene(ThreeShear),
		"transform-composite":    DefaultTransformScene(Composite),
		"blend":                  DefaultBlendScene(),
		"lighting-vectors":       DefaultLightingScene(Vectors),
		"lighting-flat":          DefaultLightingScene(Flat),
		"lighting-gouraud":       DefaultLightingScene(Gouraud),
		"triangle-projected":     DefaultTriangleScene(Projected),
		"triangle-euclidean":     DefaultTriangleScene(EuclideanMidpoints),
		"triangle-homogeneous":   DefaultTriangleScene(HomogeneousMidpoints),
	}, nil
}

// Names returns the sorted names of the scenes in reg.
func Names(reg map[string]Scene) []string {
	return slices.Sorted(maps.Keys(reg))
}
