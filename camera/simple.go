package camera

import (
	"fmt"

	"github.com/gogpu/cg"
)

// OrthogonalProject projects the world point p = [x, z] along the z axis
// onto a line of constant z and returns the image x coordinate.
func OrthogonalProject(p cg.Vec2) float64 {
	return p.X
}

// PerspectiveProject projects p = [x, z] through eye onto the image plane
// z = imagePlane, for a camera aligned with the world axes. It returns the
// world x coordinate where the ray from eye through p meets the plane.
func PerspectiveProject(eye cg.Vec2, imagePlane float64, p cg.Vec2) (float64, error) {
	depth := p.Y - eye.Y
	if depth == 0 {
		return 0, fmt.Errorf("camera: project %v: %w", p, cg.ErrZeroW)
	}
	return eye.X + (p.X-eye.X)*(imagePlane-eye.Y)/depth, nil
}
