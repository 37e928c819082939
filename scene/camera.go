package scene

import (
	"github.com/gogpu/cg"
	"github.com/gogpu/cg/camera"
	"github.com/gogpu/cg/internal/label"
)

// inset is the edge length of the canonical volume view.
const inset = 120

var insetBackground = cg.RGB(240, 240, 240)

// CameraScene shows a 2D camera looking at a polygon. World points [x, z]
// are drawn at canvas (z, x).
type CameraScene struct {
	Width, Height int
	Camera        camera.Camera
	Polygon       []cg.Vec2
}

// DefaultCameraScene returns the default camera looking at a square.
func DefaultCameraScene() (CameraScene, error) {
	cam, err := camera.New()
	if err != nil {
		return CameraScene{}, err
	}
	return CameraScene{
		Width:  600,
		Height: 300,
		Camera: *cam,
		Polygon: []cg.Vec2{
			cg.V2(100, 400), cg.V2(100, 500), cg.V2(200, 500), cg.V2(200, 400),
		},
	}, nil
}

// HandlePointer moves the eye to the pressed point, or the look-at point
// when Ctrl is held. A move the camera rejects returns the unchanged
// state with the error.
func (s CameraScene) HandlePointer(e PointerEvent) (CameraScene, error) {
	p := cg.V2(e.Y, e.X)
	next := s
	var err error
	if e.Ctrl {
		err = next.Camera.LookAt(p)
	} else {
		err = next.Camera.SetEye(p)
	}
	if err != nil {
		cg.Logger().Warn("scene: camera move rejected", "point", p, "ctrl", e.Ctrl, "err", err)
		return s, err
	}
	return next, nil
}

// Render draws the frustum, the polygon split into its visible and
// hidden parts, its projection onto the near plane, and the canonical
// volume inset.
func (s CameraScene) Render() (*cg.Image, error) {
	c := newCanvas(s.Width, s.Height, cg.White)
	cam := &s.Camera

	fr := cam.Frustum()
	frustum := swapAll(fr.Polygon())
	frustumMask := c.polygonMask(frustum...)
	c.paint(frustumMask, cg.LightGray)
	c.strokePolygon(cg.Gray, frustum...)
	nearMid := fr.NearLeft.Lerp(fr.NearRight, 0.5).Swap()
	farMid := fr.FarLeft.Lerp(fr.FarRight, 0.5).Swap()
	c.text("near plane", nearMid.X, nearMid.Y-5, cg.Gray, label.Center)
	c.text("far plane", farMid.X, farMid.Y-5, cg.Gray, label.Center)

	poly := swapAll(s.Polygon)
	polyMask := c.polygonMask(poly...)
	c.paint(polyMask, cg.Red)
	c.paint(intersect(polyMask, frustumMask), cg.Green)
	c.strokePolygon(cg.Black, poly...)

	eye, target := cam.Eye().Swap(), cam.Target().Swap()
	c.dot(eye, 4, cg.Black)
	c.text("eye", eye.X, eye.Y-8, cg.Black, label.Center)
	c.dot(target, 4, cg.Blue)

	c.fillRect(0, 0, inset, inset, insetBackground)
	c.strokePolygon(cg.Gray, cg.V2(0, 0), cg.V2(inset-1, 0), cg.V2(inset-1, inset-1), cg.V2(0, inset-1))
	if ndc, ok := s.project(); ok {
		s.drawProjection(c, ndc, fr)
		s.drawCanonical(c, ndc)
	}
	c.text("Canonical Volume", inset/2, inset-4, cg.Black, label.Center)

	c.axes("X", "Z")
	return c.done()
}

// project returns the normalized device coordinates of every polygon
// vertex. It fails as a whole when any vertex lies on the focal plane.
func (s CameraScene) project() ([]cg.Vec2, bool) {
	ndc := make([]cg.Vec2, len(s.Polygon))
	for i, p := range s.Polygon {
		q, err := s.Camera.ProjectPoint(p)
		if err != nil {
			cg.Logger().Warn("scene: polygon not projected", "vertex", i, "err", err)
			return nil, false
		}
		ndc[i] = q
	}
	return ndc, true
}

func (s CameraScene) drawProjection(c *canvas, ndc []cg.Vec2, fr camera.Frustum) {
	screen := make([]cg.Vec2, len(ndc))
	for i, q := range ndc {
		screen[i] = s.Camera.WorldPointOnScreen(q.X).Swap()
		c.dashed(s.Polygon[i].Swap(), screen[i], cg.Gray)
	}

	// The red projection is covered by the wide green band where it
	// falls inside the near plane.
	for i := range screen {
		c.line(screen[i], screen[(i+1)%len(screen)], cg.Red)
	}
	visible := c.lineMask(fr.NearLeft.Swap(), fr.NearRight.Swap(), 4)
	projected := c.newMask()
	for i := range screen {
		union(projected, c.lineMask(screen[i], screen[(i+1)%len(screen)], 4))
	}
	c.paint(intersect(projected, visible), cg.Green)
}

// drawCanonical draws the outlined polygon in normalized device
// coordinates, with image x pointing up and depth to the right.
func (s CameraScene) drawCanonical(c *canvas, ndc []cg.Vec2) {
	pts := make([]cg.Vec2, len(ndc))
	for i, q := range ndc {
		pts[i] = cg.V2((q.Y/2+0.5)*inset, (-q.X/2+0.5)*inset)
	}
	clip := c.rectMask(0, 0, inset, inset)
	c.paint(intersect(c.polygonMask(pts...), clip), cg.Green)

	outline := c.newMask()
	for i := range pts {
		union(outline, c.lineMask(pts[i], pts[(i+1)%len(pts)], 1))
	}
	c.paint(intersect(outline, clip), cg.Black)
}

func swapAll(pts []cg.Vec2) []cg.Vec2 {
	out := make([]cg.Vec2, len(pts))
	for i, p := range pts {
		out[i] = p.Swap()
	}
	return out
}
