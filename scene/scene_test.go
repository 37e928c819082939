package scene

import (
	"image"
	"slices"
	"testing"

	"github.com/gogpu/cg"
)

// near reports whether two colours differ by at most tol per channel.
func near(a, b cg.Color, tol int) bool {
	d := func(x, y uint8) int {
		if x > y {
			return int(x - y)
		}
		return int(y - x)
	}
	return d(a.R, b.R) <= tol && d(a.G, b.G) <= tol && d(a.B, b.B) <= tol && d(a.A, b.A) <= tol
}

func render(t *testing.T, s Scene) *cg.Image {
	t.Helper()
	img, err := s.Render()
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	return img
}

func TestRegistry(t *testing.T) {
	reg, err := Registry()
	if err != nil {
		t.Fatalf("Registry() error = %v", err)
	}

	sizes := map[string]image.Point{
		"line":                   {200, 200},
		"camera":                 {600, 300},
		"projection-orthogonal":  {600, 300},
		"projection-perspective": {600, 300},
		"circle-pixelwise":       {200, 200},
		"circle-contour":         {200, 200},
		"circle-smooth":          {200, 200},
		"circle-arc":             {200, 200},
		"circle-fan":             {200, 200},
		"transform-basic":        {600, 150},
		"transform-shear":        {600, 150},
		"transform-composite":    {600, 150},
		"blend":                  {200, 200},
		"lighting-vectors":       {600, 300},
		"lighting-flat":          {600, 300},
		"lighting-gouraud":       {600, 300},
		"triangle-projected":     {300, 300},
		"triangle-euclidean":     {300, 300},
		"triangle-homogeneous":   {300, 300},
	}
	if len(reg) != len(sizes) {
		t.Errorf("Registry() has %d scenes, want %d", len(reg), len(sizes))
	}

	for _, name := range Names(reg) {
		t.Run(name, func(t *testing.T) {
			want, ok := sizes[name]
			if !ok {
				t.Fatalf("unexpected scene %q", name)
			}
			img := render(t, reg[name])
			if got := img.Bounds().Size(); got != want {
				t.Errorf("size = %v, want %v", got, want)
			}
		})
	}
}

func TestNamesSorted(t *testing.T) {
	reg, err := Registry()
	if err != nil {
		t.Fatal(err)
	}
	names := Names(reg)
	if !slices.IsSorted(names) {
		t.Errorf("Names() = %v, not sorted", names)
	}
	if !slices.Contains(names, "camera") {
		t.Errorf("Names() = %v, missing camera", names)
	}
}

func TestRenderDeterministic(t *testing.T) {
	reg, err := Registry()
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"camera", "lighting-gouraud", "blend"} {
		a, b := render(t, reg[name]), render(t, reg[name])
		if !slices.Equal(a.Pix(), b.Pix()) {
			t.Errorf("%s: two renders of the same state differ", name)
		}
	}
}

func TestIntersect(t *testing.T) {
	a := image.NewAlpha(image.Rect(0, 0, 4, 1))
	b := image.NewAlpha(image.Rect(0, 0, 4, 1))
	copy(a.Pix, []uint8{255, 255, 0, 128})
	copy(b.Pix, []uint8{255, 0, 255, 255})

	got := intersect(a, b).Pix
	want := []uint8{255, 0, 0, 128}
	if !slices.Equal(got, want) {
		t.Errorf("intersect() = %v, want %v", got, want)
	}

	union(a, b)
	if want := []uint8{255, 255, 255, 255}; !slices.Equal(a.Pix, want) {
		t.Errorf("union() = %v, want %v", a.Pix, want)
	}
}

func TestPolygonsMaskNoSeam(t *testing.T) {
	c := newCanvas(10, 10, cg.White)
	// Two triangles sharing the diagonal of a square.
	m := c.polygonsMask(
		[]cg.Vec2{cg.V2(0, 0), cg.V2(10, 0), cg.V2(10, 10)},
		[]cg.Vec2{cg.V2(0, 0), cg.V2(10, 10), cg.V2(0, 10)},
	)
	for i, v := range m.Pix {
		if v < 250 {
			t.Fatalf("coverage at %d = %d, want full", i, v)
		}
	}
}
