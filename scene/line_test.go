package scene

import (
	"errors"
	"testing"

	"github.com/gogpu/cg"
)

func TestLineSceneHandlePointer(t *testing.T) {
	s := DefaultLineScene()

	tests := []struct {
		name       string
		event      PointerEvent
		start, end cg.Vec2
	}{
		{"moves start", PointerEvent{X: 55, Y: 120}, cg.V2(5.5, 12), cg.V2(18, 18)},
		{"ctrl moves end", PointerEvent{X: 120, Y: 40, Ctrl: true}, cg.V2(1, 1), cg.V2(12, 4)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.HandlePointer(tt.event)
			if got.Segment.Start != tt.start || got.Segment.End != tt.end {
				t.Errorf("segment = %v -> %v, want %v -> %v",
					got.Segment.Start, got.Segment.End, tt.start, tt.end)
			}
		})
	}
	if s != DefaultLineScene() {
		t.Error("HandlePointer modified the receiver")
	}
}

func TestLineSceneHandlePixelScale(t *testing.T) {
	s := DefaultLineScene()

	got, err := s.HandlePixelScale(5)
	if err != nil {
		t.Fatalf("HandlePixelScale(5) error = %v", err)
	}
	if got.PixelScale != 5 || got.Segment.Start != cg.V2(2, 2) || got.Segment.End != cg.V2(36, 36) {
		t.Errorf("HandlePixelScale(5) = %+v", got)
	}
	if s.PixelScale != 10 {
		t.Error("HandlePixelScale modified the receiver")
	}

	for _, v := range []int{0, -3} {
		same, err := s.HandlePixelScale(v)
		if !errors.Is(err, ErrInvalidScale) {
			t.Errorf("HandlePixelScale(%d) error = %v, want ErrInvalidScale", v, err)
		}
		if same != s {
			t.Errorf("HandlePixelScale(%d) changed the state", v)
		}
	}
}

func TestLineSceneRender(t *testing.T) {
	img := render(t, DefaultLineScene())

	tests := []struct {
		name string
		x, y int
		want cg.Color
	}{
		{"start pixel", 15, 15, cg.Red},
		{"end pixel", 185, 185, cg.Green},
		{"on the line", 55, 55, cg.Black},
		{"off the line", 10, 100, cg.White},
	}
	for _, tt := range tests {
		if got := img.PixelAt(tt.x, tt.y); got != tt.want {
			t.Errorf("%s: PixelAt(%d,%d) = %+v, want %+v", tt.name, tt.x, tt.y, got, tt.want)
		}
	}

	s := DefaultLineScene()
	s.PixelScale = 0
	if _, err := s.Render(); !errors.Is(err, ErrInvalidScale) {
		t.Errorf("Render() with scale 0 error = %v, want ErrInvalidScale", err)
	}
}

func TestLineSceneLogicalSize(t *testing.T) {
	s := DefaultLineScene()
	s, _ = s.HandlePixelScale(3)
	if w, h := s.LogicalSize(); w != 67 || h != 67 {
		t.Errorf("LogicalSize() = %d, %d, want 67, 67", w, h)
	}
}
