// Package label draws short text labels with the embedded Go Regular font.
package label

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Size is the label font size in pixels.
const Size = 12

// Align selects which point of the text is placed at x.
type Align int

const (
	// Left places the start of the text at x.
	Left Align = iota
	// Center places the middle of the text at x.
	Center
)

var (
	once    sync.Once
	face    font.Face
	faceErr error

	// mu serializes face use; opentype faces keep scratch buffers.
	mu sync.Mutex
)

func loadFace() (font.Face, error) {
	once.Do(func() {
		f, err := opentype.Parse(goregular.TTF)
		if err != nil {
			faceErr = fmt.Errorf("label: parse font: %w", err)
			return
		}
		face, faceErr = opentype.NewFace(f, &opentype.FaceOptions{
			Size:    Size,
			DPI:     72,
			Hinting: font.HintingFull,
		})
		if faceErr != nil {
			faceErr = fmt.Errorf("label: create face: %w", faceErr)
		}
	})
	return face, faceErr
}

// Draw renders s onto dst with its baseline at y.
func Draw(dst draw.Image, s string, x, y float64, c color.Color, align Align) error {
	if s == "" {
		return nil
	}
	f, err := loadFace()
	if err != nil {
		return err
	}

	mu.Lock()
	defer mu.Unlock()

	if align == Center {
		x -= fixedToFloat(font.MeasureString(f, s)) / 2
	}
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: f,
		Dot:  fixed.Point26_6{X: fixed.Int26_6(x * 64), Y: fixed.Int26_6(y * 64)},
	}
	d.DrawString(s)
	return nil
}

// Measure returns the advance width of s in pixels.
func Measure(s string) (float64, error) {
	f, err := loadFace()
	if err != nil {
		return 0, err
	}
	mu.Lock()
	defer mu.Unlock()
	return fixedToFloat(font.MeasureString(f, s)), nil
}

func fixedToFloat(x fixed.Int26_6) float64 {
	return float64(x) / 64
}
