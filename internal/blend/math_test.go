package blend

import "testing"

func TestDiv255Fast(t *testing.T) {
	tests := []struct {
		input uint16
		want  uint16
	}{
		{0, 0},
		{255, 1},
		{65025, 255}, // 255*255
		{32512, 128}, // ~127.5*255
	}

	for _, tt := range tests {
		got := div255(tt.input)
		if got != tt.want {
			t.Errorf("div255(%d) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestMulDiv255(t *testing.T) {
	tests := []struct {
		a, b byte
		want byte
	}{
		{0, 0, 0},
		{255, 255, 255},
		{255, 0, 0},
		{0, 255, 0},
		{255, 128, 128},
	}

	for _, tt := range tests {
		got := mulDiv255(tt.a, tt.b)
		if got != tt.want {
			t.Errorf("mulDiv255(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestLerp255Bounds(t *testing.T) {
	for a := 0; a < 256; a += 15 {
		for b := 0; b < 256; b += 17 {
			lo, hi := byte(a), byte(b)
			if lo > hi {
				lo, hi = hi, lo
			}
			for tt := 0; tt < 256; tt++ {
				got := lerp255(byte(a), byte(b), byte(tt))
				if got < lo || got > hi {
					t.Fatalf("lerp255(%d, %d, %d) = %d, outside [%d, %d]", a, b, tt, got, lo, hi)
				}
			}
			if got := lerp255(byte(a), byte(b), 0); got != byte(a) {
				t.Errorf("lerp255(%d, %d, 0) = %d, want %d", a, b, got, a)
			}
			if got := lerp255(byte(a), byte(b), 255); got != byte(b) {
				t.Errorf("lerp255(%d, %d, 255) = %d, want %d", a, b, got, b)
			}
		}
	}
}
