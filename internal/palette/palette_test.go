package palette

import (
	"image/color"
	"testing"
)

func TestHSV(t *testing.T) {
	tests := []struct {
		name    string
		h, s, v float64
		want    color.RGBA
	}{
		{"red", 0, 1, 1, color.RGBA{R: 255, A: 255}},
		{"green", 120, 1, 1, color.RGBA{G: 255, A: 255}},
		{"blue", 240, 1, 1, color.RGBA{B: 255, A: 255}},
		{"wraps above 360", 480, 1, 1, color.RGBA{G: 255, A: 255}},
		{"wraps below 0", -120, 1, 1, color.RGBA{B: 255, A: 255}},
		{"grey", 300, 0, 0.5, color.RGBA{R: 128, G: 128, B: 128, A: 255}},
		{"black", 42, 1, 0, color.RGBA{A: 255}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HSV(tt.h, tt.s, tt.v); got != tt.want {
				t.Errorf("HSV(%v, %v, %v) = %v, want %v", tt.h, tt.s, tt.v, got, tt.want)
			}
		})
	}
}

func TestFade(t *testing.T) {
	pink := color.RGBA{R: 255, G: 105, B: 180, A: 200}
	tests := []struct {
		a    float64
		want uint8
	}{
		{1, 200},
		{0.5, 100},
		{0, 0},
		{-1, 0},
		{3, 200},
	}
	for _, tt := range tests {
		got := Fade(pink, tt.a)
		if got.A != tt.want || got.R != pink.R || got.G != pink.G || got.B != pink.B {
			t.Errorf("Fade(%v) = %v, want alpha %d", tt.a, got, tt.want)
		}
	}
}
