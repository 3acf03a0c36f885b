package renderer

import (
	"image/color"
	"math"
	"testing"

	"github.com/df07/raest/pkg/core"
)

func TestToneMap(t *testing.T) {
	tests := []struct {
		name     string
		sum      core.Vec3
		samples  int
		expected uint32
	}{
		{"black", core.Vec3{}, 1, 0x000000},
		{"white clamps below 256", core.NewVec3(1, 1, 1), 1, 0xfefefe},
		{"overexposed clamps", core.NewVec3(100, 100, 100), 4, 0xfefefe},
		{"gamma 2", core.NewVec3(0.25, 0, 0), 1, 127 << 16},
		{"averaged over samples", core.NewVec3(0, 1, 0), 4, 127 << 8},
		{"channel order", core.NewVec3(1, 0.25, 0), 1, 0xfe7f00},
		{"NaN becomes black", core.NewVec3(math.NaN(), 1, math.NaN()), 1, 0x00fe00},
		{"negative becomes black", core.NewVec3(-1, 0, 0), 1, 0x000000},
		{"infinity clamps", core.NewVec3(0, 0, math.Inf(1)), 1, 0x0000fe},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToneMap(tt.sum, tt.samples); got != tt.expected {
				t.Errorf("Expected %06x, got %06x", tt.expected, got)
			}
		})
	}
}

func TestUnpackColor(t *testing.T) {
	got := unpackColor(0x123456)
	expected := color.RGBA{R: 0x12, G: 0x34, B: 0x56, A: 255}
	if got != expected {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}
