package geometry

import (
	"math"
	"testing"

	"github.com/df07/raest/pkg/core"
	"github.com/df07/raest/pkg/material"
)

func TestParseRectAxis(t *testing.T) {
	tests := []struct {
		input   string
		want    RectAxis
		wantErr bool
	}{
		{"XY", XY, false},
		{"xz", XZ, false},
		{"Yz", YZ, false},
		{"XX", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseRectAxis(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseRectAxis(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseRectAxis(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestRect_Hit(t *testing.T) {
	tests := []struct {
		name          string
		rect          *Rect
		ray           core.Ray
		shouldHit     bool
		expectedT     float64
		expectedFront bool
		expectedUV    core.Vec2
	}{
		{
			name:          "XY front hit at center",
			rect:          NewRect(XY, core.NewVec2(-1, -1), core.NewVec2(1, 1), 0, testMaterial),
			ray:           core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1)),
			shouldHit:     true,
			expectedT:     5,
			expectedFront: true,
			expectedUV:    core.NewVec2(0.5, 0.5),
		},
		{
			name:          "XY hit from below is back face",
			rect:          NewRect(XY, core.NewVec2(1, 1), core.NewVec2(-1, -1), 0, testMaterial),
			ray:           core.NewRay(core.NewVec3(0.5, -0.5, -2), core.NewVec3(0, 0, 1)),
			shouldHit:     true,
			expectedT:     2,
			expectedFront: false,
			expectedUV:    core.NewVec2(0.75, 0.25),
		},
		{
			name:      "XZ miss outside bounds",
			rect:      NewRect(XZ, core.NewVec2(0, 0), core.NewVec2(1, 1), 2, testMaterial),
			ray:       core.NewRay(core.NewVec3(3, 0, 0.5), core.NewVec3(0, 1, 0)),
			shouldHit: false,
		},
		{
			name:      "YZ parallel ray misses",
			rect:      NewRect(YZ, core.NewVec2(0, 0), core.NewVec2(1, 1), 2, testMaterial),
			ray:       core.NewRay(core.NewVec3(0, 0.5, 0.5), core.NewVec3(0, 1, 0)),
			shouldHit: false,
		},
		{
			name:          "YZ hit",
			rect:          NewRect(YZ, core.NewVec2(0, 0), core.NewVec2(2, 4), 3, testMaterial),
			ray:           core.NewRay(core.NewVec3(0, 1, 1), core.NewVec3(2, 0, 0)),
			shouldHit:     true,
			expectedT:     1.5,
			expectedFront: false,
			expectedUV:    core.NewVec2(0.5, 0.25),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var hit material.HitRecord
			got := tt.rect.Hit(tt.ray, 0.001, math.Inf(1), &hit)
			if got != tt.shouldHit {
				t.Fatalf("Expected hit=%v, got %v", tt.shouldHit, got)
			}
			if !got {
				return
			}

			if math.Abs(hit.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%v, got %v", tt.expectedT, hit.T)
			}
			if hit.FrontFace != tt.expectedFront {
				t.Errorf("Expected front face %v, got %v", tt.expectedFront, hit.FrontFace)
			}
			if hit.Normal.Dot(tt.ray.Direction) >= 0 {
				t.Errorf("Normal %v should face against the ray", hit.Normal)
			}
			if math.Abs(hit.UV.X-tt.expectedUV.X) > 1e-9 || math.Abs(hit.UV.Y-tt.expectedUV.Y) > 1e-9 {
				t.Errorf("Expected UV %v, got %v", tt.expectedUV, hit.UV)
			}
		})
	}
}

func TestRect_BoundingBoxIsPadded(t *testing.T) {
	rect := NewRect(XZ, core.NewVec2(0, 0), core.NewVec2(2, 3), 5, testMaterial)
	box := rect.BoundingBox()

	if box.Min.Y >= 5 || box.Max.Y <= 5 {
		t.Errorf("Box %v should have thickness around y=5", box)
	}
	if box.Min.X != 0 || box.Max.X != 2 || box.Min.Z != 0 || box.Max.Z != 3 {
		t.Errorf("Box %v should match the in-plane extent", box)
	}
}

func TestRect_PDF(t *testing.T) {
	light := NewRect(XZ, core.NewVec2(-1, -1), core.NewVec2(1, 1), 4, material.NewEmissive(core.NewVec3(4, 4, 4)))
	origin := core.NewVec3(0, 0, 0)

	// Straight up: distance 4, cos 1, area 4
	straight := light.PDFValue(core.NewRay(origin, core.NewVec3(0, 1, 0)))
	if math.Abs(straight-16.0/4.0) > 1e-9 {
		t.Errorf("Expected density 4, got %v", straight)
	}

	if got := light.PDFValue(core.NewRay(origin, core.NewVec3(0, -1, 0))); got != 0 {
		t.Errorf("Direction away from the light should have zero density, got %v", got)
	}

	sampler := core.NewSeededSampler(7)
	const n = 5000
	positive := 0
	for i := 0; i < n; i++ {
		dir := light.Random(origin, sampler)
		if dir.Y <= 0 {
			t.Fatalf("Sampled direction %v should point towards the light", dir)
		}
		if light.PDFValue(core.NewRay(origin, dir)) > 0 {
			positive++
		}
	}

	// Samples within the edge tolerance may graze past the bounds check
	if positive < n*99/100 {
		t.Errorf("Expected nearly all sampled directions to have positive density, got %d/%d", positive, n)
	}
}

func TestRect_Emit(t *testing.T) {
	radiance := core.NewVec3(15, 15, 15)
	light := NewRect(XZ, core.NewVec2(-1, -1), core.NewVec2(1, 1), 4, material.NewEmissive(radiance))
	sampler := core.NewSeededSampler(3)

	for i := 0; i < 200; i++ {
		e := light.Emit(sampler)
		if e.Normal != core.NewVec3(0, -1, 0) {
			t.Fatalf("Expected downward normal, got %v", e.Normal)
		}
		if e.Ray.Direction.Y > 1e-12 {
			t.Fatalf("Emitted direction %v should leave downward", e.Ray.Direction)
		}
		if e.Radiance != radiance {
			t.Fatalf("Expected radiance %v, got %v", radiance, e.Radiance)
		}
	}
}

func TestBlock(t *testing.T) {
	block := NewBlock(core.NewVec3(1, 1, 1), core.NewVec3(-1, -1, -1), testMaterial)

	box := block.BoundingBox()
	if box.Min.X > -1 || box.Max.X < 1 || box.Min.Y > -1 || box.Max.Z < 1 {
		t.Errorf("Box %v should contain the block", box)
	}

	tests := []struct {
		name      string
		ray       core.Ray
		expectedT float64
		normal    core.Vec3
	}{
		{"from +X", core.NewRay(core.NewVec3(5, 0, 0), core.NewVec3(-1, 0, 0)), 4, core.NewVec3(1, 0, 0)},
		{"from -Y", core.NewRay(core.NewVec3(0.2, -3, 0.3), core.NewVec3(0, 1, 0)), 2, core.NewVec3(0, -1, 0)},
		{"from +Z", core.NewRay(core.NewVec3(0, 0, 2), core.NewVec3(0, 0, -2)), 0.5, core.NewVec3(0, 0, 1)},
		{"from inside", core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0)), 1, core.NewVec3(-1, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var hit material.HitRecord
			if !block.Hit(tt.ray, 0.001, math.Inf(1), &hit) {
				t.Fatal("Expected hit, but got miss")
			}
			if math.Abs(hit.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%v, got %v", tt.expectedT, hit.T)
			}
			if hit.Normal.Subtract(tt.normal).Length() > 1e-9 {
				t.Errorf("Expected normal %v, got %v", tt.normal, hit.Normal)
			}
		})
	}

	if block.IsLight() {
		t.Error("Lambertian block should not be a light")
	}
}

func TestBlock_PDFMatchesSampling(t *testing.T) {
	block := NewBlock(core.NewVec3(-1, 3, -1), core.NewVec3(1, 4, 1), material.NewEmissive(core.NewVec3(1, 1, 1)))
	origin := core.NewVec3(0, 0, 0)
	sampler := core.NewSeededSampler(11)

	if !block.IsLight() {
		t.Fatal("Emissive block should be a light")
	}

	const n = 1000
	positive := 0
	for i := 0; i < n; i++ {
		dir := block.Random(origin, sampler)
		if block.PDFValue(core.NewRay(origin, dir)) > 0 {
			positive++
		}
	}

	if positive < n*99/100 {
		t.Errorf("Expected nearly all sampled directions to have positive density, got %d/%d", positive, n)
	}
}
