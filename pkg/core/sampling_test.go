package core

import (
	"math"
	"math/rand"
	"testing"
)

func TestSampleCosineDirection_UpperHemisphere(t *testing.T) {
	sampler := NewRandomSampler(rand.New(rand.NewSource(42)))

	for i := 0; i < 1000; i++ {
		dir := SampleCosineDirection(sampler.Get2D())
		if dir.Z < 0 {
			t.Fatalf("Sample %d below hemisphere: %v", i, dir)
		}
		if math.Abs(dir.Length()-1) > 1e-9 {
			t.Fatalf("Sample %d not unit length: %v", i, dir.Length())
		}
	}
}

func TestSampleToSphere_WithinCone(t *testing.T) {
	sampler := NewSeededSampler(1)
	radius, distance := 1.0, 4.0
	cosThetaMax := math.Sqrt(1 - radius*radius/(distance*distance))

	for i := 0; i < 1000; i++ {
		dir := SampleToSphere(radius, distance*distance, sampler.Get2D())
		if dir.Z < cosThetaMax-1e-12 {
			t.Fatalf("Sample %d outside cone: z=%v, cosThetaMax=%v", i, dir.Z, cosThetaMax)
		}
		if math.Abs(dir.Length()-1) > 1e-9 {
			t.Fatalf("Sample %d not unit length: %v", i, dir.Length())
		}
	}
}

func TestSamplePhongLobe_SharpensWithExponent(t *testing.T) {
	sampler := NewSeededSampler(3)

	meanCos := func(exponent float64) float64 {
		sum := 0.0
		for i := 0; i < 5000; i++ {
			sum += SamplePhongLobe(exponent, sampler.Get2D()).Z
		}
		return sum / 5000
	}

	// E[cos] for a cos^n lobe is (n+1)/(n+2)
	tests := []struct {
		exponent float64
	}{
		{1},
		{10},
		{100},
	}
	for _, tt := range tests {
		expected := (tt.exponent + 1) / (tt.exponent + 2)
		if got := meanCos(tt.exponent); math.Abs(got-expected) > 0.02 {
			t.Errorf("exponent %v: mean cos %v, expected %v", tt.exponent, got, expected)
		}
	}
}

func TestSamplePointInUnitSphere(t *testing.T) {
	sampler := NewSeededSampler(5)
	for i := 0; i < 1000; i++ {
		if p := SamplePointInUnitSphere(sampler.Get3D()); p.Length() > 1+1e-12 {
			t.Fatalf("Point outside unit sphere: %v", p)
		}
	}
}

func TestSamplePointInUnitDisk(t *testing.T) {
	sampler := NewSeededSampler(9)
	for i := 0; i < 1000; i++ {
		p := SamplePointInUnitDisk(sampler.Get2D())
		if p.Z != 0 || p.Length() > 1+1e-12 {
			t.Fatalf("Point outside unit disk: %v", p)
		}
	}
}
