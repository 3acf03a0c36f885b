package loaders

import (
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/df07/raest/pkg/core"
)

// writeTestPNG writes a 2x2 image: white, red / green, blue
func writeTestPNG(t *testing.T, path string) {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	img.Set(1, 0, color.RGBA{R: 255, A: 255})
	img.Set(0, 1, color.RGBA{G: 255, A: 255})
	img.Set(1, 1, color.RGBA{B: 255, A: 255})

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("Failed to encode PNG: %v", err)
	}
}

func TestLoadImageTexture(t *testing.T) {
	testFile := filepath.Join(t.TempDir(), "test.png")
	writeTestPNG(t, testFile)

	texture, err := LoadImageTexture(testFile)
	if err != nil {
		t.Fatalf("LoadImageTexture failed: %v", err)
	}

	if texture.Width != 2 || texture.Height != 2 {
		t.Fatalf("Expected 2x2 texture, got %dx%d", texture.Width, texture.Height)
	}

	checkColor := func(name string, got, expected core.Vec3) {
		const tolerance = 0.01
		if math.Abs(got.X-expected.X) > tolerance ||
			math.Abs(got.Y-expected.Y) > tolerance ||
			math.Abs(got.Z-expected.Z) > tolerance {
			t.Errorf("%s: expected %v, got %v", name, expected, got)
		}
	}

	checkColor("Top-left (white)", texture.Pixels[0], core.NewVec3(1, 1, 1))
	checkColor("Top-right (red)", texture.Pixels[1], core.NewVec3(1, 0, 0))
	checkColor("Bottom-left (green)", texture.Pixels[2], core.NewVec3(0, 1, 0))
	checkColor("Bottom-right (blue)", texture.Pixels[3], core.NewVec3(0, 0, 1))
}

func TestLoadImage_Errors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadImage(filepath.Join(dir, "missing.png")); err == nil {
		t.Error("Expected error for missing file")
	}

	garbage := filepath.Join(dir, "garbage.png")
	if err := os.WriteFile(garbage, []byte("not an image"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadImage(garbage); err == nil {
		t.Error("Expected error for undecodable file")
	}
}
