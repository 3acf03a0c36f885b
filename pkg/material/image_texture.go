package material

import (
	"image"

	"github.com/df07/raest/pkg/core"
)

// ImageTexture provides color from a 2D image using nearest-neighbor lookup
type ImageTexture struct {
	Width  int
	Height int
	Pixels []core.Vec3 // Row-major, top row first: Pixels[y*Width + x]
}

// NewImageTexture converts a decoded image into a texture with colors in [0, 1]
func NewImageTexture(img image.Image) *ImageTexture {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	pixels := make([]core.Vec3, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			// RGBA returns 16-bit channels
			r, g, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			pixels[y*width+x] = core.NewVec3(float64(r)/65535.0, float64(g)/65535.0, float64(b)/65535.0)
		}
	}

	return &ImageTexture{Width: width, Height: height, Pixels: pixels}
}

// Evaluate samples the texture at the given UV coordinates.
// UV is clamped to [0, 1]; V=0 is the bottom row of the image.
func (t *ImageTexture) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	if t.Width == 0 || t.Height == 0 {
		// Cyan makes a missing image obvious in the render
		return core.NewVec3(0, 1, 1)
	}

	u := clamp01(uv.X)
	v := 1.0 - clamp01(uv.Y)

	x := min(int(u*float64(t.Width)), t.Width-1)
	y := min(int(v*float64(t.Height)), t.Height-1)

	return t.Pixels[y*t.Width+x]
}

func clamp01(x float64) float64 {
	return max(0, min(1, x))
}
