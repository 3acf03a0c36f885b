package renderer

import (
	"image"
	"sync"
)

// Row is a finished image row waiting to be copied into a framebuffer
type Row struct {
	Y      int
	Pixels []uint32
}

// Framebuffer holds packed 0x00RRGGBB pixels in row-major order, top row first.
// It is the only state shared between render workers.
type Framebuffer struct {
	width  int
	height int
	pixels []uint32
	mu     sync.RWMutex
}

// NewFramebuffer creates a black framebuffer
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		width:  width,
		height: height,
		pixels: make([]uint32, width*height),
	}
}

// Width returns the framebuffer width in pixels
func (fb *Framebuffer) Width() int {
	return fb.width
}

// Height returns the framebuffer height in pixels
func (fb *Framebuffer) Height() int {
	return fb.height
}

// TryWriteRows copies rows into the framebuffer if the write lock is free.
// It returns false without blocking when the lock is held.
func (fb *Framebuffer) TryWriteRows(rows []Row) bool {
	if !fb.mu.TryLock() {
		return false
	}
	defer fb.mu.Unlock()

	fb.copyRows(rows)
	return true
}

// WriteRows copies rows into the framebuffer, waiting for the write lock
func (fb *Framebuffer) WriteRows(rows []Row) {
	fb.mu.Lock()
	defer fb.mu.Unlock()

	fb.copyRows(rows)
}

func (fb *Framebuffer) copyRows(rows []Row) {
	for _, row := range rows {
		copy(fb.pixels[row.Y*fb.width:(row.Y+1)*fb.width], row.Pixels)
	}
}

// Snapshot returns a copy of the current pixels
func (fb *Framebuffer) Snapshot() []uint32 {
	fb.mu.RLock()
	defer fb.mu.RUnlock()

	pixels := make([]uint32, len(fb.pixels))
	copy(pixels, fb.pixels)
	return pixels
}

// At returns the packed pixel at column x of row y
func (fb *Framebuffer) At(x, y int) uint32 {
	fb.mu.RLock()
	defer fb.mu.RUnlock()

	return fb.pixels[y*fb.width+x]
}

// Image converts the current pixels into an opaque RGBA image
func (fb *Framebuffer) Image() *image.RGBA {
	pixels := fb.Snapshot()

	img := image.NewRGBA(image.Rect(0, 0, fb.width, fb.height))
	for y := 0; y < fb.height; y++ {
		for x := 0; x < fb.width; x++ {
			img.SetRGBA(x, y, unpackColor(pixels[y*fb.width+x]))
		}
	}
	return img
}
