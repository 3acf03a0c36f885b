package renderer

import (
	"image/color"
	"testing"
)

func TestFramebuffer_WriteRows(t *testing.T) {
	fb := NewFramebuffer(3, 2)
	fb.WriteRows([]Row{
		{Y: 1, Pixels: []uint32{0xff0000, 0x00ff00, 0x0000ff}},
	})

	expected := []uint32{0, 0, 0, 0xff0000, 0x00ff00, 0x0000ff}
	got := fb.Snapshot()
	for i := range expected {
		if got[i] != expected[i] {
			t.Fatalf("Pixel %d: expected %06x, got %06x", i, expected[i], got[i])
		}
	}

	if fb.At(2, 1) != 0x0000ff {
		t.Errorf("Expected blue at (2, 1), got %06x", fb.At(2, 1))
	}
}

func TestFramebuffer_TryWriteRows(t *testing.T) {
	fb := NewFramebuffer(2, 2)
	rows := []Row{{Y: 0, Pixels: []uint32{1, 2}}}

	fb.mu.RLock()
	if fb.TryWriteRows(rows) {
		t.Error("Expected TryWriteRows to fail while a reader holds the lock")
	}
	fb.mu.RUnlock()

	if fb.At(0, 0) != 0 {
		t.Error("Expected a failed try to leave the framebuffer untouched")
	}

	if !fb.TryWriteRows(rows) {
		t.Fatal("Expected TryWriteRows to succeed on a free lock")
	}
	if fb.At(0, 0) != 1 || fb.At(1, 0) != 2 {
		t.Errorf("Expected the row to be copied, got %v", fb.Snapshot())
	}
}

func TestFramebuffer_SnapshotIsCopy(t *testing.T) {
	fb := NewFramebuffer(2, 1)
	snapshot := fb.Snapshot()
	snapshot[0] = 0xffffff

	if fb.At(0, 0) != 0 {
		t.Error("Expected modifying a snapshot to leave the framebuffer untouched")
	}
}

func TestFramebuffer_Image(t *testing.T) {
	fb := NewFramebuffer(2, 2)
	fb.WriteRows([]Row{
		{Y: 0, Pixels: []uint32{0xff0000, 0x00ff00}},
		{Y: 1, Pixels: []uint32{0x0000ff, 0x808080}},
	})

	img := fb.Image()
	tests := []struct {
		x, y     int
		expected color.RGBA
	}{
		{0, 0, color.RGBA{255, 0, 0, 255}},
		{1, 0, color.RGBA{0, 255, 0, 255}},
		{0, 1, color.RGBA{0, 0, 255, 255}},
		{1, 1, color.RGBA{128, 128, 128, 255}},
	}

	for _, tt := range tests {
		if got := img.RGBAAt(tt.x, tt.y); got != tt.expected {
			t.Errorf("Pixel (%d, %d): expected %v, got %v", tt.x, tt.y, tt.expected, got)
		}
	}
}
