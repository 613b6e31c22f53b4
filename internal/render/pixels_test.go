package render

import (
	"image/color"
	"testing"
)

func TestFillGrayRGBA(t *testing.T) {
	cells := []uint8{0, 128, 255}
	buf := make([]byte, 4*len(cells))
	fillGrayRGBA(buf, cells)
	for i, c := range cells {
		base := i * 4
		if buf[base] != c || buf[base+1] != c || buf[base+2] != c {
			t.Fatalf("cell %d: got (%d,%d,%d), want gray %d", i, buf[base], buf[base+1], buf[base+2], c)
		}
		if buf[base+3] != 0xff {
			t.Fatalf("cell %d: alpha %d, want 255", i, buf[base+3])
		}
	}
}

func TestFillPaletteRGBAClampsToLastEntry(t *testing.T) {
	palette := []color.RGBA{
		{R: 10, G: 20, B: 30, A: 255},
		{R: 40, G: 50, B: 60, A: 255},
	}
	cells := []uint8{0, 1, 200}
	buf := make([]byte, 4*len(cells))
	fillPaletteRGBA(buf, cells, palette)
	if buf[0] != 10 || buf[4] != 40 {
		t.Fatalf("palette lookup wrote %d and %d", buf[0], buf[4])
	}
	if buf[8] != 40 || buf[9] != 50 || buf[10] != 60 {
		t.Fatal("out-of-range cell must clamp to the last palette entry")
	}
}

func TestFillPaletteRGBAEmptyPaletteClears(t *testing.T) {
	cells := []uint8{7, 9}
	buf := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	fillPaletteRGBA(buf, cells, nil)
	for i, b := range buf {
		if b != 0 {
			t.Fatalf("byte %d: got %d, want 0", i, b)
		}
	}
}
