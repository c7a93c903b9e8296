package render

import (
	"image/color"
	"testing"

	"lifegrid/pkg/core"
	"lifegrid/pkg/sims/life"
)

func TestRasterFill(t *testing.T) {
	w := life.New()
	w.SetAlive(1, 1, true)
	w.SetAlive(3, 2, true)
	w.SetAlive(10, 10, true)

	var r Raster
	window := core.NewRect(0, 0, 3, 2)
	if !r.Fill(w, window, color.White, color.Black) {
		t.Fatal("fill rejected a small window")
	}
	pw, ph := r.Size()
	if pw != 4 || ph != 3 || len(r.Pixels()) != 4*4*3 {
		t.Fatalf("buffer %dx%d len %d", pw, ph, len(r.Pixels()))
	}
	lit := 0
	for y := 0; y < ph; y++ {
		for x := 0; x < pw; x++ {
			px := r.Pixels()[(y*pw+x)*4:]
			on := px[0] == 0xff && px[1] == 0xff && px[2] == 0xff
			want := (x == 1 && y == 1) || (x == 3 && y == 2)
			if on != want {
				t.Fatalf("pixel (%d,%d) on=%v, want %v", x, y, on, want)
			}
			if px[3] != 0xff {
				t.Fatalf("pixel (%d,%d) not opaque", x, y)
			}
			if on {
				lit++
			}
		}
	}
	if lit != 2 {
		t.Fatalf("lit %d pixels", lit)
	}
}

func TestRasterNegativeWindowReusesBuffer(t *testing.T) {
	w := life.New()
	w.SetAlive(-5, -5, true)

	var r Raster
	r.Fill(w, core.NewRect(-10, -10, 9, 9), color.White, color.Black)
	first := &r.Pixels()[0]
	if !r.Fill(w, core.NewRect(-6, -6, -5, -5), color.White, color.Black) {
		t.Fatal("fill rejected window")
	}
	if &r.Pixels()[0] != first {
		t.Fatal("smaller window should reuse the buffer")
	}
	if r.Pixels()[3*4] != 0xff {
		t.Fatal("cell (-5,-5) should be the last pixel of a 2x2 window")
	}
}

func TestRasterRejectsHugeWindow(t *testing.T) {
	var r Raster
	if r.Fill(life.New(), core.NewRect(0, 0, 1<<20, 1<<20), color.White, color.Black) {
		t.Fatal("huge window accepted")
	}
}
