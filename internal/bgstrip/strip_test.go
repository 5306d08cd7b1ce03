package bgstrip_test

import (
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"assetkit/internal/bgstrip"
	"assetkit/internal/testsupport"
)

func TestStripScenario(t *testing.T) {
	img := testsupport.NewNRGBA(t, 2, 2,
		color.NRGBA{255, 255, 255, 255},
		color.NRGBA{250, 250, 250, 255},
		color.NRGBA{100, 100, 100, 255},
		color.NRGBA{239, 255, 255, 255},
	)

	matched := bgstrip.Strip(img, 240)
	if matched != 2 {
		t.Fatalf("expected 2 pixels cleared, got %d", matched)
	}

	wantAlpha := []uint8{0, 0, 255, 255}
	for i, want := range wantAlpha {
		got := img.NRGBAAt(i%2, i/2).A
		if got != want {
			t.Errorf("pixel %d alpha = %d, want %d", i, got, want)
		}
	}
}

func TestStripBoundary(t *testing.T) {
	const threshold = 240
	cases := []struct {
		name      string
		px        color.NRGBA
		wantAlpha uint8
	}{
		{"exactly threshold", color.NRGBA{threshold, threshold, threshold, 255}, 0},
		{"red below", color.NRGBA{threshold - 1, threshold, threshold, 255}, 255},
		{"green below", color.NRGBA{threshold, threshold - 1, threshold, 255}, 255},
		{"blue below", color.NRGBA{threshold, threshold, threshold - 1, 255}, 255},
		{"half transparent light", color.NRGBA{255, 255, 255, 128}, 0},
		{"half transparent dark", color.NRGBA{10, 10, 10, 128}, 128},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			img := testsupport.NewNRGBA(t, 1, 1, tc.px)
			bgstrip.Strip(img, threshold)
			got := img.NRGBAAt(0, 0)
			if got.A != tc.wantAlpha {
				t.Fatalf("alpha = %d, want %d", got.A, tc.wantAlpha)
			}
			if got.R != tc.px.R || got.G != tc.px.G || got.B != tc.px.B {
				t.Fatalf("color channels changed: got %v from %v", got, tc.px)
			}
		})
	}
}

func TestStripPixelInvariantAndIdempotence(t *testing.T) {
	const threshold = 200
	src := image.NewNRGBA(image.Rect(0, 0, 16, 16))
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			src.SetNRGBA(x, y, color.NRGBA{uint8(x * 16), uint8(y * 16), uint8(255 - x*8), 255})
		}
	}

	once, _ := bgstrip.StripImage(src, threshold)
	twice, _ := bgstrip.StripImage(once, threshold)

	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			in := src.NRGBAAt(x, y)
			out := once.NRGBAAt(x, y)
			light := in.R >= threshold && in.G >= threshold && in.B >= threshold
			if (out.A == 0) != light {
				t.Fatalf("(%d,%d) alpha %d does not match light=%v for %v", x, y, out.A, light, in)
			}
			if out.R != in.R || out.G != in.G || out.B != in.B {
				t.Fatalf("(%d,%d) color changed: %v -> %v", x, y, in, out)
			}
			if again := twice.NRGBAAt(x, y); again != out {
				t.Fatalf("(%d,%d) second pass changed %v -> %v", x, y, out, again)
			}
		}
	}
	if src.NRGBAAt(15, 15).A != 255 {
		t.Fatal("StripImage must not mutate its source")
	}
}

func TestStripImageMaterializesAlpha(t *testing.T) {
	gray := image.NewGray(image.Rect(0, 0, 2, 1))
	gray.SetGray(0, 0, color.Gray{Y: 250})
	gray.SetGray(1, 0, color.Gray{Y: 20})

	out, matched := bgstrip.StripImage(gray, 240)
	if matched != 1 {
		t.Fatalf("expected 1 match, got %d", matched)
	}
	if got := out.NRGBAAt(0, 0); got != (color.NRGBA{250, 250, 250, 0}) {
		t.Fatalf("unexpected light pixel %v", got)
	}
	if got := out.NRGBAAt(1, 0); got != (color.NRGBA{20, 20, 20, 255}) {
		t.Fatalf("unexpected dark pixel %v", got)
	}
}

func TestProcessRewritesPNGInPlace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dino_up.png")
	testsupport.WritePNG(t, path, testsupport.NewNRGBA(t, 2, 2,
		color.NRGBA{255, 255, 255, 255},
		color.NRGBA{250, 245, 241, 255},
		color.NRGBA{100, 100, 100, 255},
		color.NRGBA{239, 255, 255, 255},
	))

	cleared, err := bgstrip.Process(path, "", 240)
	if err != nil {
		t.Fatalf("Process failed: %v", err)
	}
	if cleared != 2 {
		t.Fatalf("expected 2 cleared pixels, got %d", cleared)
	}

	out := testsupport.ReadNRGBA(t, path)
	if out.Bounds().Dx() != 2 || out.Bounds().Dy() != 2 {
		t.Fatalf("dimensions changed: %v", out.Bounds())
	}
	want := []color.NRGBA{
		{255, 255, 255, 0},
		{250, 245, 241, 0},
		{100, 100, 100, 255},
		{239, 255, 255, 255},
	}
	for i, w := range want {
		if got := out.NRGBAAt(i%2, i/2); got != w {
			t.Errorf("pixel %d = %v, want %v", i, got, w)
		}
	}
}

func TestProcessRejectsUndecodableFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.png")
	testsupport.WriteFile(t, path, []byte("not a png"))

	if _, err := bgstrip.Process(path, "", 240); err == nil {
		t.Fatal("expected decode error")
	}
}
