package image

import (
	"bytes"
	stdimage "image"
	"image/color"
	"image/png"
	"testing"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name    string
		want    Format
		wantErr bool
	}{
		{"png", PNG, false},
		{".PNG", PNG, false},
		{"bmp", BMP, false},
		{"tif", TIFF, false},
		{"tiff", TIFF, false},
		{"jpeg", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.name)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseFormat(%q): error %v, wantErr %v", tt.name, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseFormat(%q): got %v, want %v", tt.name, got, tt.want)
		}
	}
}

func testFrame() *stdimage.RGBA {
	b := NewPixelBuffer(0)
	pix, _ := b.Frame(3, 2)
	for i := 0; i < len(pix); i += BytesPerPixel {
		pix[i], pix[i+1], pix[i+2], pix[i+3] = byte(i*10), 100, byte(255-i), 255
	}
	return b.RGBA()
}

func TestEncode_RoundTrip(t *testing.T) {
	src := testFrame()

	decoders := map[Format]func(*bytes.Buffer) (stdimage.Image, error){
		PNG:  func(b *bytes.Buffer) (stdimage.Image, error) { return png.Decode(b) },
		BMP:  func(b *bytes.Buffer) (stdimage.Image, error) { return bmp.Decode(b) },
		TIFF: func(b *bytes.Buffer) (stdimage.Image, error) { return tiff.Decode(b) },
	}

	for f, decode := range decoders {
		var buf bytes.Buffer
		if err := Encode(&buf, src, f); err != nil {
			t.Fatalf("Encode %v: %v", f, err)
		}
		got, err := decode(&buf)
		if err != nil {
			t.Fatalf("decode %v: %v", f, err)
		}
		if got.Bounds() != src.Bounds() {
			t.Errorf("%v bounds: got %v, want %v", f, got.Bounds(), src.Bounds())
			continue
		}
		for y := 0; y < 2; y++ {
			for x := 0; x < 3; x++ {
				want := src.RGBAAt(x, y)
				c := color.RGBAModel.Convert(got.At(x, y)).(color.RGBA)
				if c != want {
					t.Errorf("%v pixel (%d,%d): got %v, want %v", f, x, y, c, want)
				}
			}
		}
	}

	if err := Encode(&bytes.Buffer{}, src, Format(42)); err == nil {
		t.Error("Encode unknown format: expected error")
	}
}

func TestDownsample(t *testing.T) {
	src := stdimage.NewRGBA(stdimage.Rect(0, 0, 8, 8))
	for i := range src.Pix {
		src.Pix[i] = 200
	}

	dst := Downsample(src, 4, 4)
	if dst.Bounds().Dx() != 4 || dst.Bounds().Dy() != 4 {
		t.Fatalf("Downsample bounds: got %v, want 4x4", dst.Bounds())
	}
	// A uniform image stays uniform.
	for i, v := range dst.Pix {
		if v < 199 || v > 201 {
			t.Errorf("Pix[%d]: got %d, want ~200", i, v)
			break
		}
	}

	if empty := Downsample(src, 0, 4); !empty.Bounds().Empty() {
		t.Errorf("Downsample to 0 width: got %v", empty.Bounds())
	}
}
