package game

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/gonewx/carousel/pkg/embedded"
)

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.SetRGBA(0, 0, color.RGBA{R: 255, A: 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("failed to encode png: %v", err)
	}
	return buf.Bytes()
}

// TestDecodeSlideImage_Fallback 测试图片格式回退顺序
func TestDecodeSlideImage_Fallback(t *testing.T) {
	embedded.Init(fstest.MapFS{
		// webp 文件损坏，应回退到 png
		"data/slides/a.webp": {Data: []byte("not a webp")},
		"data/slides/a.png":  {Data: encodePNG(t, 4, 3)},
		"data/slides/b.png":  {Data: encodePNG(t, 2, 2)},
		// 没有 avif 解码器，avif 文件不参与回退
		"data/slides/d.avif": {Data: []byte("ftypavif")},
		"data/slides/d.jpg":  {Data: []byte("not a jpeg")},
	})
	defer embedded.Init(nil)

	tests := []struct {
		name     string
		base     string
		wantPath string
		wantW    int
		wantErr  bool
	}{
		{"损坏的 webp 回退到 png", "data/slides/a", "data/slides/a.png", 4, false},
		{"只有 png", "data/slides/b", "data/slides/b.png", 2, false},
		{"全部缺失", "data/slides/c", "", 0, true},
		{"只有 avif 与损坏的 jpg", "data/slides/d", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, path, err := DecodeSlideImage(tt.base)
			if tt.wantErr {
				if err == nil {
					t.Fatal("Expected error")
				}
				if !strings.Contains(err.Error(), tt.base) {
					t.Errorf("Error should mention %s: %v", tt.base, err)
				}
				if strings.Contains(err.Error(), ".avif") {
					t.Errorf("AVIF should not be attempted: %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if path != tt.wantPath {
				t.Errorf("path = %s, expected %s", path, tt.wantPath)
			}
			if img.Bounds().Dx() != tt.wantW {
				t.Errorf("width = %d, expected %d", img.Bounds().Dx(), tt.wantW)
			}
		})
	}
}

// TestSlideImageExtensions 回退顺序为 webp → png → jpg
func TestSlideImageExtensions(t *testing.T) {
	want := []string{".webp", ".png", ".jpg"}
	if len(SlideImageExtensions) != len(want) {
		t.Fatalf("SlideImageExtensions = %v, expected %v", SlideImageExtensions, want)
	}
	for i, ext := range want {
		if SlideImageExtensions[i] != ext {
			t.Errorf("SlideImageExtensions[%d] = %s, expected %s", i, SlideImageExtensions[i], ext)
		}
	}
}

// TestPlaceholderImage 测试占位图生成
func TestPlaceholderImage(t *testing.T) {
	img := PlaceholderImage(2, 10, 5)
	if img.Bounds().Dx() != 10 || img.Bounds().Dy() != 5 {
		t.Fatalf("Unexpected bounds: %v", img.Bounds())
	}

	top := color.RGBAModel.Convert(img.At(0, 0)).(color.RGBA)
	bottom := color.RGBAModel.Convert(img.At(9, 4)).(color.RGBA)
	if top != placeholderPalette[2][0] || bottom != placeholderPalette[2][1] {
		t.Errorf("Gradient endpoints mismatch: top=%v bottom=%v", top, bottom)
	}

	// 索引按调色板长度取模，负数同样有效
	a := color.RGBAModel.Convert(PlaceholderImage(7, 1, 1).At(0, 0))
	b := color.RGBAModel.Convert(PlaceholderImage(-3, 1, 1).At(0, 0))
	if a != b {
		t.Errorf("Index 7 and -3 should share a palette entry: %v vs %v", a, b)
	}
}
