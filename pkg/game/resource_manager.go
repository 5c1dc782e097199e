package game

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"log"

	"github.com/gonewx/carousel/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	_ "golang.org/x/image/webp" // Register WebP decoder
)

// SlideImageExtensions is the format fallback order for slide images.
// The first file that exists and decodes wins. AVIF is not in the chain
// because no decoder is registered for it.
var SlideImageExtensions = []string{".webp", ".png", ".jpg"}

// ResourceManager is responsible for centralized management of carousel resources.
// It provides loading and caching for slide images and the title font face,
// ensuring that resources are loaded only once and reused across recycled slides.
//
// Thread Safety Note:
// This implementation is NOT thread-safe. The internal caches use standard Go maps.
// For the single-threaded ebiten game loop, no synchronization is needed.
type ResourceManager struct {
	imageCache    map[string]*ebiten.Image    // imageBase -> Image
	fontFaceCache map[float64]*text.GoTextFace // size -> face
	fontSource    *text.GoTextFaceSource
}

// NewResourceManager creates a new ResourceManager with empty caches.
func NewResourceManager() *ResourceManager {
	return &ResourceManager{
		imageCache:    make(map[string]*ebiten.Image),
		fontFaceCache: make(map[float64]*text.GoTextFace),
	}
}

// LoadSlideImage loads the image for a slide, trying each extension in
// SlideImageExtensions. If no file can be decoded, a generated placeholder
// card is returned instead so the carousel never renders an empty slot.
//
// Parameters:
//   - imageBase: path without extension (e.g., "data/slides/slider_img_1")
//   - index: dataset index, used to tint the placeholder
func (rm *ResourceManager) LoadSlideImage(imageBase string, index int) *ebiten.Image {
	if cached, exists := rm.imageCache[imageBase]; exists {
		return cached
	}

	img, path, err := DecodeSlideImage(imageBase)
	if err != nil {
		log.Printf("[ResourceManager] %v, using placeholder", err)
		img = PlaceholderImage(index, 320, 200)
	} else {
		log.Printf("[ResourceManager] Loaded slide image: %s", path)
	}

	ebitenImage := ebiten.NewImageFromImage(img)
	rm.imageCache[imageBase] = ebitenImage
	return ebitenImage
}

// DecodeSlideImage decodes the first available format of imageBase from the
// embedded data filesystem.
//
// Returns:
//   - the decoded image and the path it was read from
//   - an error listing every attempt if none succeeded
func DecodeSlideImage(imageBase string) (image.Image, string, error) {
	var attempts []error
	for _, ext := range SlideImageExtensions {
		path := imageBase + ext
		if !embedded.Exists(path) {
			attempts = append(attempts, fmt.Errorf("%s not found", path))
			continue
		}
		data, err := embedded.ReadFile(path)
		if err != nil {
			attempts = append(attempts, err)
			continue
		}

		img, _, err := image.Decode(bytes.NewReader(data))
		if err != nil {
			attempts = append(attempts, fmt.Errorf("failed to decode %s: %w", path, err))
			continue
		}
		return img, path, nil
	}
	return nil, "", fmt.Errorf("no usable image for %s (tried %v): %v", imageBase, SlideImageExtensions, attempts)
}

// placeholderPalette holds the gradient endpoints used for placeholder cards.
var placeholderPalette = [][2]color.RGBA{
	{{R: 0x8e, G: 0xc5, B: 0xfc, A: 0xff}, {R: 0x2b, G: 0x3a, B: 0x67, A: 0xff}}, // wind
	{{R: 0xc2, G: 0xa3, B: 0x6b, A: 0xff}, {R: 0x3d, G: 0x2b, B: 0x1f, A: 0xff}}, // earth
	{{R: 0xff, G: 0x9a, B: 0x3c, A: 0xff}, {R: 0x6b, G: 0x0f, B: 0x1a, A: 0xff}}, // fire
	{{R: 0x4f, G: 0xc3, B: 0xc9, A: 0xff}, {R: 0x0b, G: 0x2f, B: 0x4a, A: 0xff}}, // water
	{{R: 0x9d, G: 0x7c, B: 0xd8, A: 0xff}, {R: 0x14, G: 0x0f, B: 0x24, A: 0xff}}, // void
}

// PlaceholderImage generates a vertical gradient image for slides whose image
// files are missing. The palette cycles by index.
func PlaceholderImage(index, width, height int) image.Image {
	n := len(placeholderPalette)
	pair := placeholderPalette[((index%n)+n)%n]
	top, bottom := pair[0], pair[1]

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		t := 0.0
		if height > 1 {
			t = float64(y) / float64(height-1)
		}
		c := color.RGBA{
			R: lerp8(top.R, bottom.R, t),
			G: lerp8(top.G, bottom.G, t),
			B: lerp8(top.B, bottom.B, t),
			A: 0xff,
		}
		for x := 0; x < width; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func lerp8(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t + 0.5)
}

// LoadTitleFont returns the title font face at the given size.
// The bundled Go Bold typeface is used so no font file has to ship with the data.
func (rm *ResourceManager) LoadTitleFont(size float64) (*text.GoTextFace, error) {
	if cached, exists := rm.fontFaceCache[size]; exists {
		return cached, nil
	}

	if rm.fontSource == nil {
		source, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
		if err != nil {
			return nil, fmt.Errorf("failed to create title font source: %w", err)
		}
		rm.fontSource = source
	}

	face := &text.GoTextFace{
		Source:    rm.fontSource,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}
	rm.fontFaceCache[size] = face
	return face, nil
}
