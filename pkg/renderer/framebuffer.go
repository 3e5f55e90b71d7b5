package renderer

import (
	"image"
	"image/color"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Framebuffer holds the final gamma-corrected colour of every pixel. Row 0 is
// the top of the image. Each cell is written by exactly one tile.
type Framebuffer struct {
	width  int
	height int
	pixels []core.Vec3
}

// NewFramebuffer creates a black framebuffer of the given size
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		width:  width,
		height: height,
		pixels: make([]core.Vec3, width*height),
	}
}

func (fb *Framebuffer) Width() int  { return fb.width }
func (fb *Framebuffer) Height() int { return fb.height }

// At returns the colour stored at (x, y)
func (fb *Framebuffer) At(x, y int) core.Vec3 {
	return fb.pixels[y*fb.width+x]
}

// Set stores the colour at (x, y)
func (fb *Framebuffer) Set(x, y int, c core.Vec3) {
	fb.pixels[y*fb.width+x] = c
}

// ToRGBA converts the framebuffer into an 8-bit image
func (fb *Framebuffer) ToRGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.width, fb.height))
	for y := 0; y < fb.height; y++ {
		for x := 0; x < fb.width; x++ {
			img.SetRGBA(x, y, vec3ToColor(fb.At(x, y)))
		}
	}
	return img
}

// vec3ToColor clamps an already gamma-corrected colour and rounds it into 0-255
func vec3ToColor(colorVec core.Vec3) color.RGBA {
	colorVec = colorVec.Clamp(0.0, 1.0)

	return color.RGBA{
		R: uint8(255*colorVec.X + 0.5),
		G: uint8(255*colorVec.Y + 0.5),
		B: uint8(255*colorVec.Z + 0.5),
		A: 255,
	}
}
