// Package frame loads input images as packed RGBA pixel grids.
// Any source color model is normalized to NRGBA before the layout engine
// sees it, so images without an alpha channel come out fully opaque.
package frame

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"os"

	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
)

// Frame is one rectangular grid of pixels in row-major order.
type Frame struct {
	Width  int
	Height int
	Pix    []color.NRGBA
}

// FromImage copies img into a packed row-major NRGBA buffer.
func FromImage(img image.Image) *Frame {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)

	pix := make([]color.NRGBA, w*h)
	for y := 0; y < h; y++ {
		row := dst.Pix[y*dst.Stride : y*dst.Stride+w*4]
		for x := 0; x < w; x++ {
			pix[y*w+x] = color.NRGBA{
				R: row[x*4],
				G: row[x*4+1],
				B: row[x*4+2],
				A: row[x*4+3],
			}
		}
	}
	return &Frame{Width: w, Height: h, Pix: pix}
}

// Load decodes one image file. PNG, JPEG and BMP are supported.
func Load(path string) (*Frame, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening image %s: %w", path, err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("decoding image %s: %w", path, err)
	}
	f := FromImage(img)
	if f.Pixels() < 1 {
		return nil, fmt.Errorf("image %s has no pixels", path)
	}
	return f, nil
}

// LoadSequence decodes an ordered list of frame files and checks that every
// frame shares the first frame's dimensions. progress may be nil.
func LoadSequence(paths []string, progress func(done, total int)) ([]*Frame, error) {
	if len(paths) == 0 {
		return nil, fmt.Errorf("no frame files")
	}
	frames := make([]*Frame, 0, len(paths))
	for i, path := range paths {
		f, err := Load(path)
		if err != nil {
			return nil, err
		}
		if i > 0 && (f.Width != frames[0].Width || f.Height != frames[0].Height) {
			return nil, fmt.Errorf("frame %d (%s): size %dx%d does not match first frame %dx%d",
				i+1, path, f.Width, f.Height, frames[0].Width, frames[0].Height)
		}
		frames = append(frames, f)
		if progress != nil {
			progress(i+1, len(paths))
		}
	}
	return frames, nil
}

// At returns the pixel at row-major position i.
func (f *Frame) At(i int) color.NRGBA {
	return f.Pix[i]
}

func (f *Frame) Pixels() int {
	return f.Width * f.Height
}
