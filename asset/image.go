// Package asset loads the background art off the game goroutine and exposes it
// as terminal-sized half-block cells once decoding finishes
package asset

import (
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"os"
	"sync/atomic"

	"github.com/pkg/errors"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// Cell is one terminal cell of art: two stacked pixels
type Cell struct {
	Top    color.RGBA
	Bottom color.RGBA
	// Clear marks cells whose both pixels are transparent
	Clear bool
}

// alphaCutoff below which a pixel is treated as transparent
const alphaCutoff = 0x40

type frame struct {
	cells  []Cell
	width  int
	height int
}

// Image is an asynchronously loaded picture scaled to a cell box
// All methods are safe to call while loading; they report nothing until ready
type Image struct {
	path   string
	width  int
	height int

	ready atomic.Pointer[frame]
	err   atomic.Pointer[error]
	done  chan struct{}
}

// LoadImage starts decoding path in the background, scaled to width x height cells
// Never blocks; failures are logged once and leave the image permanently unready
func LoadImage(path string, width, height int) *Image {
	img := &Image{
		path:   path,
		width:  width,
		height: height,
		done:   make(chan struct{}),
	}
	go img.load()
	return img
}

// FromImage builds a ready Image from an already decoded picture
func FromImage(src image.Image, width, height int) *Image {
	img := &Image{
		width:  width,
		height: height,
		done:   make(chan struct{}),
	}
	img.ready.Store(convert(src, width, height))
	close(img.done)
	return img
}

func (img *Image) load() {
	defer close(img.done)

	src, err := decodeFile(img.path)
	if err != nil {
		img.err.Store(&err)
		log.Printf("asset: background unavailable: %v", err)
		return
	}

	img.ready.Store(convert(src, img.width, img.height))
	log.Printf("asset: loaded %s (%dx%d px) into %dx%d cells",
		img.path, src.Bounds().Dx(), src.Bounds().Dy(), img.width, img.height)
}

func decodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open image")
	}
	defer f.Close()

	src, format, err := image.Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "decode %s", path)
	}
	if src.Bounds().Empty() {
		return nil, errors.Errorf("decode %s: empty %s image", path, format)
	}
	return src, nil
}

// convert scales src to width x 2*height pixels and packs pixel pairs into cells
func convert(src image.Image, width, height int) *frame {
	if width <= 0 || height <= 0 {
		return &frame{}
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height*2))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)

	cells := make([]Cell, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			top := dst.RGBAAt(x, y*2)
			bottom := dst.RGBAAt(x, y*2+1)
			cells[y*width+x] = Cell{
				Top:    top,
				Bottom: bottom,
				Clear:  top.A < alphaCutoff && bottom.A < alphaCutoff,
			}
		}
	}

	return &frame{cells: cells, width: width, height: height}
}

// Ready reports whether decoding has finished successfully
func (img *Image) Ready() bool {
	return img.ready.Load() != nil
}

// Err returns the load error, nil while loading or on success
func (img *Image) Err() error {
	if p := img.err.Load(); p != nil {
		return *p
	}
	return nil
}

// Done is closed when loading finishes either way
func (img *Image) Done() <-chan struct{} {
	return img.done
}

// Cells returns the row-major cell grid, nil until ready
func (img *Image) Cells() []Cell {
	if f := img.ready.Load(); f != nil {
		return f.cells
	}
	return nil
}

// Width returns the width in cells once loaded, 0 before
func (img *Image) Width() int {
	if f := img.ready.Load(); f != nil {
		return f.width
	}
	return 0
}

// Height returns the height in cells once loaded, 0 before
func (img *Image) Height() int {
	if f := img.ready.Load(); f != nil {
		return f.height
	}
	return 0
}
