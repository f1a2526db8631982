package mask

import (
	"fmt"
	"image"
	"image/color"

	"github.com/memmaker/meshify/engine/util"
	"github.com/pkg/errors"
)

// AlphaSource is a read-only per-pixel alpha sampler with values in [0,1].
type AlphaSource interface {
	Width() int
	Height() int
	Alpha(x, y int) float32
}

// ImageSource samples the alpha channel of a top-origin image.Image.
type ImageSource struct {
	Image image.Image
}

func (s ImageSource) Width() int { return s.Image.Bounds().Dx() }

func (s ImageSource) Height() int { return s.Image.Bounds().Dy() }

func (s ImageSource) Alpha(x, y int) float32 {
	bounds := s.Image.Bounds()
	c := color.NRGBAModel.Convert(s.Image.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
	return float32(c.A) / 255.0
}

// NewMaskFromAlpha samples every pixel of src once. A cell is opaque only if
// its alpha is exactly 1. With flipY the source is treated as bottom-origin,
// so mask row y reads source row height-1-y.
func NewMaskFromAlpha(src AlphaSource, flipY bool) (*Mask, error) {
	width, height := src.Width(), src.Height()
	if width <= 0 || height <= 0 {
		return nil, errors.Wrapf(ErrDimensions, "source is %dx%d", width, height)
	}
	m := NewMask(width, height)
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			sourceY := y
			if flipY {
				sourceY = height - 1 - y
			}
			m.opaque[m.index(x, y)] = src.Alpha(x, sourceY) == 1
		}
	}
	util.LogMaskDebug(fmt.Sprintf("[Mask] sampled %dx%d source, %d opaque cells", width, height, m.OpaqueCount()))
	return m, nil
}

// NewMaskFromImage builds a mask from a decoded image. image.Image rows
// already start at the top scanline, so no flip is applied.
func NewMaskFromImage(img image.Image) (*Mask, error) {
	return NewMaskFromAlpha(ImageSource{Image: img}, false)
}
