package export

import (
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/memmaker/meshify/engine/region"
	"github.com/pkg/errors"
	"golang.org/x/image/draw"
)

var WireframeColor = color.NRGBA{R: 255, G: 255, B: 255, A: 255}

// RenderPreview paints every region cell in its region color on a
// transparent width x height canvas and scales it up by scale. With
// wireframe set, the shared diagonal of each region quad is drawn on top.
func RenderPreview(result region.Result, width, height, scale int, wireframe bool) *image.NRGBA {
	if scale < 1 {
		scale = 1
	}
	canvas := image.NewNRGBA(image.Rect(0, 0, width, height))
	for _, r := range result.Regions {
		c := r.NRGBA()
		for _, cell := range r.Cells() {
			canvas.SetNRGBA(cell.X, cell.Y, c)
		}
	}
	if scale == 1 && !wireframe {
		return canvas
	}

	scaled := image.NewNRGBA(image.Rect(0, 0, width*scale, height*scale))
	draw.NearestNeighbor.Scale(scaled, scaled.Bounds(), canvas, canvas.Bounds(), draw.Src, nil)
	if wireframe {
		half := scale / 2
		for _, r := range result.Regions {
			diagonal := r.Diagonal()
			from := image.Pt(int(diagonal[0].X())*scale+half, int(diagonal[0].Y())*scale+half)
			to := image.Pt(int(diagonal[1].X())*scale+half, int(diagonal[1].Y())*scale+half)
			drawLine(scaled, from, to, WireframeColor)
		}
	}
	return scaled
}

func WritePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return errors.Wrap(err, "encoding png")
	}
	return nil
}

// drawLine steps along the major axis one pixel at a time.
func drawLine(img *image.NRGBA, from, to image.Point, c color.NRGBA) {
	dx, dy := to.X-from.X, to.Y-from.Y
	steps := max(abs(dx), abs(dy))
	if steps == 0 {
		img.SetNRGBA(from.X, from.Y, c)
		return
	}
	for i := 0; i <= steps; i++ {
		x := from.X + (dx*i+sign(dx)*steps/2)/steps
		y := from.Y + (dy*i+sign(dy)*steps/2)/steps
		img.SetNRGBA(x, y, c)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}
