package mask

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	"github.com/memmaker/meshify/engine/util"
	"github.com/pkg/errors"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// DecodeImage decodes any registered image format (PNG, JPEG, GIF, BMP, TIFF, WebP).
func DecodeImage(r io.Reader) (image.Image, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", errors.Wrap(err, "decoding image")
	}
	return img, format, nil
}

// LoadImage opens filename and decodes it into a fresh mask.
func LoadImage(filename string) (*Mask, error) {
	file, err := os.Open(filename)
	if err != nil {
		util.LogIOError(fmt.Sprintf("Error loading image: %s", err.Error()))
		return nil, errors.Wrapf(err, "opening %s", filename)
	}
	defer file.Close()

	img, format, err := DecodeImage(file)
	if err != nil {
		util.LogIOError(fmt.Sprintf("Error loading image %s: %s", filename, err.Error()))
		return nil, errors.Wrap(err, filename)
	}
	bounds := img.Bounds()
	util.LogIOInfo(fmt.Sprintf("[LoadImage] %s: %s %dx%d", filename, format, bounds.Dx(), bounds.Dy()))
	return NewMaskFromImage(img)
}
