package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/memmaker/meshify/engine/export"
	"github.com/memmaker/meshify/engine/mask"
	"github.com/memmaker/meshify/engine/region"
	"github.com/memmaker/meshify/engine/util"
	"github.com/pkg/errors"
)

type Options struct {
	Input       string
	Scale       int
	VertexScale int
	GLBFile     string
	NBTFile     string
	PreviewFile string
	Wireframe   bool
	ASCII       bool
	Indexed     bool
	Verify      bool
	Seed        int64
}

// Run loads the source image, decomposes it once and writes every requested output.
func Run(options Options, stdout io.Writer) (region.Result, error) {
	options.Scale = util.ClampInt(options.Scale, 1, 100)
	options.VertexScale = util.ClampInt(options.VertexScale, 1, 100)
	if options.Seed == 0 {
		options.Seed = time.Now().UnixNano()
	}

	source, err := mask.LoadImage(options.Input)
	if err != nil {
		return region.Result{}, err
	}
	decomposer := region.NewDecomposer(region.RandomColors(rand.New(rand.NewSource(options.Seed))))
	result := decomposer.Analyze(source)
	util.LogSystemInfo(fmt.Sprintf("[Run] %s: %d regions, %d tris, %d pixel count", options.Input, len(result.Regions), result.TriangleCount(), result.PixelCount))

	if options.GLBFile != "" && len(result.Regions) == 0 {
		util.LogExportWarning(fmt.Sprintf("[Run] %s has no opaque pixels, skipping %s", options.Input, options.GLBFile))
	} else if options.GLBFile != "" {
		drawMode := region.Flat
		if options.Indexed {
			drawMode = region.Indexed
		}
		mesh := region.NewMeshBuffer(drawMode, float32(options.VertexScale))
		mesh.AppendRegions(result.Regions)
		if err := writeFile(options.GLBFile, func(w io.Writer) error {
			return export.WriteGLB(w, mesh, options.Input)
		}); err != nil {
			return result, err
		}
		if options.Verify {
			if err := verifyGLB(options.GLBFile, result.TriangleCount()); err != nil {
				return result, err
			}
		}
	}
	if options.NBTFile != "" {
		if err := writeFile(options.NBTFile, func(w io.Writer) error {
			return export.WriteNBT(w, result, source.Width(), source.Height())
		}); err != nil {
			return result, err
		}
	}
	if options.PreviewFile != "" {
		preview := export.RenderPreview(result, source.Width(), source.Height(), options.Scale, options.Wireframe)
		if err := writeFile(options.PreviewFile, func(w io.Writer) error {
			return export.WritePNG(w, preview)
		}); err != nil {
			return result, err
		}
	}
	if options.ASCII {
		maxCols := 0
		if f, ok := stdout.(*os.File); ok {
			maxCols = export.TerminalWidth(int(f.Fd()))
		}
		if err := export.WriteASCII(stdout, result, source.Width(), source.Height(), maxCols); err != nil {
			return result, err
		}
	}
	return result, nil
}

func writeFile(filename string, write func(w io.Writer) error) error {
	file, err := os.Create(filename)
	if err != nil {
		return errors.Wrapf(err, "creating %s", filename)
	}
	if err := write(file); err != nil {
		file.Close()
		return errors.Wrap(err, filename)
	}
	if err := file.Close(); err != nil {
		return errors.Wrapf(err, "closing %s", filename)
	}
	util.LogIOInfo(fmt.Sprintf("[Run] wrote %s", filename))
	return nil
}

func verifyGLB(filename string, expectedTriangles int) error {
	file, err := os.Open(filename)
	if err != nil {
		return errors.Wrapf(err, "opening %s", filename)
	}
	defer file.Close()
	triangles, err := export.ReadGLBTriangles(file)
	if err != nil {
		return errors.Wrap(err, filename)
	}
	if len(triangles) != expectedTriangles {
		return errors.Errorf("%s: expected %d triangles, found %d", filename, expectedTriangles, len(triangles))
	}
	return nil
}
