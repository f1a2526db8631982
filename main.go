package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/memmaker/meshify/engine/util"
)

func main() {
	var options Options
	flag.StringVar(&options.Input, "in", "", "source image (png, jpeg, gif, bmp, tiff, webp)")
	flag.IntVar(&options.Scale, "scale", 1, "preview pixel scale (1-100)")
	flag.IntVar(&options.VertexScale, "vertex-scale", 1, "mesh vertex scale (1-100)")
	flag.StringVar(&options.GLBFile, "glb", "", "write the quad mesh as binary glTF")
	flag.StringVar(&options.NBTFile, "nbt", "", "write the region list as gzip NBT")
	flag.StringVar(&options.PreviewFile, "preview", "", "write a PNG with every region in its color")
	flag.BoolVar(&options.Wireframe, "wireframe", false, "draw the quad diagonals into the preview")
	flag.BoolVar(&options.ASCII, "ascii", false, "print the partition to stdout")
	flag.BoolVar(&options.Indexed, "indexed", false, "share vertices inside each quad")
	flag.BoolVar(&options.Verify, "verify", false, "read the written glb back and check its triangle count")
	flag.Int64Var(&options.Seed, "seed", 0, "region color seed, 0 picks one from the clock")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	if *verbose {
		util.GLOBAL_LOG_LEVEL = util.LogLevelDebug
	}
	if options.Input == "" {
		fmt.Fprintln(os.Stderr, "meshify: -in is required")
		flag.Usage()
		os.Exit(2)
	}

	summary, err := Run(options, os.Stdout)
	if err != nil {
		util.LogIOError(err.Error())
		os.Exit(1)
	}
	fmt.Printf("%d tris\n %d pixel count\n", summary.TriangleCount(), summary.PixelCount)
}
