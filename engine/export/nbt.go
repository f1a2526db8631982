package export

import (
	"compress/gzip"
	"fmt"
	"io"

	"github.com/Tnze/go-mc/nbt"
	"github.com/memmaker/meshify/engine/region"
	"github.com/memmaker/meshify/engine/util"
	"github.com/pkg/errors"
)

/*
	TAG_Compound("meshify", {
	    "width":  TAG_Int(),
	    "height": TAG_Int(),
	    "pixel_count": TAG_Int(),
	    "regions": TAG_List([
	        TAG_Compound({
	            "x": TAG_Int(), "y": TAG_Int(),
	            "w": TAG_Int(), "h": TAG_Int(),
	            "color": TAG_Byte_Array(r, g, b, a)
	        })
	        ...
	    ])
	})
*/
type RegionArchive struct {
	Width      int32          `nbt:"width"`
	Height     int32          `nbt:"height"`
	PixelCount int32          `nbt:"pixel_count"`
	Regions    []RegionRecord `nbt:"regions"`
}

type RegionRecord struct {
	X     int32  `nbt:"x"`
	Y     int32  `nbt:"y"`
	W     int32  `nbt:"w"`
	H     int32  `nbt:"h"`
	Color []byte `nbt:"color"`
}

const archiveTagName = "meshify"

func NewRegionArchive(result region.Result, width, height int) RegionArchive {
	archive := RegionArchive{
		Width:      int32(width),
		Height:     int32(height),
		PixelCount: int32(result.PixelCount),
		Regions:    make([]RegionRecord, 0, len(result.Regions)),
	}
	for _, r := range result.Regions {
		topLeft := r.Corners().TopLeft
		color := r.NRGBA()
		archive.Regions = append(archive.Regions, RegionRecord{
			X:     int32(topLeft.X),
			Y:     int32(topLeft.Y),
			W:     int32(r.Width()),
			H:     int32(r.Range()),
			Color: []byte{color.R, color.G, color.B, color.A},
		})
	}
	return archive
}

// WriteNBT stores the decomposition as a gzip compressed NBT compound.
func WriteNBT(w io.Writer, result region.Result, width, height int) error {
	archive := NewRegionArchive(result, width, height)
	gz := gzip.NewWriter(w)
	if err := nbt.NewEncoder(gz).Encode(archive, archiveTagName); err != nil {
		gz.Close()
		return errors.Wrap(err, "encoding nbt")
	}
	if err := gz.Close(); err != nil {
		return errors.Wrap(err, "flushing gzip")
	}
	util.LogExportInfo(fmt.Sprintf("[WriteNBT] %d regions", len(archive.Regions)))
	return nil
}

func ReadNBT(r io.Reader) (RegionArchive, error) {
	var archive RegionArchive
	gz, err := gzip.NewReader(r)
	if err != nil {
		return archive, errors.Wrap(err, "opening gzip")
	}
	defer gz.Close()
	tagName, err := nbt.NewDecoder(gz).Decode(&archive)
	if err != nil {
		return archive, errors.Wrap(err, "decoding nbt")
	}
	if tagName != archiveTagName {
		return archive, errors.Errorf("export: unexpected root tag %q", tagName)
	}
	return archive, nil
}

// CellCount sums the cells covered by all records.
func (a RegionArchive) CellCount() int {
	total := 0
	for _, r := range a.Regions {
		total += int(r.W * r.H)
	}
	return total
}
