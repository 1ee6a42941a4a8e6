package voxel

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"os"
	"strconv"

	"github.com/google/uuid"
)

const voxVersion = 150

// chunkWriter accumulates RIFF-style ".vox" chunks: a four-byte id,
// content size, child size, then the content bytes.
type chunkWriter struct {
	buf bytes.Buffer
}

func (c *chunkWriter) writeChunk(id string, content []byte) {
	c.buf.WriteString(id)
	binary.Write(&c.buf, binary.LittleEndian, int32(len(content)))
	binary.Write(&c.buf, binary.LittleEndian, int32(0))
	c.buf.Write(content)
}

func writeDict(buf *bytes.Buffer, kv map[string]string) {
	binary.Write(buf, binary.LittleEndian, int32(len(kv)))
	for k, v := range kv {
		binary.Write(buf, binary.LittleEndian, int32(len(k)))
		buf.WriteString(k)
		binary.Write(buf, binary.LittleEndian, int32(len(v)))
		buf.WriteString(v)
	}
}

// WriteVoxFile serializes one voxel model as a MagicaVoxel container: a
// SIZE/XYZI model pair plus a minimal scene graph giving it one group,
// one layer, and one instance. pal is the level-wide shared palette
// GeneratePalette already assigned every voxel's Index against.
func WriteVoxFile(path string, model *VoxelModel, pal *Palette) error {
	// Name-based UUIDs keyed on the model id keep re-runs byte-identical.
	groupName := uuid.NewSHA1(uuid.NameSpaceURL, []byte("voxlife/group/"+strconv.Itoa(model.ID))).String()
	instanceName := uuid.NewSHA1(uuid.NameSpaceURL, []byte("voxlife/instance/"+strconv.Itoa(model.ID))).String()

	var size bytes.Buffer
	binary.Write(&size, binary.LittleEndian, int32(model.SizeX))
	binary.Write(&size, binary.LittleEndian, int32(model.SizeY))
	binary.Write(&size, binary.LittleEndian, int32(model.SizeZ))

	var xyzi bytes.Buffer
	var voxelCount int32
	var voxelBytes bytes.Buffer
	for z := 0; z < model.SizeZ; z++ {
		for y := 0; y < model.SizeY; y++ {
			for x := 0; x < model.SizeX; x++ {
				v := model.Voxels[model.at(x, y, z)]
				if v.Material == Air {
					continue
				}
				voxelBytes.Write([]byte{byte(x), byte(y), byte(z), v.Index + 1})
				voxelCount++
			}
		}
	}
	binary.Write(&xyzi, binary.LittleEndian, voxelCount)
	xyzi.Write(voxelBytes.Bytes())

	var rgba bytes.Buffer
	for _, c := range pal.RGBA {
		rgba.Write(c[:])
	}

	// Scene graph: root transform (0) -> group (1) -> instance transform
	// (2) -> shape (3). The instance's own translation is left at the
	// origin: Teardown places the model via the scene XML's <voxbox pos>
	// attribute, so this file's internal transform has no effect on final
	// placement and carrying model.WorldPos (meters) into it would just be
	// a meaningless voxel-grid offset.
	var rootTRN bytes.Buffer
	binary.Write(&rootTRN, binary.LittleEndian, int32(0)) // node id
	writeDict(&rootTRN, nil)
	binary.Write(&rootTRN, binary.LittleEndian, int32(1))  // child node id
	binary.Write(&rootTRN, binary.LittleEndian, int32(-1)) // reserved
	binary.Write(&rootTRN, binary.LittleEndian, int32(-1)) // layer id
	binary.Write(&rootTRN, binary.LittleEndian, int32(1))  // num frames
	writeDict(&rootTRN, nil)

	var grp bytes.Buffer
	binary.Write(&grp, binary.LittleEndian, int32(1)) // node id
	writeDict(&grp, map[string]string{"_name": groupName})
	binary.Write(&grp, binary.LittleEndian, int32(1)) // num children
	binary.Write(&grp, binary.LittleEndian, int32(2)) // child node id

	var instTRN bytes.Buffer
	binary.Write(&instTRN, binary.LittleEndian, int32(2)) // node id
	writeDict(&instTRN, nil)
	binary.Write(&instTRN, binary.LittleEndian, int32(3)) // child node id
	binary.Write(&instTRN, binary.LittleEndian, int32(-1))
	binary.Write(&instTRN, binary.LittleEndian, int32(0)) // layer id
	binary.Write(&instTRN, binary.LittleEndian, int32(1)) // num frames
	writeDict(&instTRN, nil)

	var shp bytes.Buffer
	binary.Write(&shp, binary.LittleEndian, int32(3)) // node id
	writeDict(&shp, map[string]string{"_name": instanceName})
	binary.Write(&shp, binary.LittleEndian, int32(1)) // num models
	binary.Write(&shp, binary.LittleEndian, int32(0)) // model id
	writeDict(&shp, nil)

	var layr bytes.Buffer
	binary.Write(&layr, binary.LittleEndian, int32(0)) // layer id
	writeDict(&layr, map[string]string{"_name": "layer-" + groupName})
	binary.Write(&layr, binary.LittleEndian, int32(-1)) // reserved

	main := &chunkWriter{}
	main.writeChunk("SIZE", size.Bytes())
	main.writeChunk("XYZI", xyzi.Bytes())
	main.writeChunk("nTRN", rootTRN.Bytes())
	main.writeChunk("nGRP", grp.Bytes())
	main.writeChunk("nTRN", instTRN.Bytes())
	main.writeChunk("nSHP", shp.Bytes())
	main.writeChunk("LAYR", layr.Bytes())
	main.writeChunk("RGBA", rgba.Bytes())

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("voxel: creating %q: %w", path, err)
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	w.WriteString("VOX ")
	binary.Write(w, binary.LittleEndian, int32(voxVersion))
	w.WriteString("MAIN")
	binary.Write(w, binary.LittleEndian, int32(0))
	binary.Write(w, binary.LittleEndian, int32(main.buf.Len()))
	w.Write(main.buf.Bytes())

	return w.Flush()
}
