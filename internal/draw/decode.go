package draw

import (
	"fmt"

	"github.com/vovakirdan/wasm-arcade/internal/wire"
)

// Limits applied when decoding a stream from an untrusted guest.
const (
	MaxCommands       = 4096
	MaxVerticesPerCmd = 1 << 16
	MaxIndicesPerCmd  = 1 << 16
)

// Decode reads the command stream whose header is at addr.
// Commands may have any vertex and index count; each is copied out of guest
// memory so the result stays valid after the guest's next call.
func Decode(mem wire.Memory, addr uint32) ([]Command, error) {
	head := wire.NewView(mem, addr)
	count := head.Int32(0)
	if err := head.Err(); err != nil {
		return nil, fmt.Errorf("draw: reading command count: %w", err)
	}
	if count < 0 || count > MaxCommands {
		return nil, fmt.Errorf("draw: command count %d out of range [0, %d]", count, MaxCommands)
	}

	cmds := make([]Command, 0, count)
	off := addr + HeaderSize
	for i := int32(0); i < count; i++ {
		v := wire.NewView(mem, off)
		vertexCount := v.Int32(offVertexCount)
		indexCount := v.Int32(offIndexCount)
		if err := v.Err(); err != nil {
			return nil, fmt.Errorf("draw: command %d: %w", i, err)
		}
		if vertexCount < 0 || vertexCount > MaxVerticesPerCmd {
			return nil, fmt.Errorf("draw: command %d: vertex count %d out of range", i, vertexCount)
		}
		if indexCount < 0 || indexCount > MaxIndicesPerCmd {
			return nil, fmt.Errorf("draw: command %d: index count %d out of range", i, indexCount)
		}

		cmd := Command{
			ImageID:  v.Int32(offImageID),
			R:        v.Int32(offRed),
			G:        v.Int32(offGreen),
			B:        v.Int32(offBlue),
			A:        v.Int32(offAlpha),
			Vertices: make([]Vertex, vertexCount),
			Indices:  make([]uint32, indexCount),
		}

		voff := uint32(offVertices)
		for j := range cmd.Vertices {
			cmd.Vertices[j] = Vertex{
				X: v.Float32(voff),
				Y: v.Float32(voff + 4),
				U: v.Float32(voff + 8),
				V: v.Float32(voff + 12),
			}
			voff += vertexSize
		}
		for j := range cmd.Indices {
			cmd.Indices[j] = uint32(v.Int32(voff))
			voff += 4
		}
		if err := v.Err(); err != nil {
			return nil, fmt.Errorf("draw: command %d: %w", i, err)
		}

		cmds = append(cmds, cmd)
		off += voff
	}
	return cmds, nil
}
