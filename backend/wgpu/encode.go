package wgpu

import (
	"encoding/binary"
	"math"

	"golang.org/x/image/math/f32"

	"github.com/gogpu/prim"
)

// encodeVertices packs vs into the vertex buffer layout, premultiplying
// colors. The result is reused when large enough.
func encodeVertices(vs []prim.Vertex, buf []byte) []byte {
	n := len(vs) * vertexStride
	if cap(buf) < n {
		buf = make([]byte, n)
	}
	buf = buf[:n]
	for i, v := range vs {
		writeVertex(buf[i*vertexStride:], v)
	}
	return buf
}

func writeVertex(buf []byte, v prim.Vertex) {
	c := v.Color.Float32()
	binary.LittleEndian.PutUint32(buf[0:4], math.Float32bits(v.Position[0]))
	binary.LittleEndian.PutUint32(buf[4:8], math.Float32bits(v.Position[1]))
	binary.LittleEndian.PutUint32(buf[8:12], math.Float32bits(v.Position[2]))
	binary.LittleEndian.PutUint32(buf[12:16], math.Float32bits(c[0]))
	binary.LittleEndian.PutUint32(buf[16:20], math.Float32bits(c[1]))
	binary.LittleEndian.PutUint32(buf[20:24], math.Float32bits(c[2]))
	binary.LittleEndian.PutUint32(buf[24:28], math.Float32bits(c[3]))
}

// encodeMatrix packs a row-major matrix as a column-major mat4x4<f32>.
func encodeMatrix(m f32.Mat4) []byte {
	t := prim.Transpose(m)
	buf := make([]byte, uniformSize)
	for i, v := range t {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(v))
	}
	return buf
}

// alignedBytesPerRow rounds a row of width RGBA8 pixels up to the 256-byte
// alignment texture copies require.
func alignedBytesPerRow(width int) uint32 {
	const align = 256
	row := uint32(width) * 4
	return (row + align - 1) / align * align
}
