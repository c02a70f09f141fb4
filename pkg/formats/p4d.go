// Package formats encodes and decodes the .4dp polytope file format.
package formats

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/Faultbox/polytope4d/pkg/math"
)

// P4D format errors.
var (
	ErrInvalidP4DMagic  = errors.New("invalid 4DP magic: expected 'MMMMMMMM'")
	ErrTruncatedP4DData = errors.New("truncated 4DP data")
	ErrTrailingP4DData  = errors.New("trailing bytes after 4DP records")
	ErrInvalidP4DIndex  = errors.New("4DP record references a missing element")
)

// P4DMagic is the 8-byte file signature (0x4d repeated).
const P4DMagic = "MMMMMMMM"

// Record widths in bytes. Every field is 8 bytes, big-endian.
const (
	p4dHeaderSize = 8 + 4*8
	p4dVertexSize = 4 * 8
	p4dEdgeSize   = 2 * 8
	p4dFaceSize   = 6 * 8
	p4dCellSize   = 14 * 8
)

// P4DFace is a triangle record: three vertex and three edge indices.
type P4DFace struct {
	Vertices [3]uint64
	Edges    [3]uint64
}

// P4DCell is a tetrahedron record: four vertices, six edges, four faces.
type P4DCell struct {
	Vertices [4]uint64
	Edges    [6]uint64
	Faces    [4]uint64
}

// P4D is the decoded content of a .4dp file.
type P4D struct {
	Vertices []math.Vec4
	Edges    [][2]uint64
	Faces    []P4DFace
	Cells    []P4DCell
}

// ParseP4D parses a 4DP file from raw bytes.
func ParseP4D(data []byte) (*P4D, error) {
	if len(data) < len(P4DMagic) || string(data[:len(P4DMagic)]) != P4DMagic {
		return nil, ErrInvalidP4DMagic
	}
	if len(data) < p4dHeaderSize {
		return nil, fmt.Errorf("%w: reading counts", ErrTruncatedP4DData)
	}

	r := bytes.NewReader(data[len(P4DMagic):])

	var counts [4]uint64
	if err := binary.Read(r, binary.BigEndian, &counts); err != nil {
		return nil, fmt.Errorf("%w: reading counts", ErrTruncatedP4DData)
	}

	// Reject impossible counts before allocating anything.
	remaining := uint64(r.Len())
	for i, size := range []uint64{p4dVertexSize, p4dEdgeSize, p4dFaceSize, p4dCellSize} {
		if counts[i] > remaining/size {
			return nil, fmt.Errorf("%w: %d records of %d bytes declared", ErrTruncatedP4DData, counts[i], size)
		}
		remaining -= counts[i] * size
	}
	if remaining != 0 {
		return nil, fmt.Errorf("%w: %d bytes", ErrTrailingP4DData, remaining)
	}

	p := &P4D{
		Vertices: make([]math.Vec4, counts[0]),
		Edges:    make([][2]uint64, counts[1]),
		Faces:    make([]P4DFace, counts[2]),
		Cells:    make([]P4DCell, counts[3]),
	}

	for i := range p.Vertices {
		var xyzw [4]float64
		if err := binary.Read(r, binary.BigEndian, &xyzw); err != nil {
			return nil, fmt.Errorf("%w: reading vertex %d", ErrTruncatedP4DData, i)
		}
		p.Vertices[i] = math.Vec4{X: xyzw[0], Y: xyzw[1], Z: xyzw[2], W: xyzw[3]}
	}
	for i := range p.Edges {
		if err := binary.Read(r, binary.BigEndian, &p.Edges[i]); err != nil {
			return nil, fmt.Errorf("%w: reading edge %d", ErrTruncatedP4DData, i)
		}
	}
	for i := range p.Faces {
		if err := binary.Read(r, binary.BigEndian, &p.Faces[i]); err != nil {
			return nil, fmt.Errorf("%w: reading face %d", ErrTruncatedP4DData, i)
		}
	}
	for i := range p.Cells {
		if err := binary.Read(r, binary.BigEndian, &p.Cells[i]); err != nil {
			return nil, fmt.Errorf("%w: reading cell %d", ErrTruncatedP4DData, i)
		}
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// ParseP4DFile parses a 4DP file from disk.
func ParseP4DFile(path string) (*P4D, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading 4DP file: %w", err)
	}
	return ParseP4D(data)
}

// Validate checks that every index refers to an existing element and that
// no edge connects a vertex to itself.
func (p *P4D) Validate() error {
	nv, ne, nf := uint64(len(p.Vertices)), uint64(len(p.Edges)), uint64(len(p.Faces))

	for i, e := range p.Edges {
		if e[0] >= nv || e[1] >= nv || e[0] == e[1] {
			return fmt.Errorf("%w: edge %d (%d, %d)", ErrInvalidP4DIndex, i, e[0], e[1])
		}
	}
	for i, f := range p.Faces {
		if !below(f.Vertices[:], nv) || !below(f.Edges[:], ne) {
			return fmt.Errorf("%w: face %d", ErrInvalidP4DIndex, i)
		}
	}
	for i, c := range p.Cells {
		if !below(c.Vertices[:], nv) || !below(c.Edges[:], ne) || !below(c.Faces[:], nf) {
			return fmt.Errorf("%w: cell %d", ErrInvalidP4DIndex, i)
		}
	}
	return nil
}

func below(indices []uint64, n uint64) bool {
	for _, i := range indices {
		if i >= n {
			return false
		}
	}
	return true
}

// Size returns the encoded size in bytes.
func (p *P4D) Size() int {
	return p4dHeaderSize +
		len(p.Vertices)*p4dVertexSize +
		len(p.Edges)*p4dEdgeSize +
		len(p.Faces)*p4dFaceSize +
		len(p.Cells)*p4dCellSize
}

// WriteTo encodes p to w.
func (p *P4D) WriteTo(w io.Writer) (int64, error) {
	buf := bytes.NewBuffer(make([]byte, 0, p.Size()))
	buf.WriteString(P4DMagic)

	// bytes.Buffer writes never fail, so binary.Write errors can be ignored here.
	counts := [4]uint64{uint64(len(p.Vertices)), uint64(len(p.Edges)), uint64(len(p.Faces)), uint64(len(p.Cells))}
	_ = binary.Write(buf, binary.BigEndian, counts)
	for _, v := range p.Vertices {
		_ = binary.Write(buf, binary.BigEndian, [4]float64{v.X, v.Y, v.Z, v.W})
	}
	for _, e := range p.Edges {
		_ = binary.Write(buf, binary.BigEndian, e)
	}
	for _, f := range p.Faces {
		_ = binary.Write(buf, binary.BigEndian, f)
	}
	for _, c := range p.Cells {
		_ = binary.Write(buf, binary.BigEndian, c)
	}

	return buf.WriteTo(w)
}

// Marshal returns the encoded file contents.
func (p *P4D) Marshal() []byte {
	var buf bytes.Buffer
	_, _ = p.WriteTo(&buf)
	return buf.Bytes()
}

// WriteP4DFile encodes p and writes it to path.
func WriteP4DFile(path string, p *P4D) error {
	if err := os.WriteFile(path, p.Marshal(), 0644); err != nil {
		return fmt.Errorf("writing 4DP file: %w", err)
	}
	return nil
}
