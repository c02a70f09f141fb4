package mesh

import "github.com/Faultbox/polytope4d/pkg/math"

// Tesseract returns the unit hypercube: 16 vertices at (±1, ±1, ±1, ±1) and
// 32 edges joining vertices that differ in exactly one coordinate.
//
// Vertex i has bit 3 of i mapped to X, bit 2 to Y, bit 1 to Z and bit 0 to W,
// with a clear bit meaning -1.
func Tesseract() *Mesh {
	points := make([]math.Vec4, 16)
	for i := range points {
		points[i] = math.Vec4{
			X: sign(i & 8),
			Y: sign(i & 4),
			Z: sign(i & 2),
			W: sign(i & 1),
		}
	}

	// Ascending by first endpoint, then second.
	edges := make([][2]int, 0, 32)
	for i := range 16 {
		for _, bit := range []int{1, 2, 4, 8} {
			if j := i | bit; j != i {
				edges = append(edges, [2]int{i, j})
			}
		}
	}
	return FromPoints("Tesseract", points, edges)
}

func sign(bit int) float64 {
	if bit == 0 {
		return -1
	}
	return 1
}
