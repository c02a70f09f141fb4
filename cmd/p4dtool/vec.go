package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Faultbox/polytope4d/pkg/math"
)

// parseVec4 reads "x,y,z,w".
func parseVec4(s string) (math.Vec4, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return math.Vec4{}, fmt.Errorf("vector %q: want 4 comma-separated values", s)
	}
	var c [4]float64
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return math.Vec4{}, fmt.Errorf("vector %q: %w", s, err)
		}
		c[i] = f
	}
	return math.Vec4{X: c[0], Y: c[1], Z: c[2], W: c[3]}, nil
}
