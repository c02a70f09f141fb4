package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Faultbox/polytope4d/internal/project"
	"github.com/Faultbox/polytope4d/pkg/math"
)

func newProjectCmd() *cobra.Command {
	var (
		angle         math.Angle
		distance      float64
		width, height int
	)
	cmd := &cobra.Command{
		Use:   "project <file.4dp>",
		Short: "Print the screen projection of every vertex",
		Long: `Rotate the polytope by the given plane angles (radians, applied in the
order XY, XZ, XW, YZ, YW, ZW) and print each vertex's screen position for a
viewport of the given size. Vertices on the camera plane print as "-".`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := project.Open(args[0])
			if err != nil {
				return err
			}
			p := math.NewProjector(distance, float64(width), float64(height))
			out := cmd.OutOrStdout()
			for i, v := range m.Vertices {
				if s, ok := p.Project(v.Vec4, angle); ok {
					fmt.Fprintf(out, "%d\t%.3f\t%.3f\n", i, s.X, s.Y)
				} else {
					fmt.Fprintf(out, "%d\t-\n", i)
				}
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.Float64Var(&angle.XY, "xy", 0, "XY plane angle")
	f.Float64Var(&angle.XZ, "xz", 0, "XZ plane angle")
	f.Float64Var(&angle.XW, "xw", 0, "XW plane angle")
	f.Float64Var(&angle.YZ, "yz", 0, "YZ plane angle")
	f.Float64Var(&angle.YW, "yw", 0, "YW plane angle")
	f.Float64Var(&angle.ZW, "zw", 0, "ZW plane angle")
	f.Float64VarP(&distance, "distance", "d", 5, "Camera distance")
	f.IntVar(&width, "width", 800, "Viewport width")
	f.IntVar(&height, "height", 600, "Viewport height")
	return cmd
}
