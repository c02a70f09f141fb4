package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Faultbox/polytope4d/internal/engine/mesh"
	"github.com/Faultbox/polytope4d/internal/project"
)

func newTesseractCmd() *cobra.Command {
	var scale float64
	cmd := &cobra.Command{
		Use:   "tesseract <output>",
		Short: "Write a tesseract to a .4dp file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m := mesh.Tesseract()
			for i := range m.Vertices {
				m.Vertices[i].Vec4 = m.Vertices[i].Scale(scale)
			}
			path, err := project.Save(args[0], m)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%d vertices, %d edges)\n", path, len(m.Vertices), len(m.Edges))
			return nil
		},
	}
	cmd.Flags().Float64VarP(&scale, "scale", "s", 1, "Half edge length")
	return cmd
}
