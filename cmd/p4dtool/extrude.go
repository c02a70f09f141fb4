package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Faultbox/polytope4d/internal/project"
)

func newExtrudeCmd() *cobra.Command {
	var offset, output string
	cmd := &cobra.Command{
		Use:   "extrude <file.4dp>",
		Short: "Extrude a whole polytope along a 4D offset",
		Long: `Duplicate every vertex and edge, join each vertex to its copy and move
the copies by --offset. Extruding a cube along W gives a tesseract.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			delta, err := parseVec4(offset)
			if err != nil {
				return err
			}
			m, err := project.Open(args[0])
			if err != nil {
				return err
			}

			m.SelectAll()
			n := m.Extrude()
			m.Translate(delta)
			m.ClearSelection()

			if output == "" {
				output = args[0]
			}
			path, err := project.Save(output, m)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Extruded %d vertices into %s (%d vertices, %d edges)\n",
				n, path, len(m.Vertices), len(m.Edges))
			return nil
		},
	}
	cmd.Flags().StringVar(&offset, "offset", "0,0,0,1", "Offset of the copy as x,y,z,w")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default: overwrite input)")
	return cmd
}
