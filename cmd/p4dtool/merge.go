package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Faultbox/polytope4d/internal/engine/mesh"
	"github.com/Faultbox/polytope4d/internal/project"
)

func newMergeCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "merge <file.4dp>...",
		Short: "Combine several .4dp files into one",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			meshes := make([]*mesh.Mesh, 0, len(args))
			for _, a := range args {
				m, err := project.Open(a)
				if err != nil {
					return err
				}
				meshes = append(meshes, m)
			}
			path, err := project.Save(output, meshes...)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Merged %d files into %s\n", len(meshes), path)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file")
	_ = cmd.MarkFlagRequired("output")
	return cmd
}
