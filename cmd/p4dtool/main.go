// p4dtool inspects and edits .4dp polytope files from the command line.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "p4dtool",
		Short: "Inspect and edit 4D polytope files",
		Long: `p4dtool works with .4dp files written by the Polytope 4D editor.
It reports file contents, generates and extrudes shapes, merges files and
prints vertex projections without opening a window.`,
		Version:       "1.0.0",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		newInfoCmd(),
		newTesseractCmd(),
		newProjectCmd(),
		newExtrudeCmd(),
		newMergeCmd(),
	)
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
