package cmd

import (
	"github.com/spf13/cobra"

	"github.com/emoryluqian/LumosX-Generator/internal/domain"
	m "github.com/emoryluqian/LumosX-Generator/internal/model"
)

var gridRowsFlag int
var gridColsFlag int
var gridWidthFlag float64
var gridHeightFlag float64
var gridLayoutFlag string

// gridCmd represents the grid command.
var gridCmd = newGridCmd()

func newGridCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "grid",
		Short: "Edit a grid marker interactively",
		Long: `Edit a grid marker interactively.

Move the cursor with the arrow keys, select cells with space, then merge
contiguous cells of one row or column with m or split them back with s.
With --layout the session starts from the saved layout (when the file
exists) and saves back to it on exit.`,
		Args: cobra.ExactArgs(0),
		RunE: func(_ *cobra.Command, _ []string) error {
			return workflow.EditGrid(domain.EditArgs{
				Rows:   clampDim(gridRowsFlag),
				Cols:   clampDim(gridColsFlag),
				Width:  gridWidthFlag,
				Height: gridHeightFlag,
				Layout: m.Path(gridLayoutFlag),
			})
		},
	}
	cmd.Flags().IntVarP(&gridRowsFlag, "rows", "r", 3, "number of grid rows (1-10)")
	cmd.Flags().IntVarP(&gridColsFlag, "cols", "c", 3, "number of grid columns (1-10)")
	cmd.Flags().Float64Var(&gridWidthFlag, "width", 10.0, "physical grid width")
	cmd.Flags().Float64Var(&gridHeightFlag, "height", 10.0, "physical grid height")
	cmd.Flags().StringVarP(&gridLayoutFlag, "layout", "l", "", "layout file to load from and save to")

	return cmd
}

func init() {
	rootCmd.AddCommand(gridCmd)
}
