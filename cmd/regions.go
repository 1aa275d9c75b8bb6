package cmd

import (
	"github.com/spf13/cobra"

	"github.com/emoryluqian/LumosX-Generator/internal/domain"
	m "github.com/emoryluqian/LumosX-Generator/internal/model"
)

var regionsLayoutFlag string
var regionsWidthFlag float64
var regionsHeightFlag float64

// regionsCmd represents the regions command.
var regionsCmd = newRegionsCmd()

func newRegionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "regions",
		Short: "Derive the render rectangles of a saved grid layout",
		Long: `Derive the render rectangles of a saved grid layout.

Each merged span yields one rectangle and every remaining cell its own
unit rectangle, positioned in physical units on a grid centered at the
origin.`,
		Args: cobra.ExactArgs(0),
		RunE: func(_ *cobra.Command, _ []string) error {
			return workflow.Regions(domain.RegionsArgs{
				Layout: m.Path(regionsLayoutFlag),
				Width:  regionsWidthFlag,
				Height: regionsHeightFlag,
			})
		},
	}
	cmd.Flags().StringVarP(&regionsLayoutFlag, "layout", "l", "", "layout file to derive regions from")
	cmd.Flags().Float64Var(&regionsWidthFlag, "width", 10.0, "physical grid width")
	cmd.Flags().Float64Var(&regionsHeightFlag, "height", 10.0, "physical grid height")
	_ = cmd.MarkFlagRequired("layout")

	return cmd
}

func init() {
	rootCmd.AddCommand(regionsCmd)
}
