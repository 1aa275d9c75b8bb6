// Package cmd provides the root command and CLI setup for lumosx.
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/emoryluqian/LumosX-Generator/internal/adapter"
	"github.com/emoryluqian/LumosX-Generator/internal/controller"
	"github.com/emoryluqian/LumosX-Generator/internal/domain"
)

var layoutStore adapter.LayoutStore
var ui controller.UI
var workflow domain.Workflow

func init() {
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	layoutStore = adapter.NewLocalLayoutStore()
	workflow = domain.NewWorkflow(layoutStore, ui)
}

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lumosx",
		Short: "Marker generator for embedding information in printed objects",
		Long: `Lumosx turns digit sequences and grid layouts into printable marker
descriptions.

The encode command translates 12- or 13-digit sequences into EAN-13
module bit strings. The grid command edits a rectangular cell grid whose
cells can be merged into spans and split back apart; the regions command
derives the rectangles a saved grid layout renders as.`,
	}
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// clampDim bounds a grid dimension to the range the UI supports.
func clampDim(v int) int {
	if v < 1 {
		return 1
	}

	if v > 10 {
		return 10
	}

	return v
}
