package cmd

import (
	"github.com/spf13/cobra"

	"github.com/emoryluqian/LumosX-Generator/internal/domain"
)

var encodeParallelFlag int
var encodeBarsFlag bool

// encodeCmd represents the encode command.
var encodeCmd = newEncodeCmd()

func newEncodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encode SEQUENCE...",
		Short: "Encode digit sequences as EAN-13 module strings",
		Long: `Encode one or more digit sequences as EAN-13 module strings.

A 12-digit sequence gets its check digit computed and appended; a
13-digit sequence is verified against the checksum of its first 12
digits and rejected on mismatch.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.Encode(domain.EncodeArgs{
				Sequences: args,
				Threads:   encodeParallelFlag,
				Bars:      encodeBarsFlag,
			})
		},
	}
	cmd.Flags().IntVarP(&encodeParallelFlag, "parallel", "p", 1, "number of parallel workers for batch encoding")
	cmd.Flags().BoolVar(&encodeBarsFlag, "bars", false, "print a block glyph bar preview under each module string")

	return cmd
}

func init() {
	rootCmd.AddCommand(encodeCmd)
}
