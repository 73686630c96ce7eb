package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var paletteCmd = &cobra.Command{
	Use:   "palette",
	Short: "List the brick colors",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := loadPalette()
		if err != nil {
			return err
		}
		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "INDEX\tCODE\tHEX\tNAME")
		for _, e := range p.Entries() {
			fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", e.Index, e.Code, e.Hex(), e.Name)
		}
		return tw.Flush()
	},
}

func init() {
	rootCmd.AddCommand(paletteCmd)
}
