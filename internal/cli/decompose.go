package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ironsheep/brick-mosaic-mcp/internal/imaging"
	"github.com/ironsheep/brick-mosaic-mcp/internal/mosaic"
	"github.com/ironsheep/brick-mosaic-mcp/internal/render"
)

var decomposeCellSize int

var decomposeCmd = &cobra.Command{
	Use:   "decompose PREVIEW",
	Short: "Read a preview PNG back into a brick matrix",
	Long: `Read a preview written by "convert --format png" back into its brick
matrix and print the JSON mosaic document.

The preview must have been rendered with the same palette and cell size.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := loadPalette()
		if err != nil {
			return err
		}
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read preview: %w", err)
		}
		img, _, err := imaging.Decode(data)
		if err != nil {
			return err
		}
		r, err := mosaic.Decompose(img, decomposeCellSize, p)
		if err != nil {
			return err
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(render.NewDocument(r, decomposeCellSize))
	},
}

func init() {
	decomposeCmd.Flags().IntVar(&decomposeCellSize, "cell-size", render.DefaultCellSize, "pixels per brick in the preview")
	rootCmd.AddCommand(decomposeCmd)
}
