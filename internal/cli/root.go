// Package cli implements the brick-mosaic command line tool.
package cli

import (
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/ironsheep/brick-mosaic-mcp/internal/palette"
)

var (
	palettePath string
	verbose     bool
)

var rootCmd = &cobra.Command{
	Use:   "brick-mosaic",
	Short: "Turn images into brick mosaics",
	Long: `brick-mosaic converts a photo into a square mosaic of brick colors.

It crops the image to a square, samples it down to one color per brick and
snaps every brick to the nearest color of the brick palette. The result can be
written as a JSON index matrix, a PNG preview, a PDF build plan, a CSV parts
list or all of them in one ZIP bundle.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
		if verbose {
			log.SetOutput(os.Stderr)
		} else {
			log.SetOutput(io.Discard)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&palettePath, "palette", os.Getenv("BRICK_MOSAIC_PALETTE"),
		"brick palette CSV (columns value,children,rgb); defaults to the built-in palette")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log progress to stderr")
}

// Execute runs the root command.
func Execute(version string) error {
	rootCmd.Version = version
	return rootCmd.Execute()
}

func loadPalette() (*palette.Palette, error) {
	if palettePath == "" {
		return palette.Default()
	}
	log.Printf("loading palette %s", palettePath)
	return palette.LoadFile(palettePath)
}
