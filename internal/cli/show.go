package cli

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ironsheep/brick-mosaic-mcp/internal/mosaic"
)

var showFlags struct {
	bricks int
	crop   string
}

var showCmd = &cobra.Command{
	Use:   "show IMAGE",
	Short: "Draw a mosaic in the terminal",
	Long: `Draw a mosaic in the terminal using 24-bit color, two characters per brick.

The terminal must support true color.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		crop, err := parseCrop(showFlags.crop)
		if err != nil {
			return err
		}
		p, err := loadPalette()
		if err != nil {
			return err
		}
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read image: %w", err)
		}
		r, err := mosaic.ConvertBytes(data, mosaic.Options{Bricks: showFlags.bricks, Crop: crop}, p)
		if err != nil {
			return err
		}

		fd := int(os.Stdout.Fd())
		if term.IsTerminal(fd) {
			if width, _, err := term.GetSize(fd); err == nil && width < 2*r.Bricks {
				log.Printf("terminal is %d columns wide, mosaic needs %d", width, 2*r.Bricks)
			}
		}
		return drawANSI(cmd.OutOrStdout(), r)
	},
}

func init() {
	showCmd.Flags().IntVarP(&showFlags.bricks, "bricks", "n", mosaic.DefaultBricks, "bricks per side")
	showCmd.Flags().StringVar(&showFlags.crop, "crop", "", "crop box as left,top,right,bottom in source pixels")
	rootCmd.AddCommand(showCmd)
}

// drawANSI writes one line per mosaic row, each brick as two full blocks in
// its 24-bit foreground color.
func drawANSI(w io.Writer, r *mosaic.Result) error {
	var sb strings.Builder
	for y := 0; y < r.Bricks; y++ {
		sb.Reset()
		for x := 0; x < r.Bricks; x++ {
			c := r.Grid.At(x, y)
			fmt.Fprintf(&sb, "\x1b[38;2;%d;%d;%dm██", c.R, c.G, c.B)
		}
		sb.WriteString("\x1b[0m\n")
		if _, err := io.WriteString(w, sb.String()); err != nil {
			return err
		}
	}
	return nil
}
