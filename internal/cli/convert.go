package cli

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/spf13/cobra"

	"github.com/ironsheep/brick-mosaic-mcp/internal/imaging"
	"github.com/ironsheep/brick-mosaic-mcp/internal/mosaic"
	"github.com/ironsheep/brick-mosaic-mcp/internal/render"
)

// Output formats written by convert.
const (
	formatJSON = "json"
	formatPNG  = "png"
	formatPDF  = "pdf"
	formatCSV  = "csv"
	formatZIP  = "zip"
)

var convertFlags struct {
	bricks   int
	crop     string
	cellSize int
	cellMM   float64
	title    string
	outline  bool
	labels   bool
	outDir   string
	formats  []string
}

var convertCmd = &cobra.Command{
	Use:   "convert IMAGE",
	Short: "Build a mosaic from an image",
	Long: `Build a mosaic from an image and write it to the output directory.

Files are named after the image: photo.jpg produces photo.json, photo.png,
photo.pdf, photo-parts.csv and photo.zip, depending on --format.`,
	Example: `  brick-mosaic convert photo.jpg --bricks 48 --format png,pdf
  brick-mosaic convert photo.jpg --crop 120,40,920,840 --out build/`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	f := convertCmd.Flags()
	f.IntVarP(&convertFlags.bricks, "bricks", "n", mosaic.DefaultBricks, "bricks per side")
	f.StringVar(&convertFlags.crop, "crop", "", "crop box as left,top,right,bottom in source pixels")
	f.IntVar(&convertFlags.cellSize, "cell-size", render.DefaultCellSize, "preview pixels per brick")
	f.Float64Var(&convertFlags.cellMM, "cell-mm", render.DefaultCellMM, "printed brick size in the build plan, in mm")
	f.StringVar(&convertFlags.title, "title", "", "build plan title")
	f.BoolVar(&convertFlags.outline, "outline", false, "outline bricks in the preview")
	f.BoolVar(&convertFlags.labels, "labels", false, "label bricks with their palette index in the preview")
	f.StringVarP(&convertFlags.outDir, "out", "o", ".", "output directory")
	f.StringSliceVarP(&convertFlags.formats, "format", "f", []string{formatJSON, formatPNG},
		"output formats: json, png, pdf, csv, zip")
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	crop, err := parseCrop(convertFlags.crop)
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
	r, err := mosaic.ConvertBytes(data, mosaic.Options{Bricks: convertFlags.bricks, Crop: crop}, p)
	if err != nil {
		return err
	}
	log.Printf("built %dx%d mosaic using %d of %d colors", r.Bricks, r.Bricks, len(r.Used()), p.Len())

	if err := os.MkdirAll(convertFlags.outDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	base := strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0]))
	out := func(suffix string) string {
		return filepath.Join(convertFlags.outDir, base+suffix)
	}

	previewOpts := render.PreviewOptions{
		CellSize: convertFlags.cellSize,
		Outline:  convertFlags.outline,
		Labels:   convertFlags.labels,
	}
	planOpts := render.PlanOptions{Title: convertFlags.title, CellMM: convertFlags.cellMM}

	for _, format := range convertFlags.formats {
		var path string
		switch strings.ToLower(strings.TrimSpace(format)) {
		case formatJSON:
			path = out(".json")
			doc, err := json.MarshalIndent(render.NewDocument(r, convertFlags.cellSize), "", "  ")
			if err != nil {
				return fmt.Errorf("failed to encode mosaic document: %w", err)
			}
			if err := os.WriteFile(path, doc, 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", path, err)
			}
		case formatPNG:
			path = out(".png")
			img, err := render.Preview(r, previewOpts)
			if err != nil {
				return err
			}
			if err := imgio.Save(path, img, imgio.PNGEncoder()); err != nil {
				return fmt.Errorf("failed to write %s: %w", path, err)
			}
		case formatPDF:
			path = out(".pdf")
			if err := writeFile(path, func(f *os.File) error { return render.WritePlanPDF(f, r, planOpts) }); err != nil {
				return err
			}
		case formatCSV:
			path = out("-parts.csv")
			if err := writeFile(path, func(f *os.File) error { return render.WritePartsCSV(f, render.PartsList(r)) }); err != nil {
				return err
			}
		case formatZIP:
			path = out(".zip")
			opts := render.BundleOptions{Preview: previewOpts, Plan: planOpts}
			if err := writeFile(path, func(f *os.File) error { return render.WriteBundle(f, r, opts) }); err != nil {
				return err
			}
		default:
			return fmt.Errorf("unknown format %q", format)
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
	}
	return nil
}

// writeFile creates path and fills it with write.
func writeFile(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// parseCrop parses "left,top,right,bottom". An empty string means no crop.
func parseCrop(s string) (*imaging.CropBox, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return nil, fmt.Errorf("crop must be left,top,right,bottom, got %q", s)
	}
	var v [4]int
	for i, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("invalid crop value %q: %w", part, err)
		}
		v[i] = n
	}
	return &imaging.CropBox{Left: v[0], Top: v[1], Right: v[2], Bottom: v[3]}, nil
}
