package render

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/go-pdf/fpdf"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/brick-mosaic-mcp/internal/imaging"
	"github.com/ironsheep/brick-mosaic-mcp/internal/mosaic"
)

// DefaultCellMM is the default printed size of one brick, in millimetres.
const DefaultCellMM = 7.0

// Page geometry, in millimetres.
const (
	pageMargin     = 20.0
	thumbSize      = 60.0
	thumbCellSize  = 6
	countLineStep  = 6.0
	swatchSize     = 4.0
	minLabelCellMM = 3.5
)

// PlanOptions controls build plan rendering.
type PlanOptions struct {
	// Title is printed at the top of the first page.
	// Empty means "Brick Mosaic - Build Plan".
	Title string

	// CellMM is the printed size of one brick. Zero means DefaultCellMM.
	// It is reduced when the grid would not fit the page.
	CellMM float64

	// Created stamps the document. Zero means the current time.
	Created time.Time
}

// WritePlanPDF renders a printable A4 build plan.
//
// The first page holds the title, a thumbnail of the mosaic and the brick
// counts of every color in use, each with a color swatch. The following page
// holds the grid plan: every brick is drawn in its color and labeled with its
// color code, with row and column numbers along the edges.
func WritePlanPDF(w io.Writer, r *mosaic.Result, opts PlanOptions) error {
	title := opts.Title
	if title == "" {
		title = "Brick Mosaic - Build Plan"
	}
	cellMM := opts.CellMM
	if cellMM <= 0 {
		cellMM = DefaultCellMM
	}
	created := opts.Created
	if created.IsZero() {
		created = time.Now()
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(title, false)
	pdf.SetCreator("brick-mosaic", false)
	pdf.SetCreationDate(created)
	pdf.SetAutoPageBreak(false, 0)

	if err := drawSummaryPage(pdf, r, title); err != nil {
		return err
	}
	drawGridPage(pdf, r, cellMM)

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to render build plan: %w", err)
	}
	return nil
}

// PlanPDF renders a build plan and returns the PDF bytes.
func PlanPDF(r *mosaic.Result, opts PlanOptions) ([]byte, error) {
	var buf bytes.Buffer
	if err := WritePlanPDF(&buf, r, opts); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func drawSummaryPage(pdf *fpdf.Fpdf, r *mosaic.Result, title string) error {
	pageW, pageH := pdf.GetPageSize()
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetTextColor(0, 0, 0)
	pdf.Text(pageMargin, pageMargin, title)

	thumb, err := PreviewPNG(r, PreviewOptions{CellSize: thumbCellSize})
	if err != nil {
		return err
	}
	thumbOpts := fpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("mosaic-thumbnail", thumbOpts, bytes.NewReader(thumb))
	pdf.ImageOptions("mosaic-thumbnail", pageW-pageMargin-thumbSize, pageMargin+5, thumbSize, thumbSize, false, thumbOpts, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	y := pageMargin + 15
	pdf.Text(pageMargin, y, fmt.Sprintf("Brick counts (%dx%d, %d bricks):", r.Bricks, r.Bricks, r.Total()))
	y += countLineStep

	for _, c := range r.Used() {
		if y > pageH-30 {
			pdf.AddPage()
			pdf.SetFont("Helvetica", "", 10)
			y = pageMargin
		}
		pdf.SetFillColor(int(c.RGB.R), int(c.RGB.G), int(c.RGB.B))
		pdf.Rect(pageMargin, y-3, swatchSize, swatchSize, "F")
		pdf.SetTextColor(0, 0, 0)
		pdf.Text(pageMargin+6, y, fmt.Sprintf("%s - %s: %d", c.Code, c.Name, c.Count))
		y += countLineStep
	}

	if y > pageH-30 {
		pdf.AddPage()
		pdf.SetFont("Helvetica", "", 10)
		y = pageMargin
	}
	pdf.Text(pageMargin, y+2, fmt.Sprintf("%s: %d", BaseplateName, Baseplates(r.Bricks)))

	return pdf.Error()
}

func drawGridPage(pdf *fpdf.Fpdf, r *mosaic.Result, cellMM float64) {
	pageW, pageH := pdf.GetPageSize()
	pdf.AddPage()

	requested := cellMM
	originX := pageMargin + 5
	originY := pageMargin + 15
	cellMM = fitCell(cellMM, r.Bricks, pageW-originX-pageMargin, pageH-originY-pageMargin)

	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(0, 0, 0)
	pdf.Text(pageMargin, pageMargin, fmt.Sprintf("Grid plan (%dx%d) - each cell approx %.1f mm (requested %.1f mm)",
		r.Bricks, r.Bricks, cellMM, requested))

	labelPt := cellMM * 1.2
	if labelPt > 8 {
		labelPt = 8
	}
	showLabels := cellMM >= minLabelCellMM

	// Row and column numbers
	pdf.SetFontSize(labelPt)
	for i := 0; i < r.Bricks; i++ {
		n := fmt.Sprintf("%d", i+1)
		if showLabels || (i+1)%8 == 0 {
			cx := originX + float64(i)*cellMM + cellMM/2
			pdf.Text(cx-pdf.GetStringWidth(n)/2, originY-1.5, n)
			cy := originY + float64(i)*cellMM + cellMM/2
			pdf.Text(originX-1.5-pdf.GetStringWidth(n), cy+labelPt*0.12, n)
		}
	}

	for y := 0; y < r.Bricks; y++ {
		for x := 0; x < r.Bricks; x++ {
			e := r.EntryAt(x, y)
			cx := originX + float64(x)*cellMM
			cy := originY + float64(y)*cellMM

			pdf.SetFillColor(int(e.RGB.R), int(e.RGB.G), int(e.RGB.B))
			pdf.SetDrawColor(200, 200, 200)
			pdf.SetLineWidth(0.1)
			pdf.Rect(cx, cy, cellMM, cellMM, "FD")

			if showLabels {
				tr, tg, tb := labelColor(e.RGB)
				pdf.SetTextColor(tr, tg, tb)
				tw := pdf.GetStringWidth(e.Code)
				pdf.Text(cx+(cellMM-tw)/2, cy+cellMM/2+labelPt*0.12, e.Code)
			}
		}
	}
}

// fitCell shrinks the cell size until the grid fits the available area.
func fitCell(cellMM float64, bricks int, availW, availH float64) float64 {
	if w := float64(bricks) * cellMM; w > availW {
		cellMM *= availW / w
	}
	if h := float64(bricks) * cellMM; h > availH {
		cellMM *= availH / h
	}
	return cellMM
}

// labelColor picks black or white text for legibility on a brick color.
func labelColor(c imaging.RGBColor) (int, int, int) {
	l, _, _ := colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}.Lab()
	if l > 0.55 {
		return 0, 0, 0
	}
	return 255, 255, 255
}
