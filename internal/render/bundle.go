package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/klauspost/compress/zip"

	"github.com/ironsheep/brick-mosaic-mcp/internal/mosaic"
)

// Bundle file names.
const (
	BundlePreview  = "preview.png"
	BundlePlan     = "plan.pdf"
	BundleParts    = "parts.csv"
	BundleDocument = "mosaic.json"
)

// BundleOptions controls what goes into a bundle.
type BundleOptions struct {
	Preview PreviewOptions
	Plan    PlanOptions

	// Modified stamps every archive entry. Zero means the current time.
	Modified time.Time
}

// WriteBundle writes a ZIP archive holding everything needed to build a
// mosaic: the preview PNG, the PDF build plan, the CSV parts list and the
// JSON document.
func WriteBundle(w io.Writer, r *mosaic.Result, opts BundleOptions) error {
	modified := opts.Modified
	if modified.IsZero() {
		modified = time.Now()
	}
	if opts.Plan.Created.IsZero() {
		opts.Plan.Created = modified
	}

	preview, err := PreviewPNG(r, opts.Preview)
	if err != nil {
		return err
	}
	plan, err := PlanPDF(r, opts.Plan)
	if err != nil {
		return err
	}
	var parts bytes.Buffer
	if err := WritePartsCSV(&parts, PartsList(r)); err != nil {
		return err
	}
	doc, err := json.MarshalIndent(NewDocument(r, opts.Preview.CellSize), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode mosaic document: %w", err)
	}

	files := []struct {
		name string
		data []byte
		// PNG and PDF are already compressed.
		method uint16
	}{
		{BundlePreview, preview, zip.Store},
		{BundlePlan, plan, zip.Store},
		{BundleParts, parts.Bytes(), zip.Deflate},
		{BundleDocument, doc, zip.Deflate},
	}

	zw := zip.NewWriter(w)
	for _, f := range files {
		fw, err := zw.CreateHeader(&zip.FileHeader{
			Name:     f.name,
			Method:   f.method,
			Modified: modified,
		})
		if err != nil {
			return fmt.Errorf("failed to add %s to bundle: %w", f.name, err)
		}
		if _, err := fw.Write(f.data); err != nil {
			return fmt.Errorf("failed to add %s to bundle: %w", f.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("failed to finish bundle: %w", err)
	}
	return nil
}

// BundleZIP builds a bundle in memory.
func BundleZIP(r *mosaic.Result, opts BundleOptions) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteBundle(&buf, r, opts); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
