package server

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ironsheep/brick-mosaic-mcp/internal/imaging"
	"github.com/ironsheep/brick-mosaic-mcp/internal/mosaic"
	"github.com/ironsheep/brick-mosaic-mcp/internal/palette"
	"github.com/ironsheep/brick-mosaic-mcp/internal/render"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "mosaic_convert", "mosaic_preview").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	start := time.Now()
	result, err := s.executeTool(params.Name, params.Arguments)
	if s.debug {
		log.Printf("tool %s finished in %v (error: %v)", params.Name, time.Since(start), err)
	}
	if err != nil {
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	text, err := resultText(result)
	if err != nil {
		return s.errorResponse(req.ID, -32603, "Internal error", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": text,
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
//
// Each tool handler:
//  1. Unmarshals arguments from JSON
//  2. Applies default values for optional parameters
//  3. Loads the source image from cache and builds the mosaic
//  4. Calls the appropriate render function
//  5. Returns the result or error
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	if len(args) == 0 {
		args = json.RawMessage("{}")
	}

	switch name {
	// Source Image
	case "image_load":
		return s.handleImageLoad(args)
	case "mosaic_palette":
		return s.handlePalette(args)

	// Mosaic Building
	case "mosaic_convert":
		return s.handleConvert(args)
	case "mosaic_preview":
		return s.handlePreview(args)
	case "mosaic_build_plan":
		return s.handleBuildPlan(args)
	case "mosaic_parts_list":
		return s.handlePartsList(args)
	case "mosaic_bundle":
		return s.handleBundle(args)

	// Analysis Helpers
	case "mosaic_dominant_colors":
		return s.handleDominantColors(args)
	case "mosaic_decompose":
		return s.handleDecompose(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// resultText encodes a tool result as pretty-printed JSON.
func resultText(v interface{}) (string, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode tool result: %w", err)
	}
	return string(b), nil
}

// === Shared Arguments ===

// Upper bounds on sizes a single tool call may request.
const (
	MaxBricks   = 512
	MaxCellSize = 64
)

// mosaicArgs are the arguments every mosaic-building tool accepts.
type mosaicArgs struct {
	Path       string `json:"path"`
	Bricks     int    `json:"bricks"`
	CropLeft   *int   `json:"crop_left"`
	CropTop    *int   `json:"crop_top"`
	CropRight  *int   `json:"crop_right"`
	CropBottom *int   `json:"crop_bottom"`
}

func (a mosaicArgs) options() mosaic.Options {
	bricks := a.Bricks
	if bricks == 0 {
		bricks = mosaic.DefaultBricks
	}
	return mosaic.Options{
		Bricks: bricks,
		Crop:   imaging.CropBoxFromParts(a.CropLeft, a.CropTop, a.CropRight, a.CropBottom),
	}
}

// buildMosaic loads the source image and converts it.
func (s *Server) buildMosaic(a mosaicArgs) (*mosaic.Result, error) {
	if a.Path == "" {
		return nil, fmt.Errorf("path is required")
	}
	if a.Bricks > MaxBricks {
		return nil, fmt.Errorf("bricks %d exceeds the maximum of %d", a.Bricks, MaxBricks)
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return mosaic.Convert(img, a.options(), s.palette)
}

func checkCellSize(cellSize int) error {
	if cellSize > MaxCellSize {
		return fmt.Errorf("cell_size %d exceeds the maximum of %d", cellSize, MaxCellSize)
	}
	return nil
}

// FileResult describes a generated file, either written to disk or returned
// inline as base64.
type FileResult struct {
	MimeType   string `json:"mime_type"`
	SizeBytes  int    `json:"size_bytes"`
	OutputPath string `json:"output_path,omitempty"`
	Data       string `json:"data,omitempty"`
}

func fileResult(data []byte, mimeType, outputPath string) (*FileResult, error) {
	res := &FileResult{MimeType: mimeType, SizeBytes: len(data)}
	if outputPath == "" {
		res.Data = base64.StdEncoding.EncodeToString(data)
		return res, nil
	}
	if err := os.WriteFile(outputPath, data, 0o644); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", outputPath, err)
	}
	res.OutputPath = outputPath
	return res, nil
}

// === Source Image Handlers ===

type imageLoadArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.LoadImageInfo(s.cache, a.Path)
}

// PaletteResult lists the brick colors available to mosaics.
type PaletteResult struct {
	Count   int            `json:"count"`
	Entries []PaletteColor `json:"entries"`
}

// PaletteColor is a palette entry with its hex color.
type PaletteColor struct {
	palette.Entry
	Hex string `json:"hex"`
}

func (s *Server) handlePalette(args json.RawMessage) (interface{}, error) {
	entries := s.palette.Entries()
	colors := make([]PaletteColor, len(entries))
	for i, e := range entries {
		colors[i] = PaletteColor{Entry: e, Hex: e.Hex()}
	}
	return &PaletteResult{Count: len(colors), Entries: colors}, nil
}

// === Mosaic Building Handlers ===

type convertArgs struct {
	mosaicArgs
	CellSize int `json:"cell_size"`
}

func (s *Server) handleConvert(args json.RawMessage) (interface{}, error) {
	var a convertArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	r, err := s.buildMosaic(a.mosaicArgs)
	if err != nil {
		return nil, err
	}
	return render.NewDocument(r, a.CellSize), nil
}

type previewArgs struct {
	mosaicArgs
	CellSize     int    `json:"cell_size"`
	Outline      bool   `json:"outline"`
	OutlineColor string `json:"outline_color"`
	Labels       bool   `json:"labels"`
	OutputPath   string `json:"output_path"`
}

// PreviewResult is a rendered preview image.
type PreviewResult struct {
	FileResult
	Width    int `json:"width"`
	Height   int `json:"height"`
	Bricks   int `json:"bricks"`
	CellSize int `json:"cell_size"`
}

func (s *Server) handlePreview(args json.RawMessage) (interface{}, error) {
	var a previewArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.CellSize == 0 {
		a.CellSize = render.DefaultCellSize
	}
	if err := checkCellSize(a.CellSize); err != nil {
		return nil, err
	}
	r, err := s.buildMosaic(a.mosaicArgs)
	if err != nil {
		return nil, err
	}
	data, err := render.PreviewPNG(r, render.PreviewOptions{
		CellSize:     a.CellSize,
		Outline:      a.Outline,
		OutlineColor: a.OutlineColor,
		Labels:       a.Labels,
	})
	if err != nil {
		return nil, err
	}
	file, err := fileResult(data, "image/png", a.OutputPath)
	if err != nil {
		return nil, err
	}
	side := r.Bricks * a.CellSize
	return &PreviewResult{
		FileResult: *file,
		Width:      side,
		Height:     side,
		Bricks:     r.Bricks,
		CellSize:   a.CellSize,
	}, nil
}

type buildPlanArgs struct {
	mosaicArgs
	CellSizeMM float64 `json:"cell_size_mm"`
	Title      string  `json:"title"`
	OutputPath string  `json:"output_path"`
}

func (s *Server) handleBuildPlan(args json.RawMessage) (interface{}, error) {
	var a buildPlanArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	r, err := s.buildMosaic(a.mosaicArgs)
	if err != nil {
		return nil, err
	}
	data, err := render.PlanPDF(r, render.PlanOptions{Title: a.Title, CellMM: a.CellSizeMM})
	if err != nil {
		return nil, err
	}
	return fileResult(data, "application/pdf", a.OutputPath)
}

// PartsResult is a bill of materials in structured and CSV form.
type PartsResult struct {
	Bricks     int           `json:"bricks"`
	TotalCells int           `json:"total_cells"`
	Parts      []render.Part `json:"parts"`
	CSV        string        `json:"csv"`
}

func (s *Server) handlePartsList(args json.RawMessage) (interface{}, error) {
	var a mosaicArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	r, err := s.buildMosaic(a)
	if err != nil {
		return nil, err
	}
	parts := render.PartsList(r)
	var buf bytes.Buffer
	if err := render.WritePartsCSV(&buf, parts); err != nil {
		return nil, err
	}
	return &PartsResult{
		Bricks:     r.Bricks,
		TotalCells: r.Total(),
		Parts:      parts,
		CSV:        buf.String(),
	}, nil
}

type bundleArgs struct {
	mosaicArgs
	CellSize   int     `json:"cell_size"`
	CellSizeMM float64 `json:"cell_size_mm"`
	OutputPath string  `json:"output_path"`
}

func (s *Server) handleBundle(args json.RawMessage) (interface{}, error) {
	var a bundleArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if err := checkCellSize(a.CellSize); err != nil {
		return nil, err
	}
	r, err := s.buildMosaic(a.mosaicArgs)
	if err != nil {
		return nil, err
	}
	data, err := render.BundleZIP(r, render.BundleOptions{
		Preview: render.PreviewOptions{CellSize: a.CellSize},
		Plan:    render.PlanOptions{CellMM: a.CellSizeMM},
	})
	if err != nil {
		return nil, err
	}
	return fileResult(data, "application/zip", a.OutputPath)
}

// === Analysis Helper Handlers ===

type dominantColorsArgs struct {
	mosaicArgs
	Count int `json:"count"`
}

// DominantBrick is a dominant image color and the brick color it maps to.
type DominantBrick struct {
	imaging.ColorFrequency
	Brick    PaletteColor `json:"brick"`
	Distance float64      `json:"distance"`
}

func (s *Server) handleDominantColors(args json.RawMessage) (interface{}, error) {
	var a dominantColorsArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Count == 0 {
		a.Count = 5
	}
	if a.Path == "" {
		return nil, fmt.Errorf("path is required")
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	if box := a.options().Crop; box != nil {
		if img, err = imaging.Crop(img, *box); err != nil {
			return nil, err
		}
	}

	colors, err := imaging.DominantColors(img, a.Count)
	if err != nil {
		return nil, err
	}
	out := make([]DominantBrick, 0, len(colors))
	for _, c := range colors {
		e, dist, err := mosaic.Nearest(c.RGB, s.palette)
		if err != nil {
			return nil, err
		}
		out = append(out, DominantBrick{
			ColorFrequency: c,
			Brick:          PaletteColor{Entry: e, Hex: e.Hex()},
			Distance:       dist,
		})
	}
	return map[string]interface{}{"colors": out}, nil
}

type decomposeArgs struct {
	Path     string `json:"path"`
	CellSize int    `json:"cell_size"`
}

func (s *Server) handleDecompose(args json.RawMessage) (interface{}, error) {
	var a decomposeArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.CellSize == 0 {
		a.CellSize = render.DefaultCellSize
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	r, err := mosaic.Decompose(img, a.CellSize, s.palette)
	if err != nil {
		return nil, err
	}
	return render.NewDocument(r, a.CellSize), nil
}
