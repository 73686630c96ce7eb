package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// mosaicProperties returns the input properties shared by every tool that
// builds a mosaic from a source image, merged with tool-specific extras.
func mosaicProperties(extra map[string]interface{}) map[string]interface{} {
	props := map[string]interface{}{
		"path": map[string]interface{}{
			"type":        "string",
			"description": "Absolute path to the source image (PNG, JPEG, GIF, WebP, BMP or TIFF)",
		},
		"bricks": map[string]interface{}{
			"type":        "integer",
			"description": "Bricks per side of the square mosaic (default 32; 48 and 64 are common; at most 512)",
			"default":     32,
			"maximum":     MaxBricks,
		},
		"crop_left": map[string]interface{}{
			"type":        "integer",
			"description": "Left edge of the crop box in source pixels (inclusive). The crop applies only when all four crop edges are given.",
		},
		"crop_top": map[string]interface{}{
			"type":        "integer",
			"description": "Top edge of the crop box in source pixels (inclusive)",
		},
		"crop_right": map[string]interface{}{
			"type":        "integer",
			"description": "Right edge of the crop box in source pixels (exclusive)",
		},
		"crop_bottom": map[string]interface{}{
			"type":        "integer",
			"description": "Bottom edge of the crop box in source pixels (exclusive)",
		},
	}
	for k, v := range extra {
		props[k] = v
	}
	return props
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	outputPath := map[string]interface{}{
		"type":        "string",
		"description": "Optional absolute path to write the file to. If omitted, the file is returned base64-encoded.",
	}

	return []Tool{
		// Source Image
		{
			Name:        "image_load",
			Description: "Load an image file and return its dimensions, format and the centered square a mosaic is cut from when no crop box is given. Use this to choose a crop box.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "mosaic_palette",
			Description: "List the brick colors available to mosaics, in palette order (index, code, name, RGB).",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": map[string]interface{}{},
			},
		},

		// Mosaic Building
		{
			Name:        "mosaic_convert",
			Description: "Convert an image into a brick mosaic. Returns the palette index of every brick (matrix[row][column]), per-color brick counts and the palette.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": mosaicProperties(map[string]interface{}{
					"cell_size": map[string]interface{}{
						"type":        "integer",
						"description": "Preview pixels per brick reported back for rendering (default 16)",
						"default":     16,
					},
				}),
				"required": []string{"path"},
			},
		},
		{
			Name:        "mosaic_preview",
			Description: "Render a brick mosaic of an image as a PNG with one solid block per brick, returned as base64.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": mosaicProperties(map[string]interface{}{
					"cell_size": map[string]interface{}{
						"type":        "integer",
						"description": "Pixels per brick (default 16)",
						"default":     16,
						"maximum":     MaxCellSize,
					},
					"outline": map[string]interface{}{
						"type":        "boolean",
						"description": "Draw a thin border around every brick",
						"default":     false,
					},
					"outline_color": map[string]interface{}{
						"type":        "string",
						"description": "Border color as #RRGGBB or #RRGGBBAA (default #00000060)",
					},
					"labels": map[string]interface{}{
						"type":        "boolean",
						"description": "Write each brick's palette index in its corner (needs cell_size of 10 or more)",
						"default":     false,
					},
					"output_path": outputPath,
				}),
				"required": []string{"path"},
			},
		},
		{
			Name:        "mosaic_build_plan",
			Description: "Generate a printable A4 PDF build plan: brick counts with color swatches, a thumbnail and a grid with every brick's color code.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": mosaicProperties(map[string]interface{}{
					"cell_size_mm": map[string]interface{}{
						"type":        "number",
						"description": "Printed size of one brick in millimetres (default 7). Reduced automatically to fit the page.",
						"default":     7.0,
					},
					"title": map[string]interface{}{
						"type":        "string",
						"description": "Title printed on the first page",
					},
					"output_path": outputPath,
				}),
				"required": []string{"path"},
			},
		},
		{
			Name:        "mosaic_parts_list",
			Description: "Return the bill of materials for a mosaic: bricks per color in use plus 16x16 base plates, as JSON and CSV.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": mosaicProperties(nil),
				"required":   []string{"path"},
			},
		},
		{
			Name:        "mosaic_bundle",
			Description: "Build a ZIP archive with the preview PNG, the PDF build plan, the CSV parts list and the JSON mosaic document.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": mosaicProperties(map[string]interface{}{
					"cell_size": map[string]interface{}{
						"type":        "integer",
						"description": "Preview pixels per brick (default 16)",
						"default":     16,
						"maximum":     MaxCellSize,
					},
					"cell_size_mm": map[string]interface{}{
						"type":        "number",
						"description": "Printed size of one brick in millimetres (default 7)",
						"default":     7.0,
					},
					"output_path": outputPath,
				}),
				"required": []string{"path"},
			},
		},

		// Analysis Helpers
		{
			Name:        "mosaic_dominant_colors",
			Description: "Find the dominant colors of an image (or crop box) and the nearest brick color for each. Useful for judging how well an image suits the palette.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": mosaicProperties(map[string]interface{}{
					"count": map[string]interface{}{
						"type":        "integer",
						"description": "Number of dominant colors to return (default 5)",
						"default":     5,
					},
				}),
				"required": []string{"path"},
			},
		},
		{
			Name:        "mosaic_decompose",
			Description: "Read a previously rendered mosaic preview PNG back into its brick matrix and counts.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the preview image",
					},
					"cell_size": map[string]interface{}{
						"type":        "integer",
						"description": "Pixels per brick the preview was rendered with (default 16)",
						"default":     16,
					},
				},
				"required": []string{"path"},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
