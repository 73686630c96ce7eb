// Package server implements the MCP (Model Context Protocol) server for brick mosaic tools.
//
// This package provides a JSON-RPC 2.0 server that turns images into brick
// mosaics through the MCP protocol. An MCP client loads a photo, picks a crop
// and a grid size, and gets back the brick matrix, a preview, a printable build
// plan or a parts list.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Source Image:
//   - image_load: Load image and get metadata plus the default square crop
//   - mosaic_palette: List the brick colors
//
// Mosaic Building:
//   - mosaic_convert: Brick index matrix, counts and palette as JSON
//   - mosaic_preview: Solid-block PNG preview, optionally outlined and labeled
//   - mosaic_build_plan: A4 PDF build plan
//   - mosaic_parts_list: Bricks per color plus base plates
//   - mosaic_bundle: ZIP with preview, plan, parts list and JSON
//
// Analysis Helpers:
//   - mosaic_dominant_colors: Dominant image colors and their nearest bricks
//   - mosaic_decompose: Read a preview PNG back into a brick matrix
//
// Every mosaic tool accepts the same source arguments: path, bricks (grid side,
// default 32) and an optional crop box given as crop_left, crop_top,
// crop_right and crop_bottom. The crop box is used only when all four edges
// are present.
//
// # Image Caching
//
// Source images are cached after first load, so asking for the matrix, the
// preview and the build plan of one photo decodes it once.
//
// # Error Handling
//
// Tool errors are returned as JSON-RPC errors with code -32000 and the
// error message in the data field. Invalid crop boxes, grid sizes and
// undecodable images are all reported this way, as are requests above
// MaxBricks or MaxCellSize. A result that cannot be encoded is reported
// with code -32603.
package server
