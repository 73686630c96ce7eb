// Package mosaic converts images into brick mosaics.
//
// A mosaic is a square N x N grid in which every cell is one color of a fixed
// brick palette. Convert runs the whole pipeline:
//
//  1. imaging.Sample crops and resizes the image to an N x N grid of averaged
//     colors.
//  2. MapToPalette snaps each cell to the palette color nearest in CIE
//     L*a*b*, recording the chosen index and tallying per-color counts.
//
// The Result carries the quantized grid, the per-cell palette indices and one
// UsageCount per palette color; renderers draw previews, build plans and
// parts lists from it without touching the source image again.
//
// # Invariants
//
//   - Every quantized cell equals a palette color byte for byte.
//   - The counts sum to N*N.
//   - Equidistant palette colors resolve to the lowest index.
//
// Result.Verify checks the first two; RecoverIndices and Decompose rebuild
// indices from colors alone.
//
// # Concurrency
//
// Conversions share nothing but the palette, which is immutable; any number
// may run in parallel.
package mosaic
