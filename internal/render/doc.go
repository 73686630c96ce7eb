// Package render turns a finished mosaic into files people build from.
//
// Every renderer reads a *mosaic.Result and nothing else:
//   - Preview / PreviewPNG: the mosaic as solid blocks, optionally outlined
//     and labeled with palette indices
//   - WritePlanPDF / PlanPDF: an A4 build plan with brick counts and a
//     color-coded grid
//   - PartsList / WritePartsCSV: the bill of materials, colors in use plus
//     base plates
//   - NewDocument: the JSON index matrix with counts and palette
//   - WriteBundle / BundleZIP: all of the above in one ZIP archive
package render
