package imaging

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// CropBox is a rectangle in source pixel coordinates.
//
// Left and Top are inclusive, Right and Bottom exclusive, so the cropped
// region is (Right-Left) x (Bottom-Top) pixels.
type CropBox struct {
	Left   int `json:"left"`
	Top    int `json:"top"`
	Right  int `json:"right"`
	Bottom int `json:"bottom"`
}

// CropBoxFromParts builds a CropBox from four optional coordinates.
//
// A crop box is only meaningful when all four edges are given; if any of
// them is nil the result is nil and no crop is applied.
func CropBoxFromParts(left, top, right, bottom *int) *CropBox {
	if left == nil || top == nil || right == nil || bottom == nil {
		return nil
	}
	return &CropBox{Left: *left, Top: *top, Right: *right, Bottom: *bottom}
}

// Rect returns the box as an image.Rectangle.
func (b CropBox) Rect() image.Rectangle {
	return image.Rect(b.Left, b.Top, b.Right, b.Bottom)
}

// Validate checks the box against an image of the given size.
//
// Returns an error wrapping ErrInvalidCropRegion when the box is outside the
// image or not normalized (Left >= Right or Top >= Bottom).
func (b CropBox) Validate(width, height int) error {
	if b.Left < 0 || b.Top < 0 || b.Right > width || b.Bottom > height {
		return fmt.Errorf("%w: (%d,%d)-(%d,%d) outside image bounds (0,0)-(%d,%d)",
			ErrInvalidCropRegion, b.Left, b.Top, b.Right, b.Bottom, width, height)
	}
	if b.Left >= b.Right || b.Top >= b.Bottom {
		return fmt.Errorf("%w: left must be < right, top must be < bottom", ErrInvalidCropRegion)
	}
	return nil
}

// Crop extracts the box from an image.
//
// Coordinates are relative to the top-left corner of img's bounds, so the
// same box means the same pixels whatever the image's origin.
func Crop(img image.Image, box CropBox) (*image.NRGBA, error) {
	bounds := img.Bounds()
	if err := box.Validate(bounds.Dx(), bounds.Dy()); err != nil {
		return nil, err
	}
	return imaging.Crop(img, box.Rect().Add(bounds.Min)), nil
}

// CenterSquare returns the largest centered square region of an image.
//
// The square's side is min(width, height); its top-left corner sits at
// ((width-side)/2, (height-side)/2) using integer division, so odd leftovers
// fall on the right and bottom edges.
func CenterSquare(img image.Image) image.Rectangle {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	side := w
	if h < side {
		side = h
	}
	left := (w - side) / 2
	top := (h - side) / 2
	return image.Rect(left, top, left+side, top+side).Add(bounds.Min)
}

// CropSquare center-crops an image to a square. Square images are returned
// as an NRGBA copy.
func CropSquare(img image.Image) *image.NRGBA {
	return imaging.Crop(img, CenterSquare(img))
}
